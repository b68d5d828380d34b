package scenario

import (
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const DummyScenarioName = "dummy-scenario"

// DummyScenario waits END seconds and exits with EXIT_STATUS, it touches nothing
type DummyScenario struct {
	End        *parameters.Int
	ExitStatus *parameters.Int
}

func NewDummyScenario() Scenario {
	return &DummyScenario{
		End:        parameters.Dummy("END", 10),
		ExitStatus: parameters.Dummy("EXIT_STATUS", 0),
	}
}

func (s *DummyScenario) Name() string { return DummyScenarioName }

func (s *DummyScenario) Parameters() []parameters.Parameter {
	return []parameters.Parameter{s.End, s.ExitStatus}
}

func (s *DummyScenario) Mutate(*types.ClusterComponents, *rng.Source) error { return nil }
