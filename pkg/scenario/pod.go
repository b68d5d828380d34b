package scenario

import (
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const PodScenarioName = "pod-scenarios"

// PodScenario kills the pods matching a label in a namespace
type PodScenario struct {
	Namespace            *parameters.String
	PodLabel             *parameters.String
	NamePattern          *parameters.String
	DisruptionCount      *parameters.Int
	KillTimeout          *parameters.Int
	ExpectedRecoveryTime *parameters.Int
}

func NewPodScenario() Scenario {
	return &PodScenario{
		Namespace:            parameters.Namespace(),
		PodLabel:             parameters.PodLabel(),
		NamePattern:          parameters.NamePattern(),
		DisruptionCount:      parameters.DisruptionCount(),
		KillTimeout:          parameters.KillTimeout(),
		ExpectedRecoveryTime: parameters.ExpectedRecoveryTime(),
	}
}

func (s *PodScenario) Name() string { return PodScenarioName }

func (s *PodScenario) Parameters() []parameters.Parameter {
	return []parameters.Parameter{
		s.Namespace,
		s.PodLabel,
		s.NamePattern,
		s.DisruptionCount,
		s.KillTimeout,
		s.ExpectedRecoveryTime,
	}
}

func (s *PodScenario) Mutate(snapshot *types.ClusterComponents, r *rng.Source) error {
	target, err := SelectPodLabel(snapshot, r)
	if err != nil {
		return err
	}
	s.Namespace.Value = target.Namespace
	s.PodLabel.Value = target.Label()
	return nil
}
