package scenario

import (
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const ContainerScenarioName = "container-scenarios"

// ContainerScenario kills a container of the pods matching a label
type ContainerScenario struct {
	Namespace            *parameters.String
	LabelSelector        *parameters.String
	DisruptionCount      *parameters.Int
	ContainerName        *parameters.String
	Action               *parameters.Choice
	ExpectedRecoveryTime *parameters.Int
}

func NewContainerScenario() Scenario {
	return &ContainerScenario{
		Namespace:            parameters.Namespace(),
		LabelSelector:        parameters.LabelSelector(),
		DisruptionCount:      parameters.DisruptionCount(),
		ContainerName:        parameters.ContainerName(),
		Action:               parameters.ContainerKillAction(),
		ExpectedRecoveryTime: parameters.ExpectedRecoveryTime(),
	}
}

func (s *ContainerScenario) Name() string { return ContainerScenarioName }

func (s *ContainerScenario) Parameters() []parameters.Parameter {
	return []parameters.Parameter{
		s.Namespace,
		s.LabelSelector,
		s.DisruptionCount,
		s.ContainerName,
		s.Action,
		s.ExpectedRecoveryTime,
	}
}

// Mutate leaves the container name empty for a pod without containers, which
// makes the engine target every container of the matched pods
func (s *ContainerScenario) Mutate(snapshot *types.ClusterComponents, r *rng.Source) error {
	target, err := SelectPodLabel(snapshot, r)
	if err != nil {
		return err
	}
	s.Namespace.Value = target.Namespace
	s.LabelSelector.Value = target.Label()
	if len(target.Pod.Containers) > 0 {
		s.ContainerName.Value = rng.Choice(r, target.Pod.Containers).Name
	}
	s.Action.Mutate(r)
	return nil
}
