package scenario

import (
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const TimeScenarioName = "time-scenarios"

// TimeScenario skews the date or time of pods or nodes
type TimeScenario struct {
	ObjectType    *parameters.Choice
	LabelSelector *parameters.String
	Action        *parameters.Choice
	Namespace     *parameters.String
	ContainerName *parameters.String
}

func NewTimeScenario() Scenario {
	return &TimeScenario{
		ObjectType:    parameters.ObjectType(),
		LabelSelector: parameters.LabelSelector(),
		Action:        parameters.TimeAction(),
		Namespace:     parameters.Namespace(),
		ContainerName: parameters.ContainerName(),
	}
}

func (s *TimeScenario) Name() string { return TimeScenarioName }

func (s *TimeScenario) Parameters() []parameters.Parameter {
	return []parameters.Parameter{
		s.ObjectType,
		s.LabelSelector,
		s.Action,
		s.Namespace,
		s.ContainerName,
	}
}

func (s *TimeScenario) Mutate(snapshot *types.ClusterComponents, r *rng.Source) error {
	s.ObjectType.Mutate(r)
	s.Action.Mutate(r)

	if s.ObjectType.Value == "node" {
		target, err := SelectNodes(snapshot, r)
		if err != nil {
			return err
		}
		s.LabelSelector.Value = target.Selector
		return nil
	}

	target, err := SelectPodLabel(snapshot, r)
	if err != nil {
		return err
	}
	s.Namespace.Value = target.Namespace
	s.LabelSelector.Value = target.Label()
	if len(target.Pod.Containers) > 0 {
		s.ContainerName.Value = rng.Choice(r, target.Pod.Containers).Name
	}
	return nil
}
