package scenario

import (
	"fmt"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const ApplicationOutageName = "application-outages"

// ApplicationOutage blocks the traffic of the pods selected by a label
type ApplicationOutage struct {
	Namespace        *parameters.String
	Duration         *parameters.Int
	PodSelector      *parameters.String
	BlockTrafficType *parameters.Choice
}

func NewApplicationOutage() Scenario {
	return &ApplicationOutage{
		Namespace:        parameters.Namespace(),
		Duration:         parameters.Duration(),
		PodSelector:      parameters.PodSelector(),
		BlockTrafficType: parameters.BlockTrafficType(),
	}
}

func (s *ApplicationOutage) Name() string { return ApplicationOutageName }

func (s *ApplicationOutage) Parameters() []parameters.Parameter {
	return []parameters.Parameter{
		s.Namespace,
		s.Duration,
		s.PodSelector,
		s.BlockTrafficType,
	}
}

func (s *ApplicationOutage) Mutate(snapshot *types.ClusterComponents, r *rng.Source) error {
	target, err := SelectPodLabel(snapshot, r)
	if err != nil {
		return err
	}
	s.Namespace.Value = target.Namespace
	s.PodSelector.Value = fmt.Sprintf("{%s: %s}", target.LabelKey, target.LabelValue)
	s.BlockTrafficType.Mutate(r)
	return nil
}
