package scenario

import (
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const NodeMemoryHogName = "node-memory-hog"

// NodeMemoryHog consumes the memory of the selected nodes
type NodeMemoryHog struct {
	ChaosDuration    *parameters.Int
	MemoryPercentage *parameters.Percentage
	NumberOfWorkers  *parameters.IntRange
	NodeSelector     *parameters.String
	Taints           *parameters.String
	NumberOfNodes    *parameters.Int
	Image            *parameters.String
}

func NewNodeMemoryHog() Scenario {
	return &NodeMemoryHog{
		ChaosDuration:    parameters.TotalChaosDuration(),
		MemoryPercentage: parameters.MemoryConsumptionPercentage(),
		NumberOfWorkers:  parameters.NumberOfWorkers(),
		NodeSelector:     parameters.NodeSelector(),
		Taints:           parameters.Taints(),
		NumberOfNodes:    parameters.NumberOfNodes(),
		Image:            parameters.HogScenarioImage(),
	}
}

func (s *NodeMemoryHog) Name() string { return NodeMemoryHogName }

func (s *NodeMemoryHog) Parameters() []parameters.Parameter {
	return []parameters.Parameter{
		s.ChaosDuration,
		s.MemoryPercentage,
		s.NumberOfWorkers,
		s.NodeSelector,
		s.Taints,
		s.NumberOfNodes,
		s.Image,
	}
}

func (s *NodeMemoryHog) Mutate(snapshot *types.ClusterComponents, r *rng.Source) error {
	target, err := SelectNodes(snapshot, r)
	if err != nil {
		return err
	}
	s.NodeSelector.Value = target.Selector
	s.NumberOfNodes.Value = target.Count
	s.MemoryPercentage.Mutate(r)
	s.NumberOfWorkers.Mutate(r)
	return nil
}
