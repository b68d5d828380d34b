package scenario

import (
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const NodeCPUHogName = "node-cpu-hog"

// NodeCPUHog stresses the cpu of the selected nodes
type NodeCPUHog struct {
	ChaosDuration *parameters.Int
	CPUPercentage *parameters.Percentage
	NodeSelector  *parameters.String
	Taints        *parameters.String
	NumberOfNodes *parameters.Int
	Image         *parameters.String
}

func NewNodeCPUHog() Scenario {
	return &NodeCPUHog{
		ChaosDuration: parameters.TotalChaosDuration(),
		CPUPercentage: parameters.NodeCPUPercentage(),
		NodeSelector:  parameters.NodeSelector(),
		Taints:        parameters.Taints(),
		NumberOfNodes: parameters.NumberOfNodes(),
		Image:         parameters.HogScenarioImage(),
	}
}

func (s *NodeCPUHog) Name() string { return NodeCPUHogName }

func (s *NodeCPUHog) Parameters() []parameters.Parameter {
	return []parameters.Parameter{
		s.ChaosDuration,
		s.CPUPercentage,
		s.NodeSelector,
		s.Taints,
		s.NumberOfNodes,
		s.Image,
	}
}

func (s *NodeCPUHog) Mutate(snapshot *types.ClusterComponents, r *rng.Source) error {
	target, err := SelectNodes(snapshot, r)
	if err != nil {
		return err
	}
	s.NodeSelector.Value = target.Selector
	s.NumberOfNodes.Value = target.Count
	s.CPUPercentage.Mutate(r)
	return nil
}
