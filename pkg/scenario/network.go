package scenario

import (
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const NetworkChaosName = "network-chaos"

// NetworkChaos impairs the ingress or egress traffic of the selected nodes
type NetworkChaos struct {
	TrafficType         *parameters.Choice
	Image               *parameters.String
	Duration            *parameters.Int
	LabelSelector       *parameters.String
	Execution           *parameters.Choice
	NodeName            *parameters.String
	Interfaces          *parameters.String
	NetworkParams       *parameters.Network
	EgressParams        *parameters.Network
	TargetNodeInterface *parameters.String
	WaitDuration        *parameters.Int
}

func NewNetworkChaos() Scenario {
	return &NetworkChaos{
		TrafficType:         parameters.NetworkScenarioType(),
		Image:               parameters.NetworkScenarioImage(),
		Duration:            parameters.NetworkScenarioDuration(),
		LabelSelector:       parameters.NetworkLabelSelector(),
		Execution:           parameters.NetworkExecution(),
		NodeName:            parameters.NetworkNodeName(),
		Interfaces:          parameters.NetworkInterfaces(),
		NetworkParams:       parameters.NetworkParams(),
		EgressParams:        parameters.EgressParams(),
		TargetNodeInterface: parameters.TargetNodeAndInterface(),
		WaitDuration:        parameters.NetworkWaitDuration(),
	}
}

func (s *NetworkChaos) Name() string { return NetworkChaosName }

func (s *NetworkChaos) Parameters() []parameters.Parameter {
	return []parameters.Parameter{
		s.TrafficType,
		s.Image,
		s.Duration,
		s.LabelSelector,
		s.Execution,
		s.NodeName,
		s.Interfaces,
		s.NetworkParams,
		s.EgressParams,
		s.TargetNodeInterface,
		s.WaitDuration,
	}
}

// Mutate targets a single node by name or every node carrying a label, never both
func (s *NetworkChaos) Mutate(snapshot *types.ClusterComponents, r *rng.Source) error {
	target, err := SelectNodes(snapshot, r)
	if err != nil {
		return err
	}
	if target.Node != nil {
		s.NodeName.Value = target.Node.Name
	} else {
		s.LabelSelector.Value = target.Selector
	}
	s.TrafficType.Mutate(r)
	s.Execution.Mutate(r)
	s.NetworkParams.Mutate(r)
	s.EgressParams.Mutate(r)
	return nil
}
