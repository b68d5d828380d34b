package scenario

import (
	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario/parameters"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

const DNSOutageName = "dns-outage"

// DNSOutage blocks the dns traffic of a single pod
type DNSOutage struct {
	Namespace    *parameters.String
	PodName      *parameters.String
	TestDuration *parameters.Int
	Protocol     *parameters.String
	Ports        *parameters.String
	Ingress      *parameters.String
	Egress       *parameters.String
}

func NewDNSOutage() Scenario {
	return &DNSOutage{
		Namespace:    parameters.Namespace(),
		PodName:      parameters.PodName(),
		TestDuration: parameters.DNSTestDuration(),
		Protocol:     parameters.DNSProtocol(),
		Ports:        parameters.DNSPorts(),
		Ingress:      parameters.Ingress(),
		Egress:       parameters.Egress(),
	}
}

func (s *DNSOutage) Name() string { return DNSOutageName }

func (s *DNSOutage) Parameters() []parameters.Parameter {
	return []parameters.Parameter{
		s.Namespace,
		s.PodName,
		s.TestDuration,
		s.Protocol,
		s.Ports,
		s.Ingress,
		s.Egress,
	}
}

func (s *DNSOutage) Mutate(snapshot *types.ClusterComponents, r *rng.Source) error {
	target, err := SelectPod(snapshot, r)
	if err != nil {
		return err
	}
	s.Namespace.Value = target.Namespace
	s.PodName.Value = target.Pod.Name
	return nil
}
