package factory

import (
	"sort"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario"
)

// Registry maps a configuration key to the constructor of its archetype
type Registry map[string]scenario.Constructor

// DefaultRegistry returns the registry of every built-in archetype
func DefaultRegistry() Registry {
	return Registry{
		"pod_scenarios":       scenario.NewPodScenario,
		"application_outages": scenario.NewApplicationOutage,
		"container_scenarios": scenario.NewContainerScenario,
		"node_cpu_hog":        scenario.NewNodeCPUHog,
		"node_memory_hog":     scenario.NewNodeMemoryHog,
		"time_scenarios":      scenario.NewTimeScenario,
		"network_chaos":       scenario.NewNetworkChaos,
		"dns_outage":          scenario.NewDNSOutage,
		"dummy_scenario":      scenario.NewDummyScenario,
	}
}

// Keys returns the registered keys in lexical order
func (r Registry) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
