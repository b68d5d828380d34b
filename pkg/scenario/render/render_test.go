package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/scenario"
)

func cpuHog() scenario.Scenario {
	s := scenario.NewNodeCPUHog().(*scenario.NodeCPUHog)
	s.NodeSelector.Value = "kubernetes.io/hostname=node-1"
	s.CPUPercentage.Value = 73
	return s
}

func TestEnvVars(t *testing.T) {
	assert.Equal(t, []string{
		"TOTAL_CHAOS_DURATION=60",
		"NODE_CPU_PERCENTAGE=73",
		"NODE_SELECTOR=kubernetes.io/hostname=node-1",
		"TAINTS=[]",
		"NUMBER_OF_NODES=1",
		"IMAGE=quay.io/krkn-chaos/krkn-hog",
	}, EnvVars(cpuHog()))
}

func TestCLIArgs(t *testing.T) {
	assert.Equal(t, []string{
		"node-cpu-hog",
		"--chaos-duration=60",
		"--cpu-percentage=73",
		"--node-selector=kubernetes.io/hostname=node-1",
		"--taints=[]",
		"--number-of-nodes=1",
		"--image=quay.io/krkn-chaos/krkn-hog",
	}, CLIArgs(cpuHog()))
}

func TestSummary(t *testing.T) {
	summary := Summary(scenario.NewDummyScenario())
	assert.Equal(t, map[string]string{"END": "10", "EXIT_STATUS": "0"}, summary)
}

func TestCommandLine(t *testing.T) {
	s := scenario.NewNetworkChaos().(*scenario.NetworkChaos)
	line := CommandLine("krknctl", s)
	assert.Contains(t, line, "krknctl run network-chaos ")
	assert.Contains(t, line, "'--network-params={latency: 50ms,loss: 0.02,bandwidth: 100mbit}'")
	assert.Contains(t, line, " --traffic-type=ingress ")
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "--a=b", quote("--a=b"))
	assert.Equal(t, `'--a=it'\''s'`, quote("--a=it's"))
}
