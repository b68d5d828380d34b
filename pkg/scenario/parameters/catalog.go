package parameters

const (
	HogImage     = "quay.io/krkn-chaos/krkn-hog"
	NetworkImage = "quay.io/krkn-chaos/krkn:tools"
)

func Namespace() *String   { return NewString("NAMESPACE", "", "") }
func PodLabel() *String    { return NewString("POD_LABEL", "", "") }
func NamePattern() *String { return NewString("NAME_PATTERN", "", ".*") }

func DisruptionCount() *Int      { return NewInt("DISRUPTION_COUNT", "", 1) }
func KillTimeout() *Int          { return NewInt("KILL_TIMEOUT", "", 60) }
func ExpectedRecoveryTime() *Int { return NewInt("EXPECTED_RECOVERY_TIME", "", 60) }

// Duration is the application outage duration in seconds
func Duration() *Int { return NewInt("DURATION", "chaos-duration", 60) }

// PodSelector takes the {key: value} form
func PodSelector() *String { return NewString("POD_SELECTOR", "", "") }

func BlockTrafficType() *Choice {
	return NewChoice("BLOCK_TRAFFIC_TYPE", "", "[Ingress, Egress]", "[Ingress, Egress]", "[Ingress]", "[Egress]")
}

// LabelSelector takes the key=value form
func LabelSelector() *String { return NewString("LABEL_SELECTOR", "", "") }
func ContainerName() *String { return NewString("CONTAINER_NAME", "", "") }

// ContainerKillAction is the signal sent to the container
func ContainerKillAction() *Choice { return NewChoice("ACTION", "", "1", "1", "9") }

func TotalChaosDuration() *Int { return NewInt("TOTAL_CHAOS_DURATION", "chaos-duration", 60) }

func NodeCPUPercentage() *Percentage {
	return NewPercentage("NODE_CPU_PERCENTAGE", "cpu-percentage", 50, false)
}

func MemoryConsumptionPercentage() *Percentage {
	return NewPercentage("MEMORY_CONSUMPTION_PERCENTAGE", "memory-consumption", 50, true)
}

func NumberOfWorkers() *IntRange { return NewIntRange("NUMBER_OF_WORKERS", "memory-workers", 1, 1, 10) }

// NodeSelector takes the key=value form, empty lets the engine pick a node
func NodeSelector() *String     { return NewString("NODE_SELECTOR", "", "") }
func Taints() *String           { return NewString("TAINTS", "", "[]") }
func NumberOfNodes() *Int       { return NewInt("NUMBER_OF_NODES", "", 1) }
func HogScenarioImage() *String { return NewString("IMAGE", "", HogImage) }

func ObjectType() *Choice { return NewChoice("OBJECT_TYPE", "", "pod", "pod", "node") }
func TimeAction() *Choice { return NewChoice("ACTION", "", "skew_date", "skew_date", "skew_time") }

func NetworkScenarioType() *Choice {
	return NewChoice("NETWORK_SCENARIO_TYPE", "traffic-type", "ingress", "ingress", "egress")
}

func NetworkScenarioImage() *String { return NewString("IMAGE", "", NetworkImage) }
func NetworkScenarioDuration() *Int { return NewInt("DURATION", "", 300) }
func NetworkLabelSelector() *String { return NewString("LABEL_SELECTOR", "", "") }
func NetworkExecution() *Choice     { return NewChoice("EXECUTION", "", "parallel", "serial", "parallel") }
func NetworkNodeName() *String      { return NewString("NODE_NAME", "", "") }
func NetworkInterfaces() *String    { return NewString("INTERFACES", "", "[]") }
func NetworkWaitDuration() *Int     { return NewInt("WAIT_DURATION", "", 300) }
func TargetNodeAndInterface() *String {
	return NewString("TARGET_NODE_AND_INTERFACE", "target-node-interface", "{}")
}

// NetworkParams draws loss from [0, 0.1)
func NetworkParams() *Network { return NewNetwork("NETWORK_PARAMS", "", 0, 0.1, false) }

// EgressParams draws loss from [0.01, 0.4] rounded to two decimals
func EgressParams() *Network { return NewNetwork("EGRESS", "", 0.01, 0.4, true) }

func DNSTestDuration() *Int { return NewInt("TEST_DURATION", "chaos-duration", 60) }
func DNSProtocol() *String  { return NewString("PROTOCOL", "", "tcp,udp") }
func DNSPorts() *String     { return NewString("PORTS", "", "53") }
func PodName() *String      { return NewString("POD_NAME", "", "") }
func Ingress() *String      { return NewString("INGRESS", "", "false") }
func Egress() *String       { return NewString("EGRESS", "", "true") }

// Dummy returns a static integer parameter for the dummy scenario
func Dummy(name string, value int) *Int { return NewInt(name, "", value) }
