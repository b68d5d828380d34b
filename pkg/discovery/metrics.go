package discovery

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/clients"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/quantity"
)

// MetricsSource reports the current usage of a node
type MetricsSource interface {
	// NodeUsage returns the cpu usage in millicores and the memory usage in bytes
	NodeUsage(ctx context.Context, node string) (float64, int64, error)
}

// MetricsServerSource reads node usage from the metrics.k8s.io api
type MetricsServerSource struct {
	clients *clients.ClientSets
}

// NewMetricsServerSource returns a MetricsSource backed by the metrics server
func NewMetricsServerSource(clients *clients.ClientSets) *MetricsServerSource {
	return &MetricsServerSource{clients: clients}
}

// NodeUsage fetches the NodeMetrics object of the node and parses its usage
func (m *MetricsServerSource) NodeUsage(ctx context.Context, node string) (float64, int64, error) {
	obj, err := m.clients.GetNodeMetrics(ctx, node)
	if err != nil {
		return 0, 0, err
	}

	cpuText, err := usageField(obj, "cpu")
	if err != nil {
		return 0, 0, err
	}
	memText, err := usageField(obj, "memory")
	if err != nil {
		return 0, 0, err
	}

	cpu, err := quantity.ParseCPU(cpuText)
	if err != nil {
		return 0, 0, err
	}
	mem, err := quantity.ParseMemory(memText)
	if err != nil {
		return 0, 0, err
	}
	return cpu, mem, nil
}

func usageField(obj *unstructured.Unstructured, resource string) (string, error) {
	value, found, err := unstructured.NestedString(obj.Object, "usage", resource)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("node metrics of %s have no %s usage", obj.GetName(), resource)
	}
	return value, nil
}
