package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func sampleSnapshot() *ClusterComponents {
	return &ClusterComponents{
		Namespaces: []Namespace{
			{Name: "default", Pods: []Pod{{Name: "web-0", Labels: map[string]string{"app": "web"}, Containers: []Container{{Name: "nginx"}}}}},
			{Name: "empty", Pods: []Pod{}},
		},
		Nodes: []Node{
			{Name: "node-1", Labels: map[string]string{HostnameLabel: "node-1", "zone": "a"}, FreeCPU: 1500, FreeMem: 1 << 30},
			{Name: "node-2", Labels: map[string]string{"zone": "a"}, FreeCPU: Unavailable, FreeMem: Unavailable},
		},
	}
}

func TestClusterComponents_Lookups(t *testing.T) {
	c := sampleSnapshot()

	ns, ok := c.Namespace("default")
	require.True(t, ok)
	assert.Len(t, ns.Pods, 1)

	_, ok = c.Namespace("missing")
	assert.False(t, ok)

	assert.Len(t, c.NodesWithLabel("zone", "a"), 2)
	assert.Empty(t, c.NodesWithLabel("zone", "b"))
	assert.Equal(t, 1, c.PodCount())
}

func TestNode_Helpers(t *testing.T) {
	c := sampleSnapshot()
	assert.True(t, c.Nodes[0].MetricsAvailable())
	assert.False(t, c.Nodes[1].MetricsAvailable())
	assert.Equal(t, "node-1", c.Nodes[0].Hostname())
	assert.Equal(t, "node-2", c.Nodes[1].Hostname())
}

func TestSortedLabelKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedLabelKeys(map[string]string{"c": "", "a": "", "b": ""}))
	assert.Empty(t, SortedLabelKeys(nil))
}

func TestClusterComponents_Serialization(t *testing.T) {
	c := sampleSnapshot()

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"free_cpu":-1`)
	assert.Contains(t, string(data), `"namespaces"`)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)

	var decoded ClusterComponents
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, *c, decoded)
}
