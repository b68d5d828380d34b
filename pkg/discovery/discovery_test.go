package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/clients"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
)

type usage struct {
	cpu float64
	mem int64
}

type stubMetrics map[string]usage

func (s stubMetrics) NodeUsage(_ context.Context, node string) (float64, int64, error) {
	u, ok := s[node]
	if !ok {
		return 0, 0, errors.New("node not reporting")
	}
	return u.cpu, u.mem, nil
}

func namespace(name string) *corev1.Namespace {
	return &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: name}}
}

func pod(ns, name string, labels map[string]string, containers ...string) *corev1.Pod {
	p := &corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: ns, Labels: labels}}
	for _, c := range containers {
		p.Spec.Containers = append(p.Spec.Containers, corev1.Container{Name: c})
	}
	return p
}

func node(name string, labels map[string]string, cpu, mem string) *corev1.Node {
	n := &corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: name, Labels: labels}}
	if cpu != "" {
		n.Status.Allocatable = corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse(cpu),
			corev1.ResourceMemory: resource.MustParse(mem),
		}
	}
	return n
}

func testClients(objects ...runtime.Object) (*clients.ClientSets, *fake.Clientset) {
	kube := fake.NewSimpleClientset(objects...)
	c := clients.NewClientSets(kube, dynamicfake.NewSimpleDynamicClient(runtime.NewScheme()))
	c.Retry = clients.RetryPolicy{Attempts: 1}
	return c, kube
}

func clusterObjects() []runtime.Object {
	return []runtime.Object{
		namespace("prod-a"), namespace("prod-b"), namespace("stage-a"),
		pod("prod-a", "web-0", map[string]string{"app": "web", "pod-template-hash": "abc"}, "nginx", "sidecar"),
		pod("prod-b", "db-0", map[string]string{"app": "db"}, "postgres"),
		pod("stage-a", "web-0", map[string]string{"app": "web"}, "nginx"),
		node("node-1", map[string]string{types.HostnameLabel: "node-1", "zone": "a", "kubernetes.io/arch": "amd64"}, "4", "8Gi"),
		node("node-2", map[string]string{types.HostnameLabel: "node-2", "zone": "b"}, "2", "4Gi"),
	}
}

func TestDiscover(t *testing.T) {
	c, _ := testClients(clusterObjects()...)
	d := New(c, WithMetricsSource(stubMetrics{
		"node-1": {cpu: 1500, mem: 2 << 30},
		"node-2": {cpu: 250, mem: 1 << 30},
	}))

	snapshot, err := d.Discover(context.Background(), Patterns{Namespace: "prod-.*", PodLabel: "app", NodeLabel: "zone"})
	require.NoError(t, err)

	require.Len(t, snapshot.Namespaces, 2)
	names := []string{snapshot.Namespaces[0].Name, snapshot.Namespaces[1].Name}
	assert.ElementsMatch(t, []string{"prod-a", "prod-b"}, names)

	ns, ok := snapshot.Namespace("prod-a")
	require.True(t, ok)
	require.Len(t, ns.Pods, 1)
	assert.Equal(t, map[string]string{"app": "web"}, ns.Pods[0].Labels)
	assert.Equal(t, []types.Container{{Name: "nginx"}, {Name: "sidecar"}}, ns.Pods[0].Containers)

	require.Len(t, snapshot.Nodes, 2)
	for _, n := range snapshot.Nodes {
		assert.Contains(t, n.Labels, types.HostnameLabel)
		assert.Contains(t, n.Labels, "zone")
		assert.NotContains(t, n.Labels, "kubernetes.io/arch")
	}

	byName := map[string]types.Node{}
	for _, n := range snapshot.Nodes {
		byName[n.Name] = n
	}
	assert.InDelta(t, 2500, byName["node-1"].FreeCPU, 1e-9)
	assert.Equal(t, int64(6<<30), byName["node-1"].FreeMem)
	assert.InDelta(t, 1750, byName["node-2"].FreeCPU, 1e-9)
	assert.Equal(t, int64(3<<30), byName["node-2"].FreeMem)
}

func TestDiscover_EmptyPatternsStillKeepHostname(t *testing.T) {
	c, _ := testClients(clusterObjects()...)
	d := New(c, WithMetricsSource(stubMetrics{}))

	snapshot, err := d.Discover(context.Background(), Patterns{})
	require.NoError(t, err)

	assert.Empty(t, snapshot.Namespaces)
	require.Len(t, snapshot.Nodes, 2)
	for _, n := range snapshot.Nodes {
		assert.Equal(t, map[string]string{types.HostnameLabel: n.Name}, n.Labels)
	}
}

func TestDiscover_MetricsFailureIsolatedPerNode(t *testing.T) {
	c, _ := testClients(clusterObjects()...)
	d := New(c, WithMetricsSource(stubMetrics{
		"node-1": {cpu: 1000, mem: 1 << 30},
	}))

	snapshot, err := d.Discover(context.Background(), Patterns{Namespace: ".*", PodLabel: ".*", NodeLabel: ".*"})
	require.NoError(t, err)
	require.Len(t, snapshot.Nodes, 2)

	for _, n := range snapshot.Nodes {
		switch n.Name {
		case "node-1":
			assert.True(t, n.MetricsAvailable())
			assert.InDelta(t, 3000, n.FreeCPU, 1e-9)
		case "node-2":
			assert.Equal(t, float64(types.Unavailable), n.FreeCPU)
			assert.Equal(t, int64(types.Unavailable), n.FreeMem)
		}
	}
	assert.Len(t, snapshot.Namespaces, 3)
}

func TestDiscover_MissingAllocatable(t *testing.T) {
	c, _ := testClients(node("bare", map[string]string{types.HostnameLabel: "bare"}, "", ""))
	d := New(c, WithMetricsSource(stubMetrics{"bare": {cpu: 1, mem: 1}}))

	snapshot, err := d.Discover(context.Background(), Patterns{NodeLabel: ".*"})
	require.NoError(t, err)
	require.Len(t, snapshot.Nodes, 1)
	assert.False(t, snapshot.Nodes[0].MetricsAvailable())
}

func TestDiscover_NilMetricsSource(t *testing.T) {
	c, _ := testClients(clusterObjects()...)
	d := New(c, WithMetricsSource(nil))

	snapshot, err := d.Discover(context.Background(), Patterns{NodeLabel: ".*"})
	require.NoError(t, err)
	for _, n := range snapshot.Nodes {
		assert.False(t, n.MetricsAvailable())
	}
}

func TestDiscover_ListFailures(t *testing.T) {
	for _, resourceName := range []string{"namespaces", "pods", "nodes"} {
		t.Run(resourceName, func(t *testing.T) {
			c, kube := testClients(clusterObjects()...)
			kube.PrependReactor("list", resourceName, func(action k8stesting.Action) (bool, runtime.Object, error) {
				return true, nil, errors.New("apiserver unavailable")
			})

			_, err := New(c, WithMetricsSource(stubMetrics{})).Discover(context.Background(), Patterns{Namespace: "prod-.*"})
			require.Error(t, err)

			var discoveryErr *cerrors.DiscoveryError
			require.True(t, errors.As(err, &discoveryErr))
			assert.Equal(t, resourceName, discoveryErr.Resource)
			assert.Contains(t, err.Error(), "apiserver unavailable")
			if resourceName == "pods" {
				assert.Contains(t, []string{"prod-a", "prod-b"}, discoveryErr.Target)
			}
		})
	}
}

func TestDiscover_InvalidPattern(t *testing.T) {
	c, _ := testClients()
	_, err := New(c).Discover(context.Background(), Patterns{Namespace: "(["})
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrorTypeConfig, cerrors.GetErrorType(err))
}

func nodeMetrics(name, cpu, mem string) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "metrics.k8s.io/v1beta1",
		"kind":       "NodeMetrics",
		"metadata":   map[string]interface{}{"name": name},
		"usage":      map[string]interface{}{"cpu": cpu, "memory": mem},
	}}
}

func TestMetricsServerSource(t *testing.T) {
	c, _ := testClients(clusterObjects()...)
	dyn := c.DynamicClient.(*dynamicfake.FakeDynamicClient)
	dyn.PrependReactor("get", "nodes", func(action k8stesting.Action) (bool, runtime.Object, error) {
		name := action.(k8stesting.GetAction).GetName()
		switch name {
		case "node-1":
			return true, nodeMetrics(name, "363874038n", "1024Mi"), nil
		case "node-2":
			return true, nodeMetrics(name, "bogus", "1Gi"), nil
		}
		return true, nil, errors.New("not found")
	})

	source := NewMetricsServerSource(c)
	cpu, mem, err := source.NodeUsage(context.Background(), "node-1")
	require.NoError(t, err)
	assert.InDelta(t, 363.874038, cpu, 1e-6)
	assert.Equal(t, int64(1<<30), mem)

	_, _, err = source.NodeUsage(context.Background(), "node-2")
	require.Error(t, err)

	_, _, err = source.NodeUsage(context.Background(), "node-3")
	require.Error(t, err)

	snapshot, err := New(c).Discover(context.Background(), Patterns{NodeLabel: ".*"})
	require.NoError(t, err)
	for _, n := range snapshot.Nodes {
		if n.Name == "node-1" {
			assert.InDelta(t, 4000-363.874038, n.FreeCPU, 1e-6)
			assert.Equal(t, int64(7<<30), n.FreeMem)
		} else {
			assert.False(t, n.MetricsAvailable())
		}
	}
}
