package clients

import (
	"context"
	"time"

	core_v1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/retry"
)

// NodeMetricsResource is the metrics.k8s.io resource serving per node usage
var NodeMetricsResource = schema.GroupVersionResource{Group: "metrics.k8s.io", Version: "v1beta1", Resource: "nodes"}

// RetryPolicy controls how often a failing list call is repeated
type RetryPolicy struct {
	Attempts uint
	Wait     time.Duration
}

// DefaultRetryPolicy is used when no policy is set
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Wait: 2 * time.Second}

func (clients *ClientSets) retry() *retry.Model {
	policy := clients.Retry
	if policy.Attempts == 0 {
		policy = DefaultRetryPolicy
	}
	return retry.
		Times(policy.Attempts).
		Wait(policy.Wait).
		StopOn(isPermanent)
}

// authorization failures will not heal between attempts
func isPermanent(err error) bool {
	return k8serrors.IsUnauthorized(err) || k8serrors.IsForbidden(err)
}

// ListNamespaces lists every namespace of the cluster
func (clients *ClientSets) ListNamespaces(ctx context.Context) (*core_v1.NamespaceList, error) {
	var (
		namespaces *core_v1.NamespaceList
		err        error
	)

	if err := clients.retry().TryWithContext(ctx, func(attempt uint) error {
		namespaces, err = clients.KubeClient.CoreV1().Namespaces().List(ctx, v1.ListOptions{})
		return err
	}); err != nil {
		return nil, err
	}

	return namespaces, nil
}

// ListPods lists every pod of the given namespace
func (clients *ClientSets) ListPods(ctx context.Context, namespace string) (*core_v1.PodList, error) {
	var (
		pods *core_v1.PodList
		err  error
	)

	if err := clients.retry().TryWithContext(ctx, func(attempt uint) error {
		pods, err = clients.KubeClient.CoreV1().Pods(namespace).List(ctx, v1.ListOptions{})
		return err
	}); err != nil {
		return nil, err
	}

	return pods, nil
}

// ListNodes lists every node of the cluster
func (clients *ClientSets) ListNodes(ctx context.Context) (*core_v1.NodeList, error) {
	var (
		nodes *core_v1.NodeList
		err   error
	)

	if err := clients.retry().TryWithContext(ctx, func(attempt uint) error {
		nodes, err = clients.KubeClient.CoreV1().Nodes().List(ctx, v1.ListOptions{})
		return err
	}); err != nil {
		return nil, err
	}

	return nodes, nil
}

// GetNodeMetrics fetches the NodeMetrics object of a node. It is not retried,
// a node that does not report is handled by the caller.
func (clients *ClientSets) GetNodeMetrics(ctx context.Context, name string) (*unstructured.Unstructured, error) {
	return clients.DynamicClient.Resource(NodeMetricsResource).Get(ctx, name, v1.GetOptions{})
}
