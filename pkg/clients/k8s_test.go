package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	core_v1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

func newTestClients(objects ...runtime.Object) (*ClientSets, *fake.Clientset) {
	kube := fake.NewSimpleClientset(objects...)
	clients := NewClientSets(kube, nil)
	clients.Retry = RetryPolicy{Attempts: 3}
	return clients, kube
}

func TestListNamespaces(t *testing.T) {
	clients, _ := newTestClients(
		&core_v1.Namespace{ObjectMeta: v1.ObjectMeta{Name: "default"}},
		&core_v1.Namespace{ObjectMeta: v1.ObjectMeta{Name: "prod"}},
	)

	namespaces, err := clients.ListNamespaces(context.Background())
	require.NoError(t, err)
	assert.Len(t, namespaces.Items, 2)
}

func TestListPods_RetriesTransientFailures(t *testing.T) {
	clients, kube := newTestClients(
		&core_v1.Pod{ObjectMeta: v1.ObjectMeta{Name: "web-0", Namespace: "default"}},
	)

	calls := 0
	kube.PrependReactor("list", "pods", func(action k8stesting.Action) (bool, runtime.Object, error) {
		calls++
		if calls < 3 {
			return true, nil, errors.New("connection reset")
		}
		return false, nil, nil
	})

	pods, err := clients.ListPods(context.Background(), "default")
	require.NoError(t, err)
	assert.Len(t, pods.Items, 1)
	assert.Equal(t, 3, calls)
}

func TestListNodes_StopsOnForbidden(t *testing.T) {
	clients, kube := newTestClients()

	calls := 0
	kube.PrependReactor("list", "nodes", func(action k8stesting.Action) (bool, runtime.Object, error) {
		calls++
		return true, nil, k8serrors.NewForbidden(schema.GroupResource{Resource: "nodes"}, "", errors.New("denied"))
	})

	_, err := clients.ListNodes(context.Background())
	require.Error(t, err)
	assert.True(t, k8serrors.IsForbidden(err))
	assert.Equal(t, 1, calls)
}

func TestRetry_ZeroPolicyUsesDefault(t *testing.T) {
	clients := &ClientSets{}
	assert.NotNil(t, clients.retry())
	assert.Equal(t, uint(3), DefaultRetryPolicy.Attempts)
}
