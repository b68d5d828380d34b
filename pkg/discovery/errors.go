package discovery

import (
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
)

var errMetricsDisabled = errors.New("node metrics lookup is disabled")

func errNoAllocatable(node string, resource corev1.ResourceName) error {
	return errors.Errorf("node %s does not report allocatable %s", node, resource)
}
