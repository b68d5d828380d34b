// Package discovery builds a ClusterComponents snapshot of the namespaces,
// pods and nodes selected by the given patterns.
package discovery

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	corev1 "k8s.io/api/core/v1"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/clients"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/log"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/pattern"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/quantity"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/telemetry"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
)

// Patterns holds the comma separated patterns that select what gets discovered
type Patterns struct {
	Namespace string
	PodLabel  string
	NodeLabel string
}

// Discoverer lists the cluster through the clientsets
type Discoverer struct {
	clients *clients.ClientSets
	metrics MetricsSource
}

// Option configures a Discoverer
type Option func(*Discoverer)

// WithMetricsSource replaces the metrics server source, nil disables usage lookups
func WithMetricsSource(source MetricsSource) Option {
	return func(d *Discoverer) {
		d.metrics = source
	}
}

// New returns a Discoverer reading node usage from the metrics server unless
// another source is given
func New(clients *clients.ClientSets, opts ...Option) *Discoverer {
	d := &Discoverer{
		clients: clients,
		metrics: NewMetricsServerSource(clients),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover lists the namespaces, pods and nodes matching patterns and returns the complete snapshot.
// Nodes whose free resources cannot be computed are kept with both values set to types.Unavailable.
func (d *Discoverer) Discover(ctx context.Context, patterns Patterns) (*types.ClusterComponents, error) {
	ctx, span := telemetry.StartTracing(ctx, "DiscoverClusterComponents")
	defer span.End()

	nsMatcher, err := pattern.Compile(patterns.Namespace)
	if err != nil {
		return nil, err
	}
	podMatcher, err := pattern.Compile(patterns.PodLabel)
	if err != nil {
		return nil, err
	}
	nodeMatcher, err := pattern.Compile(patterns.NodeLabel)
	if err != nil {
		return nil, err
	}

	namespaces, err := d.discoverNamespaces(ctx, nsMatcher, patterns.Namespace)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	nodes, err := d.discoverNodes(ctx, nodeMatcher.With(types.HostnameLabel), patterns.NodeLabel)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	components := &types.ClusterComponents{Nodes: nodes}
	for _, name := range namespaces {
		pods, err := d.discoverPods(ctx, name, podMatcher)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		components.Namespaces = append(components.Namespaces, types.Namespace{Name: name, Pods: pods})
	}

	span.SetAttributes(
		attribute.Int("namespaces", len(components.Namespaces)),
		attribute.Int("pods", components.PodCount()),
		attribute.Int("nodes", len(components.Nodes)),
	)
	log.InfoWithValues("[Discovery]: The cluster components are as follows", map[string]interface{}{
		"Namespaces": len(components.Namespaces),
		"Pods":       components.PodCount(),
		"Nodes":      len(components.Nodes),
	})
	return components, nil
}

func (d *Discoverer) discoverNamespaces(ctx context.Context, matcher *pattern.Matcher, spec string) ([]string, error) {
	list, err := d.clients.ListNamespaces(ctx)
	if err != nil {
		return nil, &cerrors.DiscoveryError{Resource: "namespaces", Target: spec, Cause: err}
	}

	selected := map[string]struct{}{}
	for _, ns := range list.Items {
		if matcher.MatchesAny(ns.Name) {
			selected[ns.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)
	log.Debugf("[Discovery]: namespaces matching '%s': %v", spec, names)
	return names, nil
}

func (d *Discoverer) discoverPods(ctx context.Context, namespace string, matcher *pattern.Matcher) ([]types.Pod, error) {
	list, err := d.clients.ListPods(ctx, namespace)
	if err != nil {
		return nil, &cerrors.DiscoveryError{Resource: "pods", Target: namespace, Cause: err}
	}

	pods := make([]types.Pod, 0, len(list.Items))
	for _, pod := range list.Items {
		containers := make([]types.Container, 0, len(pod.Spec.Containers))
		for _, c := range pod.Spec.Containers {
			containers = append(containers, types.Container{Name: c.Name})
		}
		pods = append(pods, types.Pod{
			Name:       pod.Name,
			Labels:     matcher.FilterKeys(pod.Labels),
			Containers: containers,
		})
	}
	return pods, nil
}

func (d *Discoverer) discoverNodes(ctx context.Context, matcher *pattern.Matcher, spec string) ([]types.Node, error) {
	list, err := d.clients.ListNodes(ctx)
	if err != nil {
		return nil, &cerrors.DiscoveryError{Resource: "nodes", Target: spec, Cause: err}
	}

	nodes := make([]types.Node, 0, len(list.Items))
	for i := range list.Items {
		node := &list.Items[i]
		freeCPU, freeMem, err := d.freeResources(ctx, node)
		if err != nil {
			log.WarnWithValues("[Discovery]: Unable to compute free resources of node", map[string]interface{}{
				"Node":  node.Name,
				"Error": err.Error(),
			})
			telemetry.RecordNodeMetricsUnavailable(ctx, node.Name)
			freeCPU, freeMem = types.Unavailable, types.Unavailable
		}
		nodes = append(nodes, types.Node{
			Name:    node.Name,
			Labels:  matcher.FilterKeys(node.Labels),
			FreeCPU: freeCPU,
			FreeMem: freeMem,
		})
	}
	return nodes, nil
}

// freeResources returns allocatable minus used cpu (millicores) and memory (bytes)
func (d *Discoverer) freeResources(ctx context.Context, node *corev1.Node) (float64, int64, error) {
	if d.metrics == nil {
		return 0, 0, errMetricsDisabled
	}

	allocCPU, allocMem, err := allocatable(node)
	if err != nil {
		return 0, 0, err
	}
	usedCPU, usedMem, err := d.metrics.NodeUsage(ctx, node.Name)
	if err != nil {
		return 0, 0, err
	}
	return allocCPU - usedCPU, allocMem - usedMem, nil
}

func allocatable(node *corev1.Node) (float64, int64, error) {
	cpu, ok := node.Status.Allocatable[corev1.ResourceCPU]
	if !ok {
		return 0, 0, errNoAllocatable(node.Name, corev1.ResourceCPU)
	}
	mem, ok := node.Status.Allocatable[corev1.ResourceMemory]
	if !ok {
		return 0, 0, errNoAllocatable(node.Name, corev1.ResourceMemory)
	}

	allocCPU, err := quantity.ParseCPU(cpu.String())
	if err != nil {
		return 0, 0, err
	}
	allocMem, err := quantity.ParseMemory(mem.String())
	if err != nil {
		return 0, 0, err
	}
	return allocCPU, allocMem, nil
}
