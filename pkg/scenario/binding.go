package scenario

import (
	"sort"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/cerrors"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/log"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/types"
	"github.com/litmuschaos/litmus-scenario-gen/pkg/utils/rng"
)

// PodTarget is the pod picked by a pod targeting scenario
type PodTarget struct {
	Namespace  string
	Pod        types.Pod
	LabelKey   string
	LabelValue string
}

// Label returns the picked label in the key=value form
func (t PodTarget) Label() string {
	return t.LabelKey + "=" + t.LabelValue
}

// NodeTarget is the node selection picked by a node targeting scenario
type NodeTarget struct {
	// Selector is the key=value node selector
	Selector string
	// Count is the number of nodes to target, within [1, nodes carrying Selector]
	Count int
	// Node is set when a single node was picked by hostname
	Node *types.Node
}

// SelectPod picks a uniformly random namespace and then a uniformly random pod in it
func SelectPod(snapshot *types.ClusterComponents, r *rng.Source) (PodTarget, error) {
	if snapshot == nil || len(snapshot.Namespaces) == 0 {
		return PodTarget{}, &cerrors.TargetSelectionError{Reason: "no namespaces discovered, check the namespace pattern"}
	}
	ns := rng.Choice(r, snapshot.Namespaces)
	if len(ns.Pods) == 0 {
		return PodTarget{}, &cerrors.TargetSelectionError{Target: ns.Name, Reason: "namespace has no pods"}
	}
	pod := rng.Choice(r, ns.Pods)
	log.Debugf("[Binding]: selected pod %s/%s", ns.Name, pod.Name)
	return PodTarget{Namespace: ns.Name, Pod: pod}, nil
}

// SelectPodLabel picks a pod as SelectPod does and then a uniformly random
// label of that pod. Keys are sorted so a seed replays the same pick.
func SelectPodLabel(snapshot *types.ClusterComponents, r *rng.Source) (PodTarget, error) {
	target, err := SelectPod(snapshot, r)
	if err != nil {
		return target, err
	}
	if len(target.Pod.Labels) == 0 {
		return PodTarget{}, &cerrors.TargetSelectionError{
			Target: target.Namespace + "/" + target.Pod.Name,
			Reason: "pod has no labels matching the pod label pattern",
		}
	}
	target.LabelKey = rng.Choice(r, types.SortedLabelKeys(target.Pod.Labels))
	target.LabelValue = target.Pod.Labels[target.LabelKey]
	return target, nil
}

// SelectNodes targets either a single random node by its hostname label, or
// with equal probability a random label shared by one or more nodes along with
// a node count bounded by the number of nodes carrying it
func SelectNodes(snapshot *types.ClusterComponents, r *rng.Source) (NodeTarget, error) {
	if snapshot == nil || len(snapshot.Nodes) == 0 {
		return NodeTarget{}, &cerrors.TargetSelectionError{Reason: "no nodes discovered"}
	}

	counts := map[string]int{}
	for _, node := range snapshot.Nodes {
		for k, v := range node.Labels {
			counts[k+"="+v]++
		}
	}

	if r.Bool(0.5) || len(counts) == 0 {
		node := rng.Choice(r, snapshot.Nodes)
		log.Debugf("[Binding]: selected node %s by hostname", node.Name)
		return NodeTarget{
			Selector: types.HostnameLabel + "=" + node.Hostname(),
			Count:    1,
			Node:     &node,
		}, nil
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	label := rng.Choice(r, labels)
	count := r.IntRange(1, counts[label])
	log.Debugf("[Binding]: selected %d of %d nodes labelled %s", count, counts[label], label)
	return NodeTarget{Selector: label, Count: count}, nil
}
