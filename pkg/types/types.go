package types

import "sort"

const (
	// HostnameLabel is the well-known node label carrying the node's hostname
	HostnameLabel = "kubernetes.io/hostname"
	// Unavailable marks free cpu or memory that could not be computed
	Unavailable = -1
)

// ClusterComponents is the discovered topology snapshot.
// It is built in one step by discovery and read-only afterwards.
type ClusterComponents struct {
	Namespaces []Namespace `json:"namespaces" yaml:"namespaces"`
	Nodes      []Node      `json:"nodes" yaml:"nodes"`
}

// Namespace is a namespace along with the pods discovered in it
type Namespace struct {
	Name string `json:"name" yaml:"name"`
	Pods []Pod  `json:"pods" yaml:"pods"`
}

// Pod holds the pattern filtered labels and the containers of a pod
type Pod struct {
	Name       string            `json:"name" yaml:"name"`
	Labels     map[string]string `json:"labels" yaml:"labels"`
	Containers []Container       `json:"containers" yaml:"containers"`
}

// Container is a container of a pod
type Container struct {
	Name string `json:"name" yaml:"name"`
}

// Node holds the pattern filtered labels of a node and its free resources.
// FreeCPU is in millicores and FreeMem in bytes, both Unavailable when unknown.
type Node struct {
	Name    string            `json:"name" yaml:"name"`
	Labels  map[string]string `json:"labels" yaml:"labels"`
	FreeCPU float64           `json:"free_cpu" yaml:"free_cpu"`
	FreeMem int64             `json:"free_mem" yaml:"free_mem"`
}

// Namespace returns the namespace with the given name
func (c *ClusterComponents) Namespace(name string) (Namespace, bool) {
	for _, ns := range c.Namespaces {
		if ns.Name == name {
			return ns, true
		}
	}
	return Namespace{}, false
}

// NodesWithLabel returns the nodes carrying key=value
func (c *ClusterComponents) NodesWithLabel(key, value string) []Node {
	var nodes []Node
	for _, node := range c.Nodes {
		if v, ok := node.Labels[key]; ok && v == value {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// PodCount returns the number of pods across all namespaces
func (c *ClusterComponents) PodCount() int {
	count := 0
	for _, ns := range c.Namespaces {
		count += len(ns.Pods)
	}
	return count
}

// MetricsAvailable reports whether both free resources of the node are known
func (n Node) MetricsAvailable() bool {
	return n.FreeCPU != Unavailable && n.FreeMem != Unavailable
}

// Hostname returns the hostname label of the node, falling back to its name
func (n Node) Hostname() string {
	if h, ok := n.Labels[HostnameLabel]; ok && h != "" {
		return h
	}
	return n.Name
}

// SortedLabelKeys returns the label keys in lexical order
func SortedLabelKeys(labels map[string]string) []string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
