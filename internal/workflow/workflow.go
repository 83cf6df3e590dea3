package workflow

import (
	"fmt"
	"sort"
)

// Node is a single vertex in a composed workflow. It stands in for an opaque
// processing sub-graph: only its identifier, its named ports and its
// construction-time parameters are visible to the composer.
type Node struct {
	// ID is the unique, human-readable identifier of the node.
	ID string
	// In is the set of named input ports the node accepts connections on.
	In map[string]struct{}
	// Out is the set of named output ports the node produces.
	Out map[string]struct{}
	// Params carries resolved values fixed at construction time (file paths,
	// tuning toggles, the thread budget). They are opaque to the composer and
	// forwarded untouched to whatever executes the node.
	Params map[string]any
}

// NewNode creates a node with the given port contract and no parameters.
func NewNode(id string, inputs, outputs []string) *Node {
	n := &Node{
		ID:     id,
		In:     make(map[string]struct{}, len(inputs)),
		Out:    make(map[string]struct{}, len(outputs)),
		Params: make(map[string]any),
	}
	for _, name := range inputs {
		n.In[name] = struct{}{}
	}
	for _, name := range outputs {
		n.Out[name] = struct{}{}
	}
	return n
}

// WithParam records a construction-time parameter and returns the node so
// calls can be chained while the node is being assembled. Parameters must not
// be changed once the node has been added to a workflow.
func (n *Node) WithParam(key string, value any) *Node {
	n.Params[key] = value
	return n
}

// Inputs returns the node's input port names in sorted order.
func (n *Node) Inputs() []string {
	return sortedKeys(n.In)
}

// Outputs returns the node's output port names in sorted order.
func (n *Node) Outputs() []string {
	return sortedKeys(n.Out)
}

func sortedKeys(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Edge is a directed connection from an output port of one node to an input
// port of another.
type Edge struct {
	FromNode string
	FromPort string
	ToNode   string
	ToPort   string
}

// Workflow is a directed graph of opaque nodes. It is assembled once by the
// composer and must be treated as immutable afterwards; execution of its
// nodes is the responsibility of an external engine.
type Workflow struct {
	// Name identifies the workflow as a whole.
	Name string
	// Nodes maps node IDs to their definitions.
	Nodes map[string]*Node
	// Edges lists every connection, in the order it was made.
	Edges []Edge
}

// New creates an empty workflow with the given name.
func New(name string) *Workflow {
	return &Workflow{
		Name:  name,
		Nodes: make(map[string]*Node),
	}
}

// AddNode adds a node to the workflow. An error is returned if a node with
// the same ID is already present.
func (w *Workflow) AddNode(n *Node) error {
	if _, ok := w.Nodes[n.ID]; ok {
		return fmt.Errorf("workflow %q: duplicate node ID %q", w.Name, n.ID)
	}
	w.Nodes[n.ID] = n
	return nil
}

// Connect creates an edge from an output port of one node to an input port of
// another. Both nodes and both ports must exist, and an input port may have
// at most one incoming edge.
func (w *Workflow) Connect(fromID, fromPort, toID, toPort string) error {
	from, ok := w.Nodes[fromID]
	if !ok {
		return fmt.Errorf("workflow %q: source node not found: %s", w.Name, fromID)
	}
	to, ok := w.Nodes[toID]
	if !ok {
		return fmt.Errorf("workflow %q: destination node not found: %s", w.Name, toID)
	}
	if _, ok := from.Out[fromPort]; !ok {
		return fmt.Errorf("workflow %q: node %q has no output port %q", w.Name, fromID, fromPort)
	}
	if _, ok := to.In[toPort]; !ok {
		return fmt.Errorf("workflow %q: node %q has no input port %q", w.Name, toID, toPort)
	}
	if e, ok := w.EdgeInto(toID, toPort); ok {
		return fmt.Errorf("workflow %q: input %s.%s already connected from %s.%s",
			w.Name, toID, toPort, e.FromNode, e.FromPort)
	}
	w.Edges = append(w.Edges, Edge{
		FromNode: fromID,
		FromPort: fromPort,
		ToNode:   toID,
		ToPort:   toPort,
	})
	return nil
}

// Node returns the node with the given ID, if present.
func (w *Workflow) Node(id string) (*Node, bool) {
	n, ok := w.Nodes[id]
	return n, ok
}

// NodeIDs returns the IDs of all nodes in sorted order.
func (w *Workflow) NodeIDs() []string {
	ids := make([]string, 0, len(w.Nodes))
	for id := range w.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EdgeInto returns the edge feeding the given input port, if one exists.
func (w *Workflow) EdgeInto(nodeID, port string) (Edge, bool) {
	for _, e := range w.Edges {
		if e.ToNode == nodeID && e.ToPort == port {
			return e, true
		}
	}
	return Edge{}, false
}

// EdgesFrom returns every edge leaving the given node.
func (w *Workflow) EdgesFrom(nodeID string) []Edge {
	var edges []Edge
	for _, e := range w.Edges {
		if e.FromNode == nodeID {
			edges = append(edges, e)
		}
	}
	return edges
}
