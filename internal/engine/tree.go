package engine

import (
	"fmt"

	"github.com/canopyhq/canopy/pkg/domain"
)

// Tree is the validated, immutable tree definition shared by all
// evaluations. Construct it once at startup with NewTree; it is safe for
// concurrent readers and exposes no mutation API.
type Tree struct {
	nodes    map[string]domain.TreeNode
	children map[string][]string // declared order
	ids      []string            // all node IDs, declared order
	leaves   []string            // leaf IDs, declared order
	order    []string            // evaluation order: every child before its parent
	root     string
}

// NewTree validates the node definitions and builds the evaluation order.
// It fails fast on any structural violation: duplicate ID, unknown parent
// reference, zero or multiple roots, cycle, or negative weight. A process
// must not serve requests with an invalid tree.
func NewTree(defs []domain.TreeNode) (*Tree, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("tree definition is empty")
	}

	t := &Tree{
		nodes:    make(map[string]domain.TreeNode, len(defs)),
		children: make(map[string][]string),
		ids:      make([]string, 0, len(defs)),
	}

	for _, n := range defs {
		if n.ID == "" {
			return nil, fmt.Errorf("node with empty id (label %q)", n.Label)
		}
		if _, dup := t.nodes[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %q", n.ID)
		}
		if n.Weight < 0 {
			return nil, fmt.Errorf("node %q has negative weight %v", n.ID, n.Weight)
		}
		t.nodes[n.ID] = n
		t.ids = append(t.ids, n.ID)
	}

	for _, id := range t.ids {
		n := t.nodes[id]
		if n.ParentID == "" {
			if t.root != "" {
				return nil, fmt.Errorf("multiple roots: %q and %q", t.root, id)
			}
			t.root = id
			continue
		}
		if _, ok := t.nodes[n.ParentID]; !ok {
			return nil, fmt.Errorf("node %q references unknown parent %q", id, n.ParentID)
		}
		t.children[n.ParentID] = append(t.children[n.ParentID], id)
	}
	if t.root == "" {
		return nil, fmt.Errorf("no root node (every node has a parent)")
	}

	// Cycle detection: walk the ancestor chain of every node. With single
	// parents, a chain longer than the node count must have looped.
	for _, id := range t.ids {
		cur := t.nodes[id].ParentID
		for steps := 0; cur != ""; steps++ {
			if cur == id {
				return nil, fmt.Errorf("cycle detected through node %q", id)
			}
			if steps > len(t.ids) {
				return nil, fmt.Errorf("cycle detected in ancestors of node %q", id)
			}
			cur = t.nodes[cur].ParentID
		}
	}

	for _, id := range t.ids {
		if len(t.children[id]) == 0 {
			t.leaves = append(t.leaves, id)
		}
	}

	t.order = t.postOrder()
	return t, nil
}

// postOrder computes the bottom-up evaluation order once at load time.
// Children are visited in declared order so repeated evaluations are
// bit-identical.
func (t *Tree) postOrder() []string {
	order := make([]string, 0, len(t.ids))
	var visit func(id string)
	visit = func(id string) {
		for _, c := range t.children[id] {
			visit(c)
		}
		order = append(order, id)
	}
	visit(t.root)
	return order
}

// Root returns the ID of the root node.
func (t *Tree) Root() string { return t.root }

// Node returns the definition of the node with the given ID.
func (t *Tree) Node(id string) (domain.TreeNode, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// IDs returns all node IDs in declared order.
func (t *Tree) IDs() []string { return t.ids }

// Leaves returns the IDs of all leaf nodes in declared order.
func (t *Tree) Leaves() []string { return t.leaves }

// IsLeaf reports whether the node has no children.
func (t *Tree) IsLeaf(id string) bool { return len(t.children[id]) == 0 }

// Children returns the IDs of the node's direct children in declared
// order. The weight of each child is carried on the child's definition.
func (t *Tree) Children(id string) []string { return t.children[id] }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.ids) }

// Definitions returns every node definition in declared order.
// Used by introspection surfaces (HTTP /tree, MCP resource).
func (t *Tree) Definitions() []domain.TreeNode {
	defs := make([]domain.TreeNode, 0, len(t.ids))
	for _, id := range t.ids {
		defs = append(defs, t.nodes[id])
	}
	return defs
}
