package domain

import "time"

// TreeNode is the static definition of a single node in the metric tree.
// The tree shape is fixed at process start; nodes are never added or
// removed at runtime.
type TreeNode struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// ParentID references the parent node. Empty only for the root.
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`

	// Weight is the node's contribution to its parent's aggregate.
	// Sibling weights need not sum to 1; the scorer normalizes over the
	// children that actually produced a score.
	Weight float64 `json:"weight" yaml:"weight"`
}

// ScoredNode is the per-evaluation result for a single node.
// Instances are request-scoped and never mutated after construction.
type ScoredNode struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	ParentID string  `json:"parent_id,omitempty"`
	Score    float64 `json:"score"`
	Status   Status  `json:"status"`
}

// AlertEntry is a node that breached the configured severity threshold,
// annotated with the root-cause trace from that node down to a leaf.
type AlertEntry struct {
	Node  ScoredNode   `json:"node"`
	Trace []ScoredNode `json:"trace"`
}

// Snapshot is the full output of one evaluation: every node that received
// a defined score, plus the extracted alerts. Nodes whose entire subtree
// lacked input data are absent from Nodes.
type Snapshot struct {
	TakenAt time.Time             `json:"taken_at"`
	Root    string                `json:"root"`
	Nodes   map[string]ScoredNode `json:"nodes"`
	Alerts  []AlertEntry          `json:"alerts"`
}

// Health returns the root's scored node, i.e. the overall supply chain
// health score. ok is false when no leaf produced a score.
func (s *Snapshot) Health() (ScoredNode, bool) {
	n, ok := s.Nodes[s.Root]
	return n, ok
}
