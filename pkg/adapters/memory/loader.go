package memory

import (
	"fmt"

	"github.com/canopyhq/canopy/pkg/domain"
)

// TreeLoader implements ports.TreeLoader over in-memory definitions.
// This keeps tests free of filesystem fixtures.
type TreeLoader struct {
	defs []domain.TreeNode
}

// NewTreeLoader creates a loader from node definitions, preserving their
// declared order.
func NewTreeLoader(defs ...domain.TreeNode) (*TreeLoader, error) {
	for _, n := range defs {
		if n.ID == "" {
			return nil, fmt.Errorf("node missing ID (label %q)", n.Label)
		}
	}
	return &TreeLoader{defs: defs}, nil
}

// Load returns a copy of the definitions.
func (l *TreeLoader) Load() ([]domain.TreeNode, error) {
	out := make([]domain.TreeNode, len(l.defs))
	copy(out, l.defs)
	return out, nil
}
