package engine

import (
	"fmt"
	"math"

	"github.com/canopyhq/canopy/pkg/domain"
)

// Trace walks from startID down to the root cause: at every step it
// descends into the strictly lowest-scored child, breaking ties by
// declared child order. The walk stops at a leaf, or at a node none of
// whose children carry a score — that node is then its own root cause.
//
// The returned path starts at startID and every element has a defined
// score. Returns domain.ErrUnknownNode for an ID outside the tree and
// domain.ErrNodeUnscored when the start node received no score.
func Trace(t *Tree, scored map[string]domain.ScoredNode, startID string) ([]domain.ScoredNode, error) {
	if _, ok := t.Node(startID); !ok {
		return nil, fmt.Errorf("trace %q: %w", startID, domain.ErrUnknownNode)
	}
	start, ok := scored[startID]
	if !ok {
		return nil, fmt.Errorf("trace %q: %w", startID, domain.ErrNodeUnscored)
	}

	path := []domain.ScoredNode{start}
	cur := startID
	for !t.IsLeaf(cur) {
		next := ""
		best := math.Inf(1)
		for _, child := range t.children[cur] {
			sn, ok := scored[child]
			if !ok {
				continue
			}
			if sn.Score < best {
				best = sn.Score
				next = child
			}
		}
		if next == "" {
			// All children unscored: cur is reported as its own root cause.
			break
		}
		path = append(path, scored[next])
		cur = next
	}
	return path, nil
}
