package engine

import "github.com/canopyhq/canopy/pkg/domain"

// Propagate computes a score for every node that can receive one, given
// the current leaf-score mapping. It is a pure function of the tree and
// the mapping: no I/O, no shared state, identical output for identical
// input.
//
// Leaves take their input value directly; leaves absent from the mapping
// contribute nothing. An internal node's score is the weighted average
// over its scored children, normalized by the sum of their weights. A
// node none of whose children scored is itself unscored and is omitted
// from the result, which propagates upward exactly like a missing leaf.
//
// Keys in leafScores that do not name a leaf are ignored here; the facade
// reports them separately so one bad key cannot poison an evaluation.
func Propagate(t *Tree, leafScores map[string]float64) map[string]domain.ScoredNode {
	scores := make(map[string]float64, t.Len())

	// t.order guarantees children before parents, in declared order.
	for _, id := range t.order {
		if t.IsLeaf(id) {
			if v, ok := leafScores[id]; ok {
				scores[id] = v
			}
			continue
		}

		var weighted, total float64
		for _, child := range t.children[id] {
			v, ok := scores[child]
			if !ok {
				continue
			}
			w := t.nodes[child].Weight
			weighted += w * v
			total += w
		}
		if total == 0 {
			// No scored children, or only zero-weight ones. Either way
			// there is nothing meaningful to aggregate.
			continue
		}
		scores[id] = weighted / total
	}

	result := make(map[string]domain.ScoredNode, len(scores))
	for id, score := range scores {
		n := t.nodes[id]
		result[id] = domain.ScoredNode{
			ID:       id,
			Label:    n.Label,
			ParentID: n.ParentID,
			Score:    score,
			Status:   domain.Classify(score),
		}
	}
	return result
}
