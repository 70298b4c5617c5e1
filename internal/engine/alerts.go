package engine

import (
	"sort"

	"github.com/canopyhq/canopy/pkg/domain"
)

// ExtractAlerts selects every scored node whose status is at least as
// severe as threshold and annotates it with its root-cause trace.
// The result is ordered ascending by score (most severe first), with
// node ID as a stable secondary key.
func ExtractAlerts(t *Tree, scored map[string]domain.ScoredNode, threshold domain.Status) []domain.AlertEntry {
	var hits []domain.ScoredNode
	for _, id := range t.ids {
		sn, ok := scored[id]
		if !ok {
			continue
		}
		if sn.Status.AtLeast(threshold) {
			hits = append(hits, sn)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score < hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})

	alerts := make([]domain.AlertEntry, 0, len(hits))
	for _, sn := range hits {
		// Trace cannot fail here: sn came from the scored mapping.
		trace, err := Trace(t, scored, sn.ID)
		if err != nil {
			continue
		}
		alerts = append(alerts, domain.AlertEntry{Node: sn, Trace: trace})
	}
	return alerts
}
