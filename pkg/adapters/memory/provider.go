package memory

import (
	"context"
	"sync"
)

// Provider implements ports.ScoreProvider over an in-memory mapping.
// Safe for concurrent use; intended for tests, demos, and as the target
// of disruption overrides.
type Provider struct {
	scores map[string]float64
	mu     sync.RWMutex
}

// NewProvider creates a provider seeded with the given leaf scores.
// The input map is copied, not retained.
func NewProvider(scores map[string]float64) *Provider {
	p := &Provider{scores: make(map[string]float64, len(scores))}
	for k, v := range scores {
		p.scores[k] = v
	}
	return p
}

// Scores returns a copy of the current mapping so callers can never
// mutate provider state through the result.
func (p *Provider) Scores(ctx context.Context) (map[string]float64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]float64, len(p.scores))
	for k, v := range p.scores {
		out[k] = v
	}
	return out, nil
}

// Set updates a single leaf score, e.g. from a live measurement feed.
func (p *Provider) Set(leafID string, score float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scores[leafID] = score
}

// Delete removes a leaf score, simulating missing data.
func (p *Provider) Delete(leafID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.scores, leafID)
}
