package ports

import "context"

// ScoreProvider supplies the current leaf-score mapping for an evaluation.
// The engine treats the mapping as opaque input: it does not care whether
// scores come from stored records, a live feed, or a simulated override.
//
// Leaves absent from the mapping are treated as having no data for that
// evaluation. Values outside 0-100 are accepted and propagated as-is.
type ScoreProvider interface {
	Scores(ctx context.Context) (map[string]float64, error)
}

// ScoreProviderFunc adapts a plain function to the ScoreProvider interface.
type ScoreProviderFunc func(ctx context.Context) (map[string]float64, error)

func (f ScoreProviderFunc) Scores(ctx context.Context) (map[string]float64, error) {
	return f(ctx)
}
