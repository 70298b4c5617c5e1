package canopy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/canopyhq/canopy/internal/engine"
	"github.com/canopyhq/canopy/pkg/domain"
	"github.com/canopyhq/canopy/pkg/ports"
)

// Version of the canopy module.
var Version = "0.3.0"

// Engine is the high-level entry point for the canopy library.
// It holds the validated, immutable tree definition and exposes the
// scoring, tracing, and alerting operations on top of it. One Engine is
// shared by all callers; every evaluation allocates its own outputs, so
// concurrent use needs no coordination.
type Engine struct {
	tree      *engine.Tree
	provider  ports.ScoreProvider
	store     ports.SnapshotStore
	threshold domain.Status
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithAlertThreshold sets the minimum severity that raises an alert.
// Default: domain.StatusRed. StatusAmber selects amber and red nodes.
func WithAlertThreshold(threshold domain.Status) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithScoreProvider wires the leaf-score source used by Evaluate.
func WithScoreProvider(p ports.ScoreProvider) Option {
	return func(e *Engine) {
		e.provider = p
	}
}

// WithSnapshotStore wires optional snapshot persistence. Evaluations are
// saved after computation; a store failure is logged, not returned, so a
// flaky store cannot break a read path.
func WithSnapshotStore(s ports.SnapshotStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// New loads the tree definition through the given loader, validates it,
// and returns a ready Engine. Structural violations (duplicate id,
// unknown parent, zero or multiple roots, cycle) fail here, at startup,
// never at evaluation time.
func New(loader ports.TreeLoader, opts ...Option) (*Engine, error) {
	eng := &Engine{
		threshold: domain.StatusRed,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if !eng.threshold.Valid() {
		return nil, fmt.Errorf("invalid alert threshold %q", eng.threshold)
	}

	defs, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tree definition: %w", err)
	}

	tree, err := engine.NewTree(defs)
	if err != nil {
		return nil, fmt.Errorf("invalid tree definition: %w", err)
	}
	eng.tree = tree

	eng.logger.Info("tree definition loaded",
		"nodes", tree.Len(),
		"leaves", len(tree.Leaves()),
		"root", tree.Root())
	return eng, nil
}

// Evaluate fetches the current leaf scores from the configured provider,
// propagates them through the tree, and returns the resulting snapshot.
// Requires WithScoreProvider.
func (e *Engine) Evaluate(ctx context.Context) (*domain.Snapshot, error) {
	if e.provider == nil {
		return nil, fmt.Errorf("no score provider configured")
	}
	scores, err := e.provider.Scores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaf scores: %w", err)
	}

	snap := e.EvaluateScores(scores)

	if e.store != nil {
		if err := e.store.Save(ctx, snap); err != nil {
			e.logger.Error("failed to persist snapshot", "error", err)
		}
	}
	return snap, nil
}

// EvaluateScores propagates an explicit leaf-score mapping. It is a pure
// function of the mapping and the static tree: no I/O, no persistence,
// bit-identical output for identical input.
//
// Unknown keys and out-of-range values are accepted (logged at warn) per
// the engine's permissiveness policy; they never fail an evaluation.
func (e *Engine) EvaluateScores(scores map[string]float64) *domain.Snapshot {
	for key, v := range scores {
		if n, ok := e.tree.Node(key); !ok {
			e.logger.Warn("ignoring score for unknown node", "node_id", key)
		} else if !e.tree.IsLeaf(n.ID) {
			e.logger.Warn("ignoring score for internal node", "node_id", key)
		} else if v < 0 || v > 100 {
			e.logger.Warn("leaf score outside expected 0-100 domain", "node_id", key, "score", v)
		}
	}

	scored := engine.Propagate(e.tree, scores)
	return &domain.Snapshot{
		TakenAt: time.Now().UTC(),
		Root:    e.tree.Root(),
		Nodes:   scored,
		Alerts:  engine.ExtractAlerts(e.tree, scored, e.threshold),
	}
}

// Trace computes the root-cause path for nodeID within a previously
// evaluated snapshot. Returns domain.ErrUnknownNode for an ID outside
// the tree and domain.ErrNodeUnscored when the node carries no score.
func (e *Engine) Trace(snap *domain.Snapshot, nodeID string) ([]domain.ScoredNode, error) {
	return engine.Trace(e.tree, snap.Nodes, nodeID)
}

// Inspect returns every node definition in declared order, for
// introspection and visualization surfaces.
func (e *Engine) Inspect() []domain.TreeNode {
	return e.tree.Definitions()
}

// Root returns the ID of the tree's root node.
func (e *Engine) Root() string { return e.tree.Root() }

// Leaves returns the IDs of all leaf nodes in declared order.
func (e *Engine) Leaves() []string { return e.tree.Leaves() }

// HasNode reports whether the tree defines the given node ID.
func (e *Engine) HasNode(id string) bool {
	_, ok := e.tree.Node(id)
	return ok
}

// AlertThreshold returns the configured alert severity threshold.
func (e *Engine) AlertThreshold() domain.Status { return e.threshold }
