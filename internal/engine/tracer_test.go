package engine

import (
	"testing"

	"github.com/canopyhq/canopy/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathIDs(path []domain.ScoredNode) []string {
	ids := make([]string, len(path))
	for i, sn := range path {
		ids[i] = sn.ID
	}
	return ids
}

func TestTrace_DescendsIntoLowestChild(t *testing.T) {
	tree, err := NewTree(supplyChainFixture())
	require.NoError(t, err)

	scored := Propagate(tree, map[string]float64{
		"supplier-otd":     90,
		"supplier-quality": 20,
		"freight-cost":     85,
		"transit-time":     80,
	})

	path, err := Trace(tree, scored, "root")
	require.NoError(t, err)

	// suppliers = (1*90+3*20)/4 = 37.5, logistics = 82.5.
	assert.Equal(t, []string{"root", "suppliers", "supplier-quality"}, pathIDs(path))
	assert.True(t, tree.IsLeaf(path[len(path)-1].ID), "trace must terminate at a leaf")
}

func TestTrace_TieBreaksByDeclaredChildOrder(t *testing.T) {
	tree, err := NewTree([]domain.TreeNode{
		{ID: "R"},
		{ID: "first", ParentID: "R", Weight: 1},
		{ID: "second", ParentID: "R", Weight: 1},
	})
	require.NoError(t, err)

	scored := Propagate(tree, map[string]float64{"first": 25, "second": 25})

	path, err := Trace(tree, scored, "R")
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "first"}, pathIDs(path))
}

func TestTrace_SingleChildChain(t *testing.T) {
	// Root -> A (leaf, 20). Trace from root is [R, A].
	tree, err := NewTree([]domain.TreeNode{
		{ID: "R"},
		{ID: "A", ParentID: "R", Weight: 1},
	})
	require.NoError(t, err)

	scored := Propagate(tree, map[string]float64{"A": 20})
	require.Equal(t, domain.StatusRed, scored["R"].Status)

	path, err := Trace(tree, scored, "R")
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "A"}, pathIDs(path))
}

func TestTrace_StartAtLeaf(t *testing.T) {
	tree, err := NewTree(supplyChainFixture())
	require.NoError(t, err)

	scored := Propagate(tree, map[string]float64{"freight-cost": 15})
	path, err := Trace(tree, scored, "freight-cost")
	require.NoError(t, err)
	assert.Equal(t, []string{"freight-cost"}, pathIDs(path))
}

func TestTrace_SkipsUnscoredChildren(t *testing.T) {
	tree, err := NewTree(supplyChainFixture())
	require.NoError(t, err)

	// supplier-quality has the lowest weight-adjusted pull, but it is
	// unscored; the trace must never select it.
	scored := Propagate(tree, map[string]float64{
		"supplier-otd": 35,
		"freight-cost": 90,
		"transit-time": 88,
	})

	path, err := Trace(tree, scored, "root")
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "suppliers", "supplier-otd"}, pathIDs(path))
}

func TestTrace_SelfRootCauseWhenNoChildScored(t *testing.T) {
	// Hand-built scored mapping: internal node scored, children not.
	// This mirrors a caller tracing a node whose subtree lost its data
	// between evaluations. The node reports itself as root cause.
	tree, err := NewTree([]domain.TreeNode{
		{ID: "R"},
		{ID: "mid", ParentID: "R", Weight: 1},
		{ID: "leaf", ParentID: "mid", Weight: 1},
	})
	require.NoError(t, err)

	scored := map[string]domain.ScoredNode{
		"mid": {ID: "mid", Score: 42, Status: domain.StatusAmber},
	}

	path, err := Trace(tree, scored, "mid")
	require.NoError(t, err)
	assert.Equal(t, []string{"mid"}, pathIDs(path))
}

func TestTrace_UnknownNode(t *testing.T) {
	tree, err := NewTree(supplyChainFixture())
	require.NoError(t, err)

	_, err = Trace(tree, map[string]domain.ScoredNode{}, "ghost")
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
}

func TestTrace_UnscoredStart(t *testing.T) {
	tree, err := NewTree(supplyChainFixture())
	require.NoError(t, err)

	_, err = Trace(tree, map[string]domain.ScoredNode{}, "suppliers")
	assert.ErrorIs(t, err, domain.ErrNodeUnscored)
}
