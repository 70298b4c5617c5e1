// Package domain contains the core value types of the canopy metric tree:
// the static TreeNode definition, per-evaluation ScoredNode results,
// status bands, alerts, and snapshots.
//
// Everything here is plain data. TreeNode values describe the immutable
// tree shape loaded at startup; ScoredNode, AlertEntry, and Snapshot are
// request-scoped outputs created fresh on every evaluation.
package domain
