package domain

import "errors"

// ErrUnknownNode is returned when a requested node ID does not exist in
// the tree definition. It is a caller-facing, recoverable condition.
var ErrUnknownNode = errors.New("unknown node")

// ErrNodeUnscored is returned when an operation (e.g. a trace) targets a
// node that received no defined score in the evaluation. Missing data is
// a normal runtime condition, so callers should branch on this rather
// than treat it as a failure.
var ErrNodeUnscored = errors.New("node has no score in this evaluation")

// ErrSnapshotNotFound is returned when a snapshot store holds no snapshot
// for the requested key.
var ErrSnapshotNotFound = errors.New("snapshot not found")
