// Package memory provides in-memory implementations of the canopy ports:
// a ScoreProvider, a SnapshotStore, and a TreeLoader. They back tests,
// demos, and single-process deployments.
package memory
