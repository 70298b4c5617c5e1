// Package ports defines the boundary interfaces between the canopy engine
// and its collaborators: tree definition loading, leaf-score supply, and
// snapshot persistence.
//
// The engine depends only on these interfaces; concrete implementations
// live under pkg/adapters.
package ports
