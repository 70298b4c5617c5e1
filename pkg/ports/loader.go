package ports

import "github.com/canopyhq/canopy/pkg/domain"

// TreeLoader supplies the static tree definition at startup.
// This decouples the engine from the configuration source (YAML file,
// in-memory fixture, remote config service).
type TreeLoader interface {
	// Load returns every node of the tree definition. The engine
	// validates the structure; the loader only fetches it.
	Load() ([]domain.TreeNode, error)
}
