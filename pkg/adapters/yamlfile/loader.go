package yamlfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/canopyhq/canopy/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.TreeLoader by reading a tree definition file
// (YAML by default, JSON by extension). The file is the static
// configuration source of the tree shape; it is read once at startup.
type Loader struct {
	path string
}

// treeFile is the on-disk structure of tree.yaml / tree.json.
type treeFile struct {
	Tree []domain.TreeNode `yaml:"tree" json:"tree"`
}

// NewLoader creates a loader for the given definition file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and parses the definition file. Parse failures and an empty
// node list are errors: a process must not start without a usable tree.
func (l *Loader) Load() ([]domain.TreeNode, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree definition: %w", err)
	}

	var cfg treeFile
	ext := strings.ToLower(filepath.Ext(l.path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", l.path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", l.path, err)
		}
	}

	if len(cfg.Tree) == 0 {
		return nil, fmt.Errorf("tree definition %s contains no nodes", l.path)
	}
	return cfg.Tree, nil
}
