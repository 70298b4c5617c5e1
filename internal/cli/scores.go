package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scoresFile is the on-disk structure of a leaf-score file.
type scoresFile struct {
	Scores map[string]float64 `yaml:"scores"`
}

// LoadScores reads a YAML file mapping leaf node IDs to 0-100 scores.
// Out-of-range values are accepted here; the engine logs them.
func LoadScores(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scores file: %w", err)
	}

	var cfg scoresFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(cfg.Scores) == 0 {
		return nil, fmt.Errorf("scores file %s contains no scores", path)
	}
	return cfg.Scores, nil
}
