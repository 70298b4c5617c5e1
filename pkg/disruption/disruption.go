// Package disruption implements the simulation collaborator: named
// scenarios that degrade a subset of leaf scores by a severity factor
// before an evaluation. The engine itself stays pure; a scenario only
// rewrites the input mapping.
package disruption

import (
	"context"
	"fmt"

	"github.com/canopyhq/canopy/pkg/ports"
)

// Scenario degrades the listed leaves by Severity.
// A severity of 0.6 keeps 40% of each affected leaf's score.
type Scenario struct {
	Name     string   `json:"name" yaml:"name"`
	Leaves   []string `json:"leaves" yaml:"leaves"`
	Severity float64  `json:"severity" yaml:"severity"`
}

// Validate checks the scenario's shape before use.
func (s Scenario) Validate() error {
	if len(s.Leaves) == 0 {
		return fmt.Errorf("scenario %q affects no leaves", s.Name)
	}
	if s.Severity < 0 || s.Severity > 1 {
		return fmt.Errorf("scenario %q severity %v outside [0,1]", s.Name, s.Severity)
	}
	return nil
}

// Apply returns a new mapping with the affected leaves scaled down.
// The input mapping is never mutated. Affected leaves without a score
// stay absent: a disruption cannot invent data.
func (s Scenario) Apply(scores map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for k, v := range scores {
		out[k] = v
	}
	for _, leaf := range s.Leaves {
		if v, ok := out[leaf]; ok {
			out[leaf] = v * (1 - s.Severity)
		}
	}
	return out
}

// Provider decorates a ScoreProvider with a scenario, so a disrupted
// evaluation flows through the exact same path as a live one.
type Provider struct {
	inner    ports.ScoreProvider
	scenario Scenario
}

// NewProvider wraps inner with the given scenario.
func NewProvider(inner ports.ScoreProvider, scenario Scenario) (*Provider, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &Provider{inner: inner, scenario: scenario}, nil
}

// Scores fetches the live mapping and applies the scenario to it.
func (p *Provider) Scores(ctx context.Context) (map[string]float64, error) {
	scores, err := p.inner.Scores(ctx)
	if err != nil {
		return nil, err
	}
	return p.scenario.Apply(scores), nil
}
