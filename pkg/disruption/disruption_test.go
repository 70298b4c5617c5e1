package disruption

import (
	"context"
	"testing"

	"github.com/canopyhq/canopy/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_ApplyScalesAffectedLeaves(t *testing.T) {
	s := Scenario{Name: "port-strike", Leaves: []string{"freight-cost"}, Severity: 0.5}

	in := map[string]float64{"freight-cost": 80, "transit-time": 90}
	out := s.Apply(in)

	assert.Equal(t, 40.0, out["freight-cost"])
	assert.Equal(t, 90.0, out["transit-time"])
	// Input must stay untouched.
	assert.Equal(t, 80.0, in["freight-cost"])
}

func TestScenario_ApplySkipsMissingLeaves(t *testing.T) {
	s := Scenario{Name: "blackout", Leaves: []string{"absent"}, Severity: 1}

	out := s.Apply(map[string]float64{"present": 50})
	assert.NotContains(t, out, "absent")
	assert.Equal(t, 50.0, out["present"])
}

func TestScenario_Validate(t *testing.T) {
	assert.Error(t, Scenario{Name: "empty"}.Validate())
	assert.Error(t, Scenario{Name: "hot", Leaves: []string{"a"}, Severity: 1.5}.Validate())
	assert.Error(t, Scenario{Name: "cold", Leaves: []string{"a"}, Severity: -0.1}.Validate())
	assert.NoError(t, Scenario{Name: "ok", Leaves: []string{"a"}, Severity: 0.3}.Validate())
}

func TestProvider_DecoratesInner(t *testing.T) {
	inner := memory.NewProvider(map[string]float64{"a": 100, "b": 60})

	p, err := NewProvider(inner, Scenario{Name: "squeeze", Leaves: []string{"a"}, Severity: 0.25})
	require.NoError(t, err)

	got, err := p.Scores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 75.0, got["a"])
	assert.Equal(t, 60.0, got["b"])
}
