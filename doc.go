/*
Package canopy is a weighted metric tree engine for supply chain health
scoring. It aggregates leaf-level operational metrics into higher-level
health scores, classifies every node into green/amber/red bands, and
traces any degraded node down to its most critical leaf.

# Concept

Canopy treats the supply chain as a static tree of metrics. Leaves carry
raw 0-100 scores supplied by a data collaborator; each internal node is
the weighted average of its scored children, normalized so missing data
never biases a parent. The root's score is the single supply chain
health score.

The tree definition is validated once at startup and never mutated;
every evaluation is a pure function over it, so concurrent callers need
no locking.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/canopyhq/canopy"
		"github.com/canopyhq/canopy/pkg/adapters/memory"
		"github.com/canopyhq/canopy/pkg/adapters/yamlfile"
	)

	func main() {
		eng, err := canopy.New(yamlfile.NewLoader("tree.yaml"),
			canopy.WithScoreProvider(memory.NewProvider(map[string]float64{
				"supplier-otd": 82,
				"freight-cost": 35,
			})),
		)
		if err != nil {
			log.Fatal(err) // structural errors are startup-fatal
		}

		snap, err := eng.Evaluate(context.Background())
		if err != nil {
			log.Fatal(err)
		}

		if health, ok := snap.Health(); ok {
			log.Printf("health %.1f (%s)", health.Score, health.Status)
		}
		for _, alert := range snap.Alerts {
			log.Printf("alert: %s traces to %s",
				alert.Node.ID, alert.Trace[len(alert.Trace)-1].ID)
		}
	}
*/
package canopy
