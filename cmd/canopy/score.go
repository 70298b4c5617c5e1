package main

import (
	"context"
	"fmt"
	"os"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/internal/cli"
	"github.com/canopyhq/canopy/internal/logging"
	"github.com/canopyhq/canopy/pkg/adapters/memory"
	"github.com/canopyhq/canopy/pkg/adapters/yamlfile"
	"github.com/canopyhq/canopy/pkg/domain"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Evaluate the tree once and print the scored snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		scoresPath, _ := cmd.Flags().GetString("scores")
		level, _ := cmd.Flags().GetString("log-level")
		threshold, _ := cmd.Flags().GetString("alert-threshold")

		scores, err := cli.LoadScores(scoresPath)
		if err != nil {
			fmt.Printf("Error loading scores: %v\n", err)
			os.Exit(1)
		}

		eng, err := canopy.New(yamlfile.NewLoader(treePath),
			canopy.WithLogger(logging.New(logging.ParseLevel(level))),
			canopy.WithScoreProvider(memory.NewProvider(scores)),
			canopy.WithAlertThreshold(domain.Status(threshold)),
		)
		if err != nil {
			fmt.Printf("Error initializing canopy: %v\n", err)
			os.Exit(1)
		}

		snap, err := eng.Evaluate(context.Background())
		if err != nil {
			fmt.Printf("Evaluation failed: %v\n", err)
			os.Exit(1)
		}

		cli.RenderSnapshot(os.Stdout, eng.Inspect(), snap)

		fmt.Println()
		if health, ok := snap.Health(); ok {
			fmt.Printf("Supply Chain Health Score: %.1f (%s)\n", health.Score, cli.RenderStatus(health.Status))
		} else {
			fmt.Println("Supply Chain Health Score: no data")
		}

		fmt.Println()
		cli.RenderAlerts(os.Stdout, snap.Alerts)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringP("scores", "s", "scores.yaml", "Path to the leaf scores file")
	scoreCmd.Flags().String("alert-threshold", "red", "Minimum severity that raises an alert: red or amber")
}
