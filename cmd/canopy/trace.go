package main

import (
	"context"
	"fmt"
	"os"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/internal/cli"
	"github.com/canopyhq/canopy/pkg/adapters/memory"
	"github.com/canopyhq/canopy/pkg/adapters/yamlfile"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace NODE_ID",
	Short: "Print the root-cause trace for a node",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		scoresPath, _ := cmd.Flags().GetString("scores")

		scores, err := cli.LoadScores(scoresPath)
		if err != nil {
			fmt.Printf("Error loading scores: %v\n", err)
			os.Exit(1)
		}

		eng, err := canopy.New(yamlfile.NewLoader(treePath),
			canopy.WithScoreProvider(memory.NewProvider(scores)),
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

		path, err := eng.Trace(snap, args[0])
		if err != nil {
			fmt.Printf("Trace failed: %v\n", err)
			os.Exit(1)
		}

		cli.RenderTrace(os.Stdout, path)
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringP("scores", "s", "scores.yaml", "Path to the leaf scores file")
}
