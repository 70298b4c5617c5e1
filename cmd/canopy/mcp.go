package main

import (
	"fmt"
	"os"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/internal/cli"
	"github.com/canopyhq/canopy/internal/logging"
	mcpadapter "github.com/canopyhq/canopy/pkg/adapters/mcp"
	"github.com/canopyhq/canopy/pkg/adapters/memory"
	"github.com/canopyhq/canopy/pkg/adapters/yamlfile"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Exposes the canopy engine to AI agents over the Model Context
Protocol: snapshot, alert, and trace tools plus the tree resource.`,
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		scoresPath, _ := cmd.Flags().GetString("scores")

		scores, err := cli.LoadScores(scoresPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scores: %v\n", err)
			os.Exit(1)
		}

		// Stdout belongs to the MCP transport; keep logs on stderr only.
		engine, err := canopy.New(yamlfile.NewLoader(treePath),
			canopy.WithLogger(logging.NewNop()),
			canopy.WithScoreProvider(memory.NewProvider(scores)),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing canopy: %v\n", err)
			os.Exit(1)
		}

		if err := mcpadapter.NewServer(engine).ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("scores", "s", "scores.yaml", "Path to the leaf scores file")
}
