package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Canopy is a weighted metric tree engine for supply chain health scoring",
	Long: `Canopy aggregates leaf-level operational metrics into a single supply
chain health score, classifies every node into green/amber/red bands,
and traces degraded nodes to their root-cause leaf.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("tree", "tree.yaml", "Path to the tree definition file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}
