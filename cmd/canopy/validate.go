package main

import (
	"fmt"
	"os"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/pkg/adapters/yamlfile"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the tree definition",
	Long: `Loads the tree definition and runs the structural checks: duplicate
IDs, unknown parent references, zero or multiple roots, cycles, and
negative weights. Exits non-zero on any violation.`,
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")

		eng, err := canopy.New(yamlfile.NewLoader(treePath))
		if err != nil {
			fmt.Printf("Invalid tree definition: %v\n", err)
			os.Exit(1)
		}

		defs := eng.Inspect()
		fmt.Printf("Tree definition OK: %d nodes, %d leaves, root %q\n",
			len(defs), len(eng.Leaves()), eng.Root())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
