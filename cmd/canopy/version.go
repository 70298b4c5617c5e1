package main

import (
	"fmt"
	"strings"

	"github.com/canopyhq/canopy"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the canopy version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("canopy version %s\n", strings.TrimSpace(canopy.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
