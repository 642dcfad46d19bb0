// Package cmd wires the chartspec CLI: an MCP server over stdio or HTTP, and
// an offline generator for running the same pipeline against local files.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chartspec",
	Short: "Build validated chart specifications from CSV, JSON records, or explicit datasets",
	Long: `chartspec converts loosely-structured tabular input into a validated,
renderer-agnostic chart specification: category labels, aligned numeric
series, and presentation metadata.

Run "chartspec serve" to expose the pipeline as MCP tools, or
"chartspec gen" to run it once against a local file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
