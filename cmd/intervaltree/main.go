// Package main provides the entry point for the intervaltree demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akabanov57/IntervalTree/cmd/intervaltree/commands"
	"github.com/akabanov57/IntervalTree/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "intervaltree",
		Short: "Interval tree demo - exercise an augmented red-black interval tree",
		Long: `intervaltree drives pkg/intervaltree through a small scripting language.

Commands:
  run       Execute a script of insert/remove/search/overlap operations`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, version.String())
		},
	}
}
