// Command oxidecompat checks OxideKit ecosystem components for
// compatibility and plans multi-step migrations. It is a thin CLI over
// the oxidecompat library: all file reading and terminal output happen
// here, the decision logic stays in the library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "v0.1.0" // Overwritten at build time

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oxidecompat",
		Short: "OxideKit component compatibility and migration tool",
		Long: `oxidecompat checks whether OxideKit components (plugins, themes,
starters) are compatible with an installed core version, analyzes
upgrade safety, and chains migration guides into upgrade paths.`,
		SilenceUsage: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newCheckCmd(),
		newUpgradeCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("oxidecompat version %s\n", version)
		},
	}
}
