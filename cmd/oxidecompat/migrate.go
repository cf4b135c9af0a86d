package main

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oxidekit/go-oxidecompat/migration"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateGuides string
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Plan multi-step migrations from a guide library",
	}

	cmd.AddCommand(newMigratePathCmd())

	return cmd
}

func newMigratePathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find and render a migration path between two versions",
		Long: `Load a YAML guide library, chain guides into a path from one version
to another, and print the combined migration document.

Example:
  oxidecompat migrate path --from 0.5.0 --to 0.8.0 --guides guides.yaml`,
		RunE: runMigratePath,
	}

	cmd.Flags().StringVar(&migrateFrom, "from", "", "Current version (required)")
	cmd.Flags().StringVar(&migrateTo, "to", "", "Target version (required)")
	cmd.Flags().StringVar(&migrateGuides, "guides", "", "Path to the YAML guide library (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("guides")

	return cmd
}

func runMigratePath(cmd *cobra.Command, args []string) error {
	from, err := semver.NewVersion(migrateFrom)
	if err != nil {
		return fmt.Errorf("invalid --from version %q: %w", migrateFrom, err)
	}
	to, err := semver.NewVersion(migrateTo)
	if err != nil {
		return fmt.Errorf("invalid --to version %q: %w", migrateTo, err)
	}

	data, err := os.ReadFile(migrateGuides)
	if err != nil {
		return err
	}
	plan, err := migration.LoadLibrary(data)
	if err != nil {
		return err
	}

	path := plan.FindPath(from, to)
	if len(path) == 0 {
		color.Red("No migration path found from %s to %s", from, to)
		os.Exit(1)
	}

	color.Green("Found a %d-hop migration path (%d steps total)", len(path), plan.TotalSteps(path))
	if minutes, ok := plan.TotalTime(path); ok {
		fmt.Printf("Estimated time: %d minutes\n", minutes)
	} else {
		fmt.Println("Estimated time: unknown")
	}
	fmt.Println()
	fmt.Print(plan.PathToMarkdown(path))

	return nil
}
