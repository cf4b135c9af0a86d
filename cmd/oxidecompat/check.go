package main

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	oxidecompat "github.com/oxidekit/go-oxidecompat"
	"github.com/oxidekit/go-oxidecompat/manifest"
)

var (
	checkCoreVersion string
	checkCatalog     []string
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check MANIFEST",
		Short: "Check a component manifest against an installed core version",
		Long: `Check whether the component described by an oxide.toml manifest is
compatible with the given OxideKit core version, and whether its
required dependencies are satisfiable from a catalog of other
manifests.

Examples:
  # Check a plugin against core 0.8.0
  oxidecompat check oxide.toml --core 0.8.0

  # Also check its dependencies against installed components
  oxidecompat check oxide.toml --core 0.8.0 --catalog plugins/icons/oxide.toml`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&checkCoreVersion, "core", "", "Installed OxideKit core version (required)")
	cmd.Flags().StringSliceVar(&checkCatalog, "catalog", nil, "Manifests of installed components, for dependency checks")
	_ = cmd.MarkFlagRequired("core")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	core, err := semver.NewVersion(checkCoreVersion)
	if err != nil {
		return fmt.Errorf("invalid --core version %q: %w", checkCoreVersion, err)
	}

	component, err := loadComponent(args[0])
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(checkCatalog)
	if err != nil {
		return err
	}

	checker := oxidecompat.NewChecker(core)

	result := checker.CheckComponent(component)
	printResult(result)

	failed := !result.Compatible
	for _, depResult := range checker.CheckDependencies(component, catalog) {
		printResult(depResult)
		if !depResult.Compatible {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

func printResult(result oxidecompat.CompatibilityResult) {
	if result.Compatible {
		fmt.Printf("%s %s %s (%s)\n",
			color.GreenString("✓"), result.Component, result.Version, result.Level)
		return
	}

	fmt.Printf("%s %s: %s\n",
		color.RedString("✗"), result.Component, result.Explanation)
	if result.Suggestion != "" {
		fmt.Printf("  %s %s\n", color.YellowString("→"), result.Suggestion)
	}
}

func loadComponent(path string) (*oxidecompat.ComponentVersion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	component, err := m.ComponentVersion()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return component, nil
}

func loadCatalog(paths []string) ([]oxidecompat.ComponentVersion, error) {
	var catalog []oxidecompat.ComponentVersion
	for _, path := range paths {
		component, err := loadComponent(path)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, *component)
	}
	return catalog, nil
}
