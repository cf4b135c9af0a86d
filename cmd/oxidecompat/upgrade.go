package main

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	oxidecompat "github.com/oxidekit/go-oxidecompat"
)

var upgradeCoreVersion string

func newUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade OLD_MANIFEST NEW_MANIFEST",
		Short: "Analyze the safety of upgrading a component",
		Long: `Diff two versions of one component for upgrade safety. Warnings are
informational; blocking issues mean the new version cannot run against
the installed core.

Example:
  oxidecompat upgrade installed/oxide.toml candidate/oxide.toml --core 0.8.0`,
		Args: cobra.ExactArgs(2),
		RunE: runUpgrade,
	}

	cmd.Flags().StringVar(&upgradeCoreVersion, "core", "", "Installed OxideKit core version (required)")
	_ = cmd.MarkFlagRequired("core")

	return cmd
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	core, err := semver.NewVersion(upgradeCoreVersion)
	if err != nil {
		return fmt.Errorf("invalid --core version %q: %w", upgradeCoreVersion, err)
	}

	from, err := loadComponent(args[0])
	if err != nil {
		return err
	}
	to, err := loadComponent(args[1])
	if err != nil {
		return err
	}

	checker := oxidecompat.NewChecker(core)
	analysis := checker.CheckUpgradeSafety(from, to)

	if analysis.Safe {
		color.Green("Upgrade %s: %s -> %s is safe", to.Name, from.Version, to.Version)
	} else {
		color.Red("Upgrade %s: %s -> %s is BLOCKED", to.Name, from.Version, to.Version)
	}
	fmt.Println()
	fmt.Print(analysis.Report())

	if !analysis.Safe {
		os.Exit(1)
	}
	return nil
}
