// Package app contains the Cobra command tree for secposture.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagNoColor bool
	flagSummary bool
)

// errReported marks errors that were already written to stdout as a JSON
// payload; Execute exits non-zero without printing them again.
var errReported = errors.New("error already reported")

var rootCmd = &cobra.Command{
	Use:   "secposture [project_path]",
	Short: "Assess a project's security posture",
	Long: `secposture scans a project directory for programming languages, security
artifacts (policies, CI workflows, SBOMs), CI/CD configuration, and branch
protection indicators. It emits a JSON report with a 0-100 security score
and prioritized remediation recommendations.

With no argument the current working directory is assessed.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAssess,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/secposture/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&flagSummary, "summary", false, "Render a human-readable summary instead of JSON")
}
