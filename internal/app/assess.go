package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"secposture/internal/assess"
	"secposture/internal/config"
	"secposture/internal/output"
)

func runAssess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color || !isatty.IsTerminal(os.Stdout.Fd()) {
		output.SetNoColor(true)
	}

	root, err := resolveProjectPath(args)
	if err != nil {
		return err
	}

	if _, err := os.Stat(root); err != nil {
		// Invalid path is reported as a structured error payload on
		// stdout with a non-zero exit, never a partial report.
		writeErrorJSON(fmt.Sprintf("Path does not exist: %s", root))
		return errReported
	}

	report := assess.Run(root)

	if flagSummary {
		renderSummary(report, cfg.Output.BarWidth)
		return nil
	}
	return renderJSON(report)
}

// resolveProjectPath returns the absolute project path from the optional
// positional argument, defaulting to the current working directory.
func resolveProjectPath(args []string) (string, error) {
	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determining working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", args[0], err)
	}
	return abs, nil
}

// writeErrorJSON emits a JSON error object to stdout.
func writeErrorJSON(msg string) {
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(map[string]string{"error": msg})
}

// renderJSON writes the pretty-printed report to stdout.
func renderJSON(report *assess.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// renderSummary writes a styled human-readable report to stdout.
func renderSummary(report *assess.Report, barWidth int) {
	fmt.Println(output.Section("Security Posture"))
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Project:"),
		output.StyleBold.Render(report.ProjectPath))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Score:"),
		output.ScoreBar(report.SecurityScore.Score, barWidth))
	fmt.Printf(" %s %s %s\n",
		output.StyleLabel.Render("Grade:"),
		output.GradeStyle(report.SecurityScore.Grade).Render(report.SecurityScore.Grade),
		output.StyleMuted.Render(report.SecurityScore.Assessment))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Languages:"),
		output.StyleValue.Render(languageList(report.Languages)))

	renderArtifactTable(report)
	renderRecommendationTable(report)
	fmt.Println()
}

// languageList joins detected language names, or "none" when empty.
func languageList(languages []assess.Language) string {
	if len(languages) == 0 {
		return "none"
	}
	names := make([]string, 0, len(languages))
	for _, l := range languages {
		names = append(names, l.Language)
	}
	return strings.Join(names, ", ")
}

func renderArtifactTable(report *assess.Report) {
	fmt.Println(output.Section("Security Artifacts"))
	fmt.Println()

	tbl := output.NewTable("Status", "Artifact", "Path")
	for _, key := range sortedArtifactKeys(report) {
		a := report.SecurityArtifacts[key]
		status := output.StyleError.Render("---")
		path := ""
		if a.Exists {
			status = output.StyleSuccess.Render("yes")
			if a.Path != nil {
				path = *a.Path
			}
		}
		tbl.AddRow(status, key, path)
	}
	tbl.Print()
}

func renderRecommendationTable(report *assess.Report) {
	fmt.Println(output.Section("Recommendations"))
	fmt.Println()

	if len(report.Recommendations) == 0 {
		fmt.Println(output.StyleMuted.Render(" Nothing to do."))
		return
	}

	tbl := output.NewTable("Priority", "Action", "Effort", "Time")
	for _, r := range report.Recommendations {
		tbl.AddRow(
			output.PriorityStyle(r.Priority).Render(r.Priority),
			r.Action,
			r.Effort,
			r.TimeEstimate,
		)
	}
	tbl.Print()
}

// sortedArtifactKeys returns artifact keys in lexical order for stable
// summary rendering.
func sortedArtifactKeys(report *assess.Report) []string {
	keys := make([]string, 0, len(report.SecurityArtifacts))
	for k := range report.SecurityArtifacts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
