// Package assess scans a project tree and produces a security posture report.
package assess

import "secposture/internal/recommend"

// Language is one detected programming language with its package manager label.
type Language struct {
	Language       string `json:"language"`
	PackageManager string `json:"package_manager"`
}

// Artifact records whether a single security-relevant file or directory was
// found, and if so at which candidate path.
type Artifact struct {
	// Exists indicates whether any candidate path for this artifact exists.
	Exists bool `json:"exists"`

	// Path is the first matching candidate path relative to the project
	// root, or null when the artifact is absent.
	Path *string `json:"path"`

	// Description is the human-readable purpose of the artifact.
	Description string `json:"description"`

	// Priority is the artifact's importance tier: low, medium, or high.
	Priority string `json:"priority"`
}

// CISetup describes the detected CI/CD configuration.
type CISetup struct {
	// CISystems maps CI system names to true for each system whose
	// indicator path exists. Absent systems are omitted entirely.
	CISystems map[string]bool `json:"ci_systems"`

	// HasCI is true when at least one CI system indicator was found.
	HasCI bool `json:"has_ci"`

	// HasTests is true when a conventional test directory exists or a
	// root-level file matches a known test filename pattern.
	HasTests bool `json:"has_tests"`

	// WorkflowsCount is the number of workflow config files directly
	// inside .github/workflows (zero when the directory is absent).
	WorkflowsCount int `json:"workflows_count"`
}

// BranchProtection holds weak indicators of a review process. Actual branch
// protection settings live server-side and cannot be verified from the tree.
type BranchProtection struct {
	PRTemplateExists bool   `json:"pr_template_exists"`
	CodeownersExists bool   `json:"codeowners_exists"`
	Note             string `json:"note,omitempty"`
}

// Score is the computed security posture score.
type Score struct {
	Score        int    `json:"score"`
	Grade        string `json:"grade"`
	Assessment   string `json:"assessment"`
	ChecksPassed int    `json:"checks_passed"`
	TotalChecks  int    `json:"total_checks"`
}

// Summary aggregates headline counts for the report.
type Summary struct {
	LanguagesDetected    int `json:"languages_detected"`
	ArtifactsPresent     int `json:"artifacts_present"`
	ArtifactsMissing     int `json:"artifacts_missing"`
	RecommendationsCount int `json:"recommendations_count"`
	CriticalIssues       int `json:"critical_issues"`
	HighIssues           int `json:"high_issues"`
}

// Report is the full assessment result for one project.
type Report struct {
	ProjectPath       string                     `json:"project_path"`
	Languages         []Language                 `json:"languages"`
	SecurityArtifacts map[string]Artifact        `json:"security_artifacts"`
	CISetup           CISetup                    `json:"ci_setup"`
	BranchProtection  BranchProtection           `json:"branch_protection_indicators"`
	SecurityScore     Score                      `json:"security_score"`
	Recommendations   []recommend.Recommendation `json:"recommendations"`
	Summary           Summary                    `json:"summary"`
}
