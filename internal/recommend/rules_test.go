package recommend

import (
	"strings"
	"testing"
)

// emptyContext returns a context where every artifact is missing and no CI,
// tests, or PR template were found.
func emptyContext() *Context {
	return &Context{ArtifactExists: map[string]bool{}}
}

// withArtifacts returns an empty context with the named artifacts present.
func withArtifacts(keys ...string) *Context {
	ctx := emptyContext()
	for _, k := range keys {
		ctx.ArtifactExists[k] = true
	}
	return ctx
}

// --- MissingSecurityPolicy ---

func TestMissingSecurityPolicy_Fires(t *testing.T) {
	recs := MissingSecurityPolicy(emptyContext())
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	r := recs[0]
	if r.Priority != PriorityCritical {
		t.Errorf("expected priority critical, got %q", r.Priority)
	}
	if r.Category != "documentation" {
		t.Errorf("expected category documentation, got %q", r.Category)
	}
	if r.Action != "Create SECURITY.md" {
		t.Errorf("unexpected action %q", r.Action)
	}
	if r.Effort != "low" || r.TimeEstimate != "15 minutes" {
		t.Errorf("unexpected effort/time: %q %q", r.Effort, r.TimeEstimate)
	}
}

func TestMissingSecurityPolicy_Satisfied(t *testing.T) {
	recs := MissingSecurityPolicy(withArtifacts("security_policy"))
	if len(recs) != 0 {
		t.Fatalf("expected 0 recommendations, got %d", len(recs))
	}
}

// --- MissingDependencyBot ---

func TestMissingDependencyBot_BothMissing(t *testing.T) {
	recs := MissingDependencyBot(emptyContext())
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Priority != PriorityHigh {
		t.Errorf("expected priority high, got %q", recs[0].Priority)
	}
}

func TestMissingDependencyBot_RenovateOnly(t *testing.T) {
	// Either bot satisfies the check: OR semantics, not AND.
	recs := MissingDependencyBot(withArtifacts("renovate"))
	if len(recs) != 0 {
		t.Fatalf("expected no recommendation with renovate present, got %d", len(recs))
	}
}

func TestMissingDependencyBot_DependabotOnly(t *testing.T) {
	recs := MissingDependencyBot(withArtifacts("dependabot"))
	if len(recs) != 0 {
		t.Fatalf("expected no recommendation with dependabot present, got %d", len(recs))
	}
}

// --- MissingLicense ---

func TestMissingLicense(t *testing.T) {
	if recs := MissingLicense(emptyContext()); len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs := MissingLicense(withArtifacts("license")); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations, got %d", len(recs))
	}
}

// --- CI-gated workflow rules ---

func TestMissingScorecardWorkflow_RequiresCI(t *testing.T) {
	// Without CI there is nowhere to run the workflow.
	if recs := MissingScorecardWorkflow(emptyContext()); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations without CI, got %d", len(recs))
	}

	ctx := emptyContext()
	ctx.HasCI = true
	recs := MissingScorecardWorkflow(ctx)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation with CI, got %d", len(recs))
	}
	if recs[0].Action != "Add OpenSSF Scorecard workflow" {
		t.Errorf("unexpected action %q", recs[0].Action)
	}
}

func TestMissingCodeQLWorkflow_RequiresCI(t *testing.T) {
	ctx := emptyContext()
	ctx.HasCI = true
	if recs := MissingCodeQLWorkflow(ctx); len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	ctx = withArtifacts("codeql_workflow")
	ctx.HasCI = true
	if recs := MissingCodeQLWorkflow(ctx); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations when workflow exists, got %d", len(recs))
	}
}

func TestMissingSLSAProvenance_RequiresCI(t *testing.T) {
	if recs := MissingSLSAProvenance(emptyContext()); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations without CI, got %d", len(recs))
	}
	ctx := emptyContext()
	ctx.HasCI = true
	if recs := MissingSLSAProvenance(ctx); len(recs) != 1 {
		t.Fatalf("expected 1 recommendation with CI, got %d", len(recs))
	}
}

// --- MissingTests ---

func TestMissingTests(t *testing.T) {
	recs := MissingTests(emptyContext())
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Effort != "high" || recs[0].TimeEstimate != "varies" {
		t.Errorf("unexpected effort/time: %q %q", recs[0].Effort, recs[0].TimeEstimate)
	}

	ctx := emptyContext()
	ctx.HasTests = true
	if recs := MissingTests(ctx); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations with tests, got %d", len(recs))
	}
}

// --- MissingSBOMWorkflow ---

func TestMissingSBOMWorkflow_CommittedSBOMSuffices(t *testing.T) {
	ctx := withArtifacts("sbom")
	ctx.HasCI = true
	if recs := MissingSBOMWorkflow(ctx); len(recs) != 0 {
		t.Fatalf("committed SBOM should suppress the workflow recommendation, got %d", len(recs))
	}
}

func TestMissingSBOMWorkflow_Fires(t *testing.T) {
	ctx := emptyContext()
	ctx.HasCI = true
	if recs := MissingSBOMWorkflow(ctx); len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
}

// --- MissingSecretsScanning ---

func TestMissingSecretsScanning_GitleaksConfigSuffices(t *testing.T) {
	ctx := withArtifacts("gitleaks_config")
	ctx.HasCI = true
	if recs := MissingSecretsScanning(ctx); len(recs) != 0 {
		t.Fatalf("gitleaks config should suppress the recommendation, got %d", len(recs))
	}
}

func TestMissingSecretsScanning_Fires(t *testing.T) {
	ctx := emptyContext()
	ctx.HasCI = true
	recs := MissingSecretsScanning(ctx)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if !strings.Contains(recs[0].Action, "secrets scanning") {
		t.Errorf("unexpected action %q", recs[0].Action)
	}
}

// --- MissingPRTemplate ---

func TestMissingPRTemplate(t *testing.T) {
	recs := MissingPRTemplate(emptyContext())
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Priority != PriorityMedium {
		t.Errorf("expected priority medium, got %q", recs[0].Priority)
	}

	ctx := emptyContext()
	ctx.PRTemplateExists = true
	if recs := MissingPRTemplate(ctx); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations, got %d", len(recs))
	}
}

// --- Low-priority rules ---

func TestLowPriorityRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{"contributing", MissingContributing},
		{"codeowners", MissingCodeowners},
		{"pre_commit", MissingPreCommitConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recs := tc.rule(emptyContext())
			if len(recs) != 1 {
				t.Fatalf("expected 1 recommendation, got %d", len(recs))
			}
			if recs[0].Priority != PriorityLow {
				t.Errorf("expected priority low, got %q", recs[0].Priority)
			}
		})
	}
}

// --- LanguageAuditTools ---

func TestLanguageAuditTools_NoLanguages(t *testing.T) {
	if recs := LanguageAuditTools(emptyContext()); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations, got %d", len(recs))
	}
}

func TestLanguageAuditTools_KnownTools(t *testing.T) {
	tests := []struct {
		language string
		tool     string
	}{
		{"python", "pip-audit"},
		{"javascript", "npm audit"},
		{"go", "govulncheck"},
		{"rust", "cargo audit"},
		{"ruby", "bundler-audit"},
		{"java", "OWASP Dependency-Check"},
		{"php", "composer audit"},
		{"dotnet", "dotnet list package --vulnerable"},
	}
	for _, tc := range tests {
		t.Run(tc.language, func(t *testing.T) {
			ctx := emptyContext()
			ctx.Languages = []string{tc.language}
			recs := LanguageAuditTools(ctx)
			if len(recs) != 1 {
				t.Fatalf("expected 1 recommendation, got %d", len(recs))
			}
			if !strings.Contains(recs[0].Action, tc.tool) {
				t.Errorf("expected action to mention %q, got %q", tc.tool, recs[0].Action)
			}
			if recs[0].Priority != PriorityMedium {
				t.Errorf("expected priority medium, got %q", recs[0].Priority)
			}
		})
	}
}

func TestLanguageAuditTools_UnknownLanguageSkipped(t *testing.T) {
	ctx := emptyContext()
	ctx.Languages = []string{"swift", "elixir", "kotlin", "typescript"}
	if recs := LanguageAuditTools(ctx); len(recs) != 0 {
		t.Fatalf("expected 0 recommendations for languages without audit tools, got %d", len(recs))
	}
}

func TestLanguageAuditTools_FixedOrder(t *testing.T) {
	ctx := emptyContext()
	// Detection order does not matter; the audit table order does.
	ctx.Languages = []string{"go", "python"}
	recs := LanguageAuditTools(ctx)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if !strings.Contains(recs[0].Action, "pip-audit") {
		t.Errorf("expected pip-audit first, got %q", recs[0].Action)
	}
	if !strings.Contains(recs[1].Action, "govulncheck") {
		t.Errorf("expected govulncheck second, got %q", recs[1].Action)
	}
}
