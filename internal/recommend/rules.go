package recommend

import "fmt"

// MissingSecurityPolicy requires a vulnerability disclosure policy. This is
// the only critical-tier rule: without it researchers have no reporting path.
func MissingSecurityPolicy(ctx *Context) []Recommendation {
	if !ctx.missing("security_policy") {
		return nil
	}
	return []Recommendation{{
		Priority: PriorityCritical,
		Category: "documentation",
		Action:   "Create SECURITY.md",
		Reason: "Required for responsible vulnerability disclosure. " +
			"Users and researchers need to know how to report security issues.",
		Effort:       "low",
		TimeEstimate: "15 minutes",
	}}
}

// MissingDependencyBot fires only when neither Dependabot nor Renovate is
// configured; either one satisfies the check.
func MissingDependencyBot(ctx *Context) []Recommendation {
	if !ctx.missing("dependabot") || !ctx.missing("renovate") {
		return nil
	}
	return []Recommendation{{
		Priority:     PriorityHigh,
		Category:     "dependencies",
		Action:       "Enable Dependabot or Renovate",
		Reason:       "Automated dependency updates help patch vulnerabilities quickly.",
		Effort:       "low",
		TimeEstimate: "10 minutes",
	}}
}

// MissingLicense flags projects without a license file.
func MissingLicense(ctx *Context) []Recommendation {
	if !ctx.missing("license") {
		return nil
	}
	return []Recommendation{{
		Priority: PriorityHigh,
		Category: "legal",
		Action:   "Add LICENSE file",
		Reason: "Clear licensing is required for open source projects " +
			"and helps users understand usage rights.",
		Effort:       "low",
		TimeEstimate: "5 minutes",
	}}
}

// MissingScorecardWorkflow suggests Scorecard automation for projects that
// already run CI.
func MissingScorecardWorkflow(ctx *Context) []Recommendation {
	if !ctx.HasCI || !ctx.missing("scorecard_workflow") {
		return nil
	}
	return []Recommendation{{
		Priority:     PriorityMedium,
		Category:     "security_scanning",
		Action:       "Add OpenSSF Scorecard workflow",
		Reason:       "Continuous security posture monitoring helps identify issues early.",
		Effort:       "low",
		TimeEstimate: "10 minutes",
	}}
}

// MissingCodeQLWorkflow suggests static analysis scanning for CI projects.
func MissingCodeQLWorkflow(ctx *Context) []Recommendation {
	if !ctx.HasCI || !ctx.missing("codeql_workflow") {
		return nil
	}
	return []Recommendation{{
		Priority:     PriorityMedium,
		Category:     "security_scanning",
		Action:       "Enable CodeQL analysis",
		Reason:       "Static analysis catches common vulnerability patterns automatically.",
		Effort:       "low",
		TimeEstimate: "15 minutes",
	}}
}

// MissingTests flags projects with no detectable automated tests.
func MissingTests(ctx *Context) []Recommendation {
	if ctx.HasTests {
		return nil
	}
	return []Recommendation{{
		Priority:     PriorityMedium,
		Category:     "quality",
		Action:       "Add automated tests",
		Reason:       "Tests help ensure security fixes don't introduce regressions.",
		Effort:       "high",
		TimeEstimate: "varies",
	}}
}

// MissingSBOM flags projects without a Software Bill of Materials.
func MissingSBOM(ctx *Context) []Recommendation {
	if !ctx.missing("sbom") {
		return nil
	}
	return []Recommendation{{
		Priority: PriorityMedium,
		Category: "supply_chain",
		Action:   "Generate SBOM",
		Reason: "Software Bill of Materials improves supply chain transparency " +
			"and helps with vulnerability tracking.",
		Effort:       "medium",
		TimeEstimate: "30 minutes",
	}}
}

// MissingThreatModel flags projects without threat model documentation.
func MissingThreatModel(ctx *Context) []Recommendation {
	if !ctx.missing("threat_model") {
		return nil
	}
	return []Recommendation{{
		Priority:     PriorityMedium,
		Category:     "documentation",
		Action:       "Create threat model",
		Reason:       "Systematic threat identification helps prioritize security efforts.",
		Effort:       "medium",
		TimeEstimate: "1-2 hours",
	}}
}

// MissingContributing flags projects without contribution guidelines.
func MissingContributing(ctx *Context) []Recommendation {
	if !ctx.missing("contributing") {
		return nil
	}
	return []Recommendation{{
		Priority:     PriorityLow,
		Category:     "documentation",
		Action:       "Add CONTRIBUTING.md",
		Reason:       "Helps contributors understand security requirements for pull requests.",
		Effort:       "low",
		TimeEstimate: "20 minutes",
	}}
}

// MissingCodeowners flags projects without code ownership definitions.
func MissingCodeowners(ctx *Context) []Recommendation {
	if !ctx.missing("codeowners") {
		return nil
	}
	return []Recommendation{{
		Priority:     PriorityLow,
		Category:     "governance",
		Action:       "Add CODEOWNERS file",
		Reason:       "Ensures security-sensitive areas have designated reviewers.",
		Effort:       "low",
		TimeEstimate: "10 minutes",
	}}
}

// MissingPRTemplate flags projects without a pull request template.
func MissingPRTemplate(ctx *Context) []Recommendation {
	if ctx.PRTemplateExists {
		return nil
	}
	return []Recommendation{{
		Priority: PriorityMedium,
		Category: "governance",
		Action:   "Add pull request template",
		Reason: "PR templates encourage security-focused reviews " +
			"and consistent review processes.",
		Effort:       "low",
		TimeEstimate: "15 minutes",
	}}
}

// MissingSLSAProvenance suggests build provenance generation for CI projects.
func MissingSLSAProvenance(ctx *Context) []Recommendation {
	if !ctx.HasCI || !ctx.missing("slsa_provenance_workflow") {
		return nil
	}
	return []Recommendation{{
		Priority: PriorityMedium,
		Category: "supply_chain",
		Action:   "Add SLSA provenance workflow",
		Reason: "SLSA provenance provides verifiable evidence of where " +
			"and how artifacts were built.",
		Effort:       "medium",
		TimeEstimate: "30 minutes",
	}}
}

// MissingSBOMWorkflow suggests automating SBOM generation when a CI project
// has neither an SBOM workflow nor a committed SBOM.
func MissingSBOMWorkflow(ctx *Context) []Recommendation {
	if !ctx.HasCI || !ctx.missing("sbom_workflow") || !ctx.missing("sbom") {
		return nil
	}
	return []Recommendation{{
		Priority:     PriorityMedium,
		Category:     "supply_chain",
		Action:       "Add automated SBOM generation workflow",
		Reason:       "Automating SBOM generation ensures every release includes a software inventory.",
		Effort:       "low",
		TimeEstimate: "15 minutes",
	}}
}

// MissingSecretsScanning suggests a secrets scanner when a CI project has
// neither a secrets scanning workflow nor a gitleaks configuration.
func MissingSecretsScanning(ctx *Context) []Recommendation {
	if !ctx.HasCI || !ctx.missing("secrets_scanning_workflow") || !ctx.missing("gitleaks_config") {
		return nil
	}
	return []Recommendation{{
		Priority: PriorityMedium,
		Category: "security_scanning",
		Action:   "Add secrets scanning (Gitleaks or TruffleHog)",
		Reason: "Secrets scanning detects leaked API keys, passwords, and tokens " +
			"before they reach production.",
		Effort:       "low",
		TimeEstimate: "10 minutes",
	}}
}

// MissingPreCommitConfig flags projects without pre-commit hooks.
func MissingPreCommitConfig(ctx *Context) []Recommendation {
	if !ctx.missing("pre_commit_config") {
		return nil
	}
	return []Recommendation{{
		Priority: PriorityLow,
		Category: "quality",
		Action:   "Add pre-commit hooks",
		Reason: "Pre-commit hooks catch security issues (secrets, linting) " +
			"before code enters version control.",
		Effort:       "low",
		TimeEstimate: "15 minutes",
	}}
}

// auditTool pairs a language with its dependency vulnerability audit tool.
type auditTool struct {
	Language string
	Tool     string
	Reason   string
}

// auditTools lists languages with a known audit tool, in firing order.
var auditTools = []auditTool{
	{"python", "pip-audit", "pip-audit scans Python dependencies for known vulnerabilities."},
	{"javascript", "npm audit", "npm audit scans Node.js dependencies for known vulnerabilities."},
	{"go", "govulncheck", "govulncheck checks Go dependencies against the Go vulnerability database."},
	{"rust", "cargo audit", "cargo audit checks Rust crate dependencies for known vulnerabilities."},
	{"ruby", "bundler-audit", "bundler-audit scans Ruby gem dependencies for known vulnerabilities."},
	{"java", "OWASP Dependency-Check", "OWASP Dependency-Check scans Java dependencies for known CVEs."},
	{"php", "composer audit", "composer audit scans PHP dependencies for known vulnerabilities."},
	{"dotnet", "dotnet list package --vulnerable", "NuGet audit scans .NET dependencies for known vulnerabilities."},
}

// LanguageAuditTools recommends the dependency audit tool for each detected
// language that has one.
func LanguageAuditTools(ctx *Context) []Recommendation {
	var recs []Recommendation
	for _, at := range auditTools {
		if !ctx.hasLanguage(at.Language) {
			continue
		}
		recs = append(recs, Recommendation{
			Priority:     PriorityMedium,
			Category:     "dependencies",
			Action:       fmt.Sprintf("Run %s for %s dependency scanning", at.Tool, at.Language),
			Reason:       at.Reason,
			Effort:       "low",
			TimeEstimate: "10 minutes",
		})
	}
	return recs
}
