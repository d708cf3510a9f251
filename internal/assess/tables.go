package assess

// The lookup tables below are fixed at build time and never mutated. Their
// declaration order is significant: languages report in table order, and
// artifact candidate paths are tried first to last with the first hit winning.

// excludedDirs are directory names skipped during language detection walks.
// They hold dependencies, build output, or tooling caches rather than source.
var excludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".tox":         true,
	".venv":        true,
	"venv":         true,
	"dist":         true,
	"build":        true,
	".eggs":        true,
}

// languageMarker describes how to recognize one language ecosystem.
type languageMarker struct {
	// Name is the language identifier reported in the output.
	Name string

	// Markers are filenames (optionally with glob metacharacters) whose
	// presence strongly implies the language, e.g. a dependency manifest.
	Markers []string

	// Extensions are source file extensions checked only when no marker
	// file was found.
	Extensions []string

	// PackageManager is the label reported alongside the language.
	PackageManager string
}

// languageMarkers is the full detection table, in report order.
var languageMarkers = []languageMarker{
	{
		Name:           "python",
		Markers:        []string{"pyproject.toml", "requirements.txt", "setup.py", "Pipfile", "setup.cfg"},
		Extensions:     []string{".py"},
		PackageManager: "pip/poetry/pipenv",
	},
	{
		Name:           "javascript",
		Markers:        []string{"package.json", "package-lock.json", "yarn.lock", "pnpm-lock.yaml"},
		Extensions:     []string{".js", ".mjs", ".cjs"},
		PackageManager: "npm/yarn/pnpm",
	},
	{
		Name:           "typescript",
		Markers:        []string{"tsconfig.json"},
		Extensions:     []string{".ts", ".tsx"},
		PackageManager: "npm/yarn/pnpm",
	},
	{
		Name:           "go",
		Markers:        []string{"go.mod", "go.sum"},
		Extensions:     []string{".go"},
		PackageManager: "go modules",
	},
	{
		Name:           "rust",
		Markers:        []string{"Cargo.toml", "Cargo.lock"},
		Extensions:     []string{".rs"},
		PackageManager: "cargo",
	},
	{
		Name:           "java",
		Markers:        []string{"pom.xml", "build.gradle", "build.gradle.kts"},
		Extensions:     []string{".java"},
		PackageManager: "maven/gradle",
	},
	{
		Name:           "kotlin",
		Markers:        []string{"build.gradle.kts"},
		Extensions:     []string{".kt", ".kts"},
		PackageManager: "gradle",
	},
	{
		Name:           "ruby",
		Markers:        []string{"Gemfile", "Gemfile.lock", "*.gemspec"},
		Extensions:     []string{".rb"},
		PackageManager: "bundler",
	},
	{
		Name:           "php",
		Markers:        []string{"composer.json", "composer.lock"},
		Extensions:     []string{".php"},
		PackageManager: "composer",
	},
	{
		Name:           "dotnet",
		Markers:        []string{"*.csproj", "*.fsproj", "*.vbproj", "*.sln"},
		Extensions:     []string{".cs", ".fs", ".vb"},
		PackageManager: "nuget",
	},
	{
		Name:           "swift",
		Markers:        []string{"Package.swift"},
		Extensions:     []string{".swift"},
		PackageManager: "swift package manager",
	},
	{
		Name:           "elixir",
		Markers:        []string{"mix.exs"},
		Extensions:     []string{".ex", ".exs"},
		PackageManager: "hex",
	},
}

// artifactSpec describes one security artifact and where it may live.
type artifactSpec struct {
	Key         string
	Paths       []string
	Description string
	Priority    string
}

// artifactSpecs is the fixed catalog of security-relevant files. Candidate
// paths are relative to the project root and priority-ordered.
var artifactSpecs = []artifactSpec{
	{
		Key:         "security_policy",
		Paths:       []string{"SECURITY.md", ".github/SECURITY.md", "docs/SECURITY.md"},
		Description: "Vulnerability reporting policy",
		Priority:    "high",
	},
	{
		Key:         "license",
		Paths:       []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING", "LICENSE-MIT", "LICENSE-APACHE"},
		Description: "Open source license",
		Priority:    "high",
	},
	{
		Key:         "contributing",
		Paths:       []string{"CONTRIBUTING.md", ".github/CONTRIBUTING.md"},
		Description: "Contribution guidelines",
		Priority:    "medium",
	},
	{
		Key:         "code_of_conduct",
		Paths:       []string{"CODE_OF_CONDUCT.md", ".github/CODE_OF_CONDUCT.md"},
		Description: "Community code of conduct",
		Priority:    "low",
	},
	{
		Key:         "codeowners",
		Paths:       []string{"CODEOWNERS", ".github/CODEOWNERS", "docs/CODEOWNERS"},
		Description: "Code ownership definitions",
		Priority:    "medium",
	},
	{
		Key:         "dependabot",
		Paths:       []string{".github/dependabot.yml", ".github/dependabot.yaml"},
		Description: "Automated dependency updates",
		Priority:    "high",
	},
	{
		Key:         "renovate",
		Paths:       []string{"renovate.json", ".renovaterc", ".renovaterc.json", ".github/renovate.json"},
		Description: "Automated dependency updates (Renovate)",
		Priority:    "high",
	},
	{
		Key:         "scorecard_workflow",
		Paths:       []string{".github/workflows/scorecard.yml", ".github/workflows/scorecard.yaml"},
		Description: "OpenSSF Scorecard automation",
		Priority:    "medium",
	},
	{
		Key: "codeql_workflow",
		Paths: []string{
			".github/workflows/codeql.yml", ".github/workflows/codeql.yaml",
			".github/workflows/codeql-analysis.yml", ".github/workflows/codeql-analysis.yaml",
		},
		Description: "CodeQL security scanning",
		Priority:    "medium",
	},
	{
		Key:         "sbom",
		Paths:       []string{"sbom.json", "sbom.xml", "sbom.spdx", "sbom.spdx.json", "bom.json", "bom.xml"},
		Description: "Software Bill of Materials",
		Priority:    "medium",
	},
	{
		Key:         "threat_model",
		Paths:       []string{"THREAT_MODEL.md", "docs/threat-model.md", "docs/security/threat-model.md", "THREATS.md"},
		Description: "Threat model documentation",
		Priority:    "medium",
	},
	{
		Key:         "security_txt",
		Paths:       []string{".well-known/security.txt", "security.txt"},
		Description: "Security contact information (RFC 9116)",
		Priority:    "low",
	},
	{
		Key: "slsa_provenance_workflow",
		Paths: []string{
			".github/workflows/slsa-provenance.yml", ".github/workflows/slsa-provenance.yaml",
			".github/workflows/slsa.yml", ".github/workflows/slsa.yaml",
			".github/workflows/provenance.yml", ".github/workflows/provenance.yaml",
		},
		Description: "SLSA provenance generation workflow",
		Priority:    "medium",
	},
	{
		Key: "sbom_workflow",
		Paths: []string{
			".github/workflows/sbom.yml", ".github/workflows/sbom.yaml",
			".github/workflows/sbom-generation.yml", ".github/workflows/sbom-generation.yaml",
		},
		Description: "SBOM generation workflow",
		Priority:    "medium",
	},
	{
		Key:         "pre_commit_config",
		Paths:       []string{".pre-commit-config.yaml", ".pre-commit-config.yml"},
		Description: "Pre-commit hooks configuration",
		Priority:    "low",
	},
	{
		Key:         "gitleaks_config",
		Paths:       []string{".gitleaks.toml", ".gitleaks.yaml"},
		Description: "Gitleaks secret scanning configuration",
		Priority:    "low",
	},
	{
		Key: "secrets_scanning_workflow",
		Paths: []string{
			".github/workflows/gitleaks.yml", ".github/workflows/gitleaks.yaml",
			".github/workflows/trufflehog.yml", ".github/workflows/trufflehog.yaml",
			".github/workflows/secrets.yml", ".github/workflows/secrets.yaml",
		},
		Description: "Secrets scanning workflow",
		Priority:    "medium",
	},
}

// ciSystem pairs a CI system name with its indicator path.
type ciSystem struct {
	Name string
	Path string
}

// ciSystems lists known CI systems and the single path that indicates each.
// github_actions is indicated by the workflows directory itself.
var ciSystems = []ciSystem{
	{Name: "github_actions", Path: ".github/workflows"},
	{Name: "gitlab_ci", Path: ".gitlab-ci.yml"},
	{Name: "circle_ci", Path: ".circleci/config.yml"},
	{Name: "travis_ci", Path: ".travis.yml"},
	{Name: "jenkins", Path: "Jenkinsfile"},
	{Name: "azure_pipelines", Path: "azure-pipelines.yml"},
}

// testDirs are conventional test directory names checked at the project root.
var testDirs = []string{"tests", "test", "__tests__", "spec"}

// testFilePatterns are glob patterns matched against root-level filenames to
// detect tests across common language conventions.
var testFilePatterns = []string{
	"*_test.go",
	"test_*.py",
	"*_test.py",
	"*.test.js",
	"*.spec.js",
	"*.test.ts",
	"*.spec.ts",
}

// prTemplatePaths are candidate locations for a pull request template.
var prTemplatePaths = []string{
	".github/PULL_REQUEST_TEMPLATE.md",
	".github/pull_request_template.md",
	"docs/pull_request_template.md",
}

// codeownersPaths are candidate locations for a CODEOWNERS file.
var codeownersPaths = []string{
	"CODEOWNERS",
	".github/CODEOWNERS",
}
