package assess

import "secposture/internal/recommend"

// Run performs a full assessment of the project at root and assembles the
// report. The detector, artifact checker, CI inspector, and branch
// protection checker are independent; their outputs feed the recommendation
// engine and the score calculator.
func Run(root string) *Report {
	languages := DetectLanguages(root)
	artifacts := CheckArtifacts(root)
	ci := InspectCI(root)
	branch := CheckBranchProtection(root)

	recs := recommend.NewEngine().Run(buildContext(languages, artifacts, ci, branch))
	score := CalculateScore(artifacts, ci, &branch)

	return &Report{
		ProjectPath:       root,
		Languages:         languages,
		SecurityArtifacts: artifacts,
		CISetup:           ci,
		BranchProtection:  branch,
		SecurityScore:     score,
		Recommendations:   recs,
		Summary:           summarize(languages, artifacts, recs),
	}
}

// buildContext flattens assessment results into the rule engine's context.
func buildContext(languages []Language, artifacts map[string]Artifact, ci CISetup, branch BranchProtection) *recommend.Context {
	langNames := make([]string, 0, len(languages))
	for _, l := range languages {
		langNames = append(langNames, l.Language)
	}

	exists := make(map[string]bool, len(artifacts))
	for key, a := range artifacts {
		exists[key] = a.Exists
	}

	return &recommend.Context{
		Languages:        langNames,
		ArtifactExists:   exists,
		HasCI:            ci.HasCI,
		HasTests:         ci.HasTests,
		PRTemplateExists: branch.PRTemplateExists,
	}
}

// summarize computes the headline counts for the report.
func summarize(languages []Language, artifacts map[string]Artifact, recs []recommend.Recommendation) Summary {
	present := 0
	for _, a := range artifacts {
		if a.Exists {
			present++
		}
	}

	critical := 0
	high := 0
	for _, r := range recs {
		switch r.Priority {
		case recommend.PriorityCritical:
			critical++
		case recommend.PriorityHigh:
			high++
		}
	}

	return Summary{
		LanguagesDetected:    len(languages),
		ArtifactsPresent:     present,
		ArtifactsMissing:     len(artifacts) - present,
		RecommendationsCount: len(recs),
		CriticalIssues:       critical,
		HighIssues:           high,
	}
}
