package assess

import "math"

// Scoring weights. Critical artifacts count triple; everything else counts
// once. Branch protection checks only enter the denominator when indicator
// data was supplied.
const (
	criticalWeight = 3
	standardWeight = 1
)

// criticalArtifacts are the artifact checks weighted at criticalWeight.
var criticalArtifacts = []string{"security_policy", "license"}

// mediumArtifacts are the artifact checks weighted at standardWeight.
var mediumArtifacts = []string{"scorecard_workflow", "codeql_workflow", "sbom", "threat_model"}

// CalculateScore computes a 0-100 security posture score from weighted
// existence checks.
//
// Breakdown:
//   - security_policy, license:                    3 points each
//   - dependency update bot (dependabot OR renovate): 1 point
//   - scorecard, codeql, sbom, threat model:       1 point each
//   - has_ci, has_tests:                           1 point each
//   - pr_template, codeowners:                     1 point each, only when
//     branchProtection is non-nil
func CalculateScore(artifacts map[string]Artifact, ci CISetup, branchProtection *BranchProtection) Score {
	total := 0
	passed := 0

	for _, key := range criticalArtifacts {
		total += criticalWeight
		if artifacts[key].Exists {
			passed += criticalWeight
		}
	}

	total += standardWeight
	if artifacts["dependabot"].Exists || artifacts["renovate"].Exists {
		passed += standardWeight
	}

	for _, key := range mediumArtifacts {
		total += standardWeight
		if artifacts[key].Exists {
			passed += standardWeight
		}
	}

	total += 2 * standardWeight
	if ci.HasCI {
		passed += standardWeight
	}
	if ci.HasTests {
		passed += standardWeight
	}

	if branchProtection != nil {
		total += 2 * standardWeight
		if branchProtection.PRTemplateExists {
			passed += standardWeight
		}
		if branchProtection.CodeownersExists {
			passed += standardWeight
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(float64(passed) / float64(total) * 100))
	}

	grade, assessment := gradeFor(score)

	return Score{
		Score:        score,
		Grade:        grade,
		Assessment:   assessment,
		ChecksPassed: passed,
		TotalChecks:  total,
	}
}

// gradeFor maps a score to its letter grade and fixed assessment string.
func gradeFor(score int) (string, string) {
	switch {
	case score >= 80:
		return "A", "Strong security posture"
	case score >= 60:
		return "B", "Good foundation, room for improvement"
	case score >= 40:
		return "C", "Basic security, significant gaps"
	case score >= 20:
		return "D", "Minimal security controls"
	default:
		return "F", "Critical security gaps"
	}
}
