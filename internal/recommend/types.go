// Package recommend provides the remediation rule engine and its types.
package recommend

// Priority tiers for recommendations, from most to least urgent.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// priorityRank maps priority tiers to sort ranks. Unknown tiers sort last.
var priorityRank = map[string]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// Rank returns the sort rank for a priority tier.
func Rank(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return len(priorityRank)
}

// Recommendation is one actionable remediation step. Reason, effort, and
// time estimate are static per rule, not computed.
type Recommendation struct {
	Priority     string `json:"priority"`
	Category     string `json:"category"`
	Action       string `json:"action"`
	Reason       string `json:"reason"`
	Effort       string `json:"effort"`
	TimeEstimate string `json:"time_estimate"`
}

// Context provides all assessment data needed by rules. It is populated from
// the detector, artifact checker, CI inspector, and branch protection
// checker outputs before being passed to the engine.
type Context struct {
	// Languages lists detected language names in detection order.
	Languages []string

	// ArtifactExists maps each artifact key to whether it was found.
	ArtifactExists map[string]bool

	// HasCI is true when any CI system was detected.
	HasCI bool

	// HasTests is true when test directories or test files were found.
	HasTests bool

	// PRTemplateExists is true when a pull request template was found.
	PRTemplateExists bool
}

// missing reports whether the named artifact was checked and not found.
func (c *Context) missing(key string) bool {
	return !c.ArtifactExists[key]
}

// hasLanguage reports whether the named language was detected.
func (c *Context) hasLanguage(name string) bool {
	for _, l := range c.Languages {
		if l == name {
			return true
		}
	}
	return false
}

// Rule is a function that examines the assessment context and produces
// zero or more recommendations.
type Rule func(ctx *Context) []Recommendation
