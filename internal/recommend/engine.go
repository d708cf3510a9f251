package recommend

// Engine runs all registered rules against a Context and collects the
// resulting recommendations.
type Engine struct {
	rules []Rule
}

// NewEngine creates a new recommendation engine with all built-in rules
// registered. Registration order is the tie-break order for recommendations
// of equal priority.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			MissingSecurityPolicy,
			MissingDependencyBot,
			MissingLicense,
			MissingScorecardWorkflow,
			MissingCodeQLWorkflow,
			MissingTests,
			MissingSBOM,
			MissingThreatModel,
			MissingContributing,
			MissingCodeowners,
			MissingPRTemplate,
			MissingSLSAProvenance,
			MissingSBOMWorkflow,
			MissingSecretsScanning,
			MissingPreCommitConfig,
			LanguageAuditTools,
		},
	}
}

// Run executes all registered rules against the given context and returns
// the collected recommendations sorted by priority tier, most urgent first.
func (e *Engine) Run(ctx *Context) []Recommendation {
	var all []Recommendation
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	return RankRecommendations(all)
}
