package assess

import "path/filepath"

// branchProtectionNote explains why these are indicators, not verification.
const branchProtectionNote = "Branch protection settings require GitHub API to fully verify"

// CheckBranchProtection looks for weak indicators of a review process: a
// pull request template and a CODEOWNERS file.
func CheckBranchProtection(root string) BranchProtection {
	return BranchProtection{
		PRTemplateExists: anyPathExists(root, prTemplatePaths),
		CodeownersExists: anyPathExists(root, codeownersPaths),
		Note:             branchProtectionNote,
	}
}

// anyPathExists reports whether any of the relative candidate paths exists
// under root.
func anyPathExists(root string, candidates []string) bool {
	for _, rel := range candidates {
		if pathExists(filepath.Join(root, rel)) {
			return true
		}
	}
	return false
}
