package assess

import (
	"os"
	"path/filepath"
)

// InspectCI checks for known CI system indicators, conventional test
// locations, and counts workflow config files.
func InspectCI(root string) CISetup {
	systems := make(map[string]bool)
	for _, cs := range ciSystems {
		if pathExists(filepath.Join(root, cs.Path)) {
			systems[cs.Name] = true
		}
	}

	return CISetup{
		CISystems:      systems,
		HasCI:          len(systems) > 0,
		HasTests:       hasTests(root),
		WorkflowsCount: countWorkflows(root),
	}
}

// hasTests reports whether a conventional test directory exists at the root
// or any root-level file matches a known test filename pattern.
func hasTests(root string) bool {
	for _, dir := range testDirs {
		if pathExists(filepath.Join(root, dir)) {
			return true
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, pattern := range testFilePatterns {
			if ok, err := filepath.Match(pattern, entry.Name()); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// countWorkflows counts .yml/.yaml files directly inside .github/workflows.
// The count is non-recursive and zero when the directory is absent.
func countWorkflows(root string) int {
	entries, err := os.ReadDir(filepath.Join(root, ".github", "workflows"))
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yml", ".yaml":
			count++
		}
	}
	return count
}
