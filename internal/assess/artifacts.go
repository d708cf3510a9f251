package assess

import (
	"os"
	"path/filepath"
)

// CheckArtifacts tests each artifact's candidate paths in declared order and
// records the first that exists. Existence is all that matters; content is
// never read, and a directory satisfies a check the same as a file.
func CheckArtifacts(root string) map[string]Artifact {
	results := make(map[string]Artifact, len(artifactSpecs))

	for _, spec := range artifactSpecs {
		var found *string
		for _, rel := range spec.Paths {
			if pathExists(filepath.Join(root, rel)) {
				rel := rel
				found = &rel
				break
			}
		}
		results[spec.Key] = Artifact{
			Exists:      found != nil,
			Path:        found,
			Description: spec.Description,
			Priority:    spec.Priority,
		}
	}

	return results
}

// pathExists reports whether a file or directory exists at path.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
