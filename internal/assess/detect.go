package assess

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DetectLanguages reports every language from the marker table whose marker
// files or source extensions appear in the project tree. For each language,
// marker files are checked first and extensions only as a fallback. Output
// order follows the table's declaration order; no language appears twice.
//
// Directories named in excludedDirs are skipped at every depth, so a marker
// inside a dependency cache never counts. Unreadable subtrees contribute no
// matches and do not abort the scan.
func DetectLanguages(root string) []Language {
	inv := collectInventory(root)

	detected := make([]Language, 0, len(languageMarkers))
	for _, lm := range languageMarkers {
		if inv.matchesAny(lm.Markers) || inv.hasAnyExtension(lm.Extensions) {
			detected = append(detected, Language{
				Language:       lm.Name,
				PackageManager: lm.PackageManager,
			})
		}
	}
	return detected
}

// inventory holds the base names and extensions of every file seen during a
// single walk of the project tree.
type inventory struct {
	names map[string]bool
	exts  map[string]bool
}

// collectInventory walks the tree once, recording file base names and
// extensions. Excluded directories are pruned; walk errors skip the
// offending subtree.
func collectInventory(root string) *inventory {
	inv := &inventory{
		names: make(map[string]bool),
		exts:  make(map[string]bool),
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are treated as "not found".
			return nil
		}
		if d.IsDir() {
			if path != root && excludedDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		name := d.Name()
		inv.names[name] = true
		if ext := filepath.Ext(name); ext != "" {
			inv.exts[ext] = true
		}
		return nil
	})

	return inv
}

// matchesAny reports whether any file in the inventory matches one of the
// given marker patterns. Plain filenames are looked up directly; patterns
// with glob metacharacters are matched against every seen name.
func (inv *inventory) matchesAny(patterns []string) bool {
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[") {
			if inv.names[pattern] {
				return true
			}
			continue
		}
		for name := range inv.names {
			if ok, err := filepath.Match(pattern, name); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// hasAnyExtension reports whether any file in the inventory carries one of
// the given extensions.
func (inv *inventory) hasAnyExtension(exts []string) bool {
	for _, ext := range exts {
		if inv.exts[ext] {
			return true
		}
	}
	return false
}
