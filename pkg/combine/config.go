// File: pkg/combine/config.go
package combine

import (
	"sort"
	"strings"
)

// DefaultOutputFile is the destination used when no output path is given.
const DefaultOutputFile = "combined_output.txt"

// Default exclusion and inclusion lists. Callers get copies through the
// Default* functions so these can never be mutated between runs.
var (
	defaultExcludeDirs = []string{"node_modules", ".git", "__pycache__", ".venv", "dist", "build"}

	defaultExcludeFiles = []string{
		"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "get_contents.py",
		"tailwind.config.js", "README.md", "vite.config.js", ".gitignore",
		"eslint.config.js", ".env", ".env.example",
	}

	defaultIncludeExtensions = []string{".json", ".js", ".ts", ".jsx", ".tsx", ".py", ".html", ".css", ".md", ".txt"}
)

// DefaultExcludeDirs returns a fresh copy of the default excluded directory names.
func DefaultExcludeDirs() []string { return append([]string(nil), defaultExcludeDirs...) }

// DefaultExcludeFiles returns a fresh copy of the default excluded file names.
func DefaultExcludeFiles() []string { return append([]string(nil), defaultExcludeFiles...) }

// DefaultIncludeExtensions returns a fresh copy of the default included extensions.
func DefaultIncludeExtensions() []string {
	return append([]string(nil), defaultIncludeExtensions...)
}

// Config is the exclusion/inclusion configuration for one run.
// It is immutable once built by NewConfig.
type Config struct {
	excludeDirs       map[string]struct{} // Directory names pruned before descent.
	excludeFiles      map[string]struct{} // File names dropped from both tree and contents.
	includeExtensions []string            // Suffixes that qualify a file for aggregation.
}

// NewConfig builds a Config. A nil slice selects the default list for that
// field; a non-nil slice (even an empty one) replaces it.
func NewConfig(excludeDirs, excludeFiles, includeExtensions []string) *Config {
	if excludeDirs == nil {
		excludeDirs = defaultExcludeDirs
	}
	if excludeFiles == nil {
		excludeFiles = defaultExcludeFiles
	}
	if includeExtensions == nil {
		includeExtensions = defaultIncludeExtensions
	}

	return &Config{
		excludeDirs:       toSet(excludeDirs),
		excludeFiles:      toSet(excludeFiles),
		includeExtensions: append([]string(nil), includeExtensions...),
	}
}

// SkipDir reports whether a directory with the given name must not be visited.
// Dot-prefixed names are always skipped.
func (c *Config) SkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := c.excludeDirs[name]
	return ok
}

// SkipFile reports whether a file name is excluded by exact match.
func (c *Config) SkipFile(name string) bool {
	_, ok := c.excludeFiles[name]
	return ok
}

// IncludesFile reports whether the name ends with one of the included extensions.
// The match is literal and case-sensitive.
func (c *Config) IncludesFile(name string) bool {
	for _, ext := range c.includeExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ExcludedDirs returns the excluded directory names, sorted.
func (c *Config) ExcludedDirs() []string { return sortedKeys(c.excludeDirs) }

// ExcludedFiles returns the excluded file names, sorted.
func (c *Config) ExcludedFiles() []string { return sortedKeys(c.excludeFiles) }

// IncludedExtensions returns a copy of the included extensions in their given order.
func (c *Config) IncludedExtensions() []string {
	return append([]string(nil), c.includeExtensions...)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
