// Package filter decides which directory entries are excluded from an
// archive run.
//
// Matching is exact basename equality only — no globs, no full-path
// matching. A file that legitimately shares a name with an excluded
// pattern (say, a real .env the user wants archived) cannot be rescued;
// that is a documented limitation of the matching model, not a bug.
package filter

import (
	"sort"
	"strings"
)

// defaultPatterns is the built-in junk list: version-control metadata,
// OS metadata, dependency lock files, editor directories and archive
// byproducts.
var defaultPatterns = []string{
	".git",
	".github",
	"node_modules",
	".DS_Store",
	"__MACOSX",
	".gitignore",
	".env",
	".vscode",
	".idea",
	".zip",
	"Thumbs.db",
	"desktop.ini",
	"package-lock.json",
	"yarn.lock",
}

// ExclusionSet holds the basenames excluded from discovery.
//
// An ExclusionSet is built once per run via New and is immutable
// afterward.
type ExclusionSet struct {
	names map[string]struct{}
}

// New returns the default exclusion set unioned with extra patterns.
// Empty strings in extra are ignored.
func New(extra []string) *ExclusionSet {
	names := make(map[string]struct{}, len(defaultPatterns)+len(extra))
	for _, p := range defaultPatterns {
		names[p] = struct{}{}
	}
	for _, p := range extra {
		if p != "" {
			names[p] = struct{}{}
		}
	}
	return &ExclusionSet{names: names}
}

// Excluded reports whether a single path component (a file or directory
// basename, never a full path) is in the set.
func (s *ExclusionSet) Excluded(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of patterns in the set.
func (s *ExclusionSet) Len() int {
	return len(s.names)
}

// Patterns returns the set's contents as a sorted slice, for display.
func (s *ExclusionSet) Patterns() []string {
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ParsePatterns splits a comma-separated pattern list as given on the
// command line. Surrounding whitespace is trimmed and empty segments
// are dropped.
func ParsePatterns(csv string) []string {
	if csv == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
