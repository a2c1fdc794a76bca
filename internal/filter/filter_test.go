package filter

import (
	"reflect"
	"testing"
)

func TestExclusionSet_Defaults(t *testing.T) {
	set := New(nil)

	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{"node_modules", true},
		{".DS_Store", true},
		{"package-lock.json", true},
		{"Thumbs.db", true},
		{"main.go", false},
		{"git", false},          // exact match only, no substrings
		{".gitmodules", false},  // not in the default list
		{"NODE_MODULES", false}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.Excluded(tt.name); got != tt.want {
				t.Errorf("Excluded(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestExclusionSet_ExtraPatterns(t *testing.T) {
	set := New([]string{"dist", "coverage"})

	if !set.Excluded("dist") {
		t.Error("extra pattern should be excluded")
	}
	if !set.Excluded(".git") {
		t.Error("defaults should survive the union with extra patterns")
	}
	if set.Excluded("src") {
		t.Error("unrelated name should not be excluded")
	}
}

func TestExclusionSet_EmptyExtraIgnored(t *testing.T) {
	set := New([]string{""})

	if set.Excluded("") {
		t.Error("empty string must never match")
	}
	if set.Len() != New(nil).Len() {
		t.Error("empty patterns should not grow the set")
	}
}

func TestExclusionSet_PatternsSorted(t *testing.T) {
	set := New([]string{"zzz", "aaa"})
	patterns := set.Patterns()

	if len(patterns) != set.Len() {
		t.Fatalf("Patterns() returned %d entries, want %d", len(patterns), set.Len())
	}
	for i := 1; i < len(patterns); i++ {
		if patterns[i-1] >= patterns[i] {
			t.Fatalf("Patterns() not sorted: %q before %q", patterns[i-1], patterns[i])
		}
	}
}

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"dist", []string{"dist"}},
		{"dist,coverage", []string{"dist", "coverage"}},
		{" dist , coverage ", []string{"dist", "coverage"}},
		{"dist,,coverage,", []string{"dist", "coverage"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParsePatterns(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePatterns(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
