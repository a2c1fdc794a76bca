package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// SourcePath is the directory to compress.
	SourcePath string `json:"source_path"`

	// OutputPath is the directory the archive is written into.
	OutputPath string `json:"output_path"`

	// ArchiveName overrides the archive base name. Empty means use
	// the source directory's basename.
	ArchiveName string `json:"archive_name"`

	// ExcludePatterns are extra basenames excluded from discovery,
	// unioned with the built-in defaults.
	ExcludePatterns []string `json:"exclude_patterns"`

	// UseTimestamp appends a sortable timestamp to the archive name.
	UseTimestamp bool `json:"use_timestamp"`

	// Verbose enables per-file progress output.
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values: archive the
// current directory into the current directory, timestamped name,
// built-in exclusions only.
func DefaultSettings() *Settings {
	cwd, _ := os.Getwd()
	return &Settings{
		SourcePath:   cwd,
		OutputPath:   cwd,
		UseTimestamp: true,
	}
}

// BaseName returns the archive base name: the explicit override if
// set, otherwise the source directory's basename.
func (s *Settings) BaseName() string {
	if s.ArchiveName != "" {
		return s.ArchiveName
	}
	return filepath.Base(s.SourcePath)
}

// Load reads settings from a JSON file. A missing file yields the
// defaults rather than an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
