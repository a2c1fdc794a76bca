// Package config provides configuration management for dirzip.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Archives the current directory into the current directory
//	// Timestamped archive name
//	// Built-in exclusion patterns only
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputPath = "/backups"
//	err := settings.Save("/path/to/config.json")
//
// Command-line flags take precedence over loaded settings; the
// override happens in cmd/dirzip, not here.
package config
