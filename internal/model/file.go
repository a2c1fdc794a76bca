package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ArchiveExt is the extension of every archive dirzip produces.
const ArchiveExt = ".zip"

// timestampLayout renders a sortable YYYYMMDD_HHMMSS suffix.
const timestampLayout = "20060102_150405"

// DiscoveredFile is a single file selected for archiving.
//
// Discovery produces these in traversal order; they are never mutated
// afterward. The archive writer consumes the same slice, so the entry
// order inside the archive matches discovery order by construction.
type DiscoveredFile struct {
	// Path is the absolute (or walk-rooted) path on disk.
	Path string

	// RelPath is the path relative to the source root, slash-separated.
	// This is the entry name inside the archive: no leading slash, no
	// drive letters, portable across unpacking tools.
	RelPath string

	// Size is the file's size in bytes at discovery time.
	Size int64
}

// ArchiveFileName computes the output archive's filename from the base
// name. With useTimestamp the sortable timestamp suffix keeps repeated
// runs from colliding; without it the name is exactly base + ".zip".
// The base name is sanitized for cross-platform validity first.
func ArchiveFileName(base string, now time.Time, useTimestamp bool) string {
	base = sanitizeFileName(base)
	if useTimestamp {
		return fmt.Sprintf("%s_%s%s", base, now.Format(timestampLayout), ArchiveExt)
	}
	return base + ArchiveExt
}

// sanitizeFileName removes or replaces characters that are invalid in
// file names, with Windows having the most restrictive rules.
func sanitizeFileName(name string) string {
	// Characters: < > : " / \ | ? * and control characters (0x00-0x1f)
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Windows doesn't allow filenames ending with dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
