// Package stats computes the summary metrics reported after an archive
// run. Everything here is pure: no I/O, no clock reads.
package stats

import (
	"fmt"
	"time"
)

// RunStats summarizes a completed archive run.
//
// Computed once after the archive is finalized, read-only afterward.
type RunStats struct {
	// SourceName is the basename of the archived directory.
	SourceName string

	// FileCount is the number of entries written to the archive.
	FileCount int

	// OriginalBytes is the total uncompressed size of all entries.
	OriginalBytes int64

	// CompressedBytes is the finalized archive's on-disk size.
	CompressedBytes int64

	// RatioPercent is the compression ratio, (1-compressed/original)*100.
	RatioPercent float64

	// Elapsed is the wall-clock duration of the whole run.
	Elapsed time.Duration
}

// Compute assembles RunStats from the discovery totals and the
// finalized archive size.
func Compute(sourceName string, fileCount int, originalBytes, compressedBytes int64, elapsed time.Duration) RunStats {
	return RunStats{
		SourceName:      sourceName,
		FileCount:       fileCount,
		OriginalBytes:   originalBytes,
		CompressedBytes: compressedBytes,
		RatioPercent:    Ratio(originalBytes, compressedBytes),
		Elapsed:         elapsed,
	}
}

// Ratio returns the percentage reduction achieved by compression.
// An original size of zero yields 0.0 rather than dividing by zero.
func Ratio(originalBytes, compressedBytes int64) float64 {
	if originalBytes == 0 {
		return 0.0
	}
	return (1 - float64(compressedBytes)/float64(originalBytes)) * 100
}

// HumanSize renders a byte count in the largest fitting unit up to GB,
// dividing by 1024 at each step. Whole bytes render as an integer
// ("500 B"); scaled units render with two decimals ("2.00 KB").
func HumanSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	size := float64(n)
	var unit string
	for _, unit = range []string{"KB", "MB", "GB"} {
		size /= 1024
		if size < 1024 {
			break
		}
	}
	return fmt.Sprintf("%.2f %s", size, unit)
}
