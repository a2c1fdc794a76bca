package zipper

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/bencewok/dirzip/internal/archive"
	"github.com/bencewok/dirzip/internal/config"
	"github.com/bencewok/dirzip/internal/discover"
	"github.com/bencewok/dirzip/internal/filter"
	"github.com/bencewok/dirzip/internal/model"
	"github.com/bencewok/dirzip/internal/stats"
)

// ErrEmptySource is returned by Discover when the source tree yields
// zero eligible files. It is a clean terminal condition, not a crash;
// callers map it to a non-zero exit.
var ErrEmptySource = errors.New("no files to archive")

// Reporter receives progress events from the Manager. Implementations
// are purely presentational; the core never writes to the terminal
// itself.
type Reporter interface {
	// DiscoveryProgress is called with the running count after each
	// file is found.
	DiscoveryProgress(count int)

	// WriteProgress is called after each entry is written. index is
	// 1-based.
	WriteProgress(index, total int, relPath string)

	// Complete is called once with the final statistics.
	Complete(st stats.RunStats)

	// Error is called with a human-readable message when the run
	// fails. Cancellation is not reported here; it is a clean,
	// expected termination path.
	Error(msg string)
}

// nopReporter discards all events.
type nopReporter struct{}

func (nopReporter) DiscoveryProgress(int) {}

func (nopReporter) WriteProgress(int, int, string) {}

func (nopReporter) Complete(stats.RunStats) {}

func (nopReporter) Error(string) {}

// Manager coordinates an archive run.
type Manager struct {
	settings *config.Settings
	set      *filter.ExclusionSet
	reporter Reporter

	files       []model.DiscoveredFile
	totalBytes  int64
	archivePath string
	start       time.Time

	foundFiles   int32
	writtenFiles int32
	totalFiles   int32
}

// NewManager creates a new Manager. A nil reporter discards events.
func NewManager(settings *config.Settings, reporter Reporter) *Manager {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Manager{
		settings: settings,
		set:      filter.New(settings.ExcludePatterns),
		reporter: reporter,
	}
}

// Discover walks the source tree and collects the files to archive.
// It returns ErrEmptySource when nothing is eligible.
func (m *Manager) Discover(ctx context.Context) error {
	m.start = time.Now()

	res, err := discover.Discover(ctx, m.settings.SourcePath, m.set, func(count int) {
		atomic.StoreInt32(&m.foundFiles, int32(count))
		m.reporter.DiscoveryProgress(count)
	})
	if err != nil {
		m.reportError(err)
		return err
	}

	if len(res.Files) == 0 {
		m.reportError(ErrEmptySource)
		return ErrEmptySource
	}

	m.files = res.Files
	m.totalBytes = res.TotalBytes
	atomic.StoreInt32(&m.totalFiles, int32(len(res.Files)))
	return nil
}

// Write streams the discovered files into the archive and returns the
// final statistics. Discover must have succeeded first.
func (m *Manager) Write(ctx context.Context) (*stats.RunStats, error) {
	name := model.ArchiveFileName(m.settings.BaseName(), time.Now(), m.settings.UseTimestamp)
	dest := filepath.Join(m.settings.OutputPath, name)

	res, err := archive.Write(ctx, m.files, dest, func(index, total int, relPath string) {
		atomic.StoreInt32(&m.writtenFiles, int32(index))
		m.reporter.WriteProgress(index, total, relPath)
	})
	if err != nil {
		m.reportError(err)
		return nil, err
	}

	m.archivePath = res.Path
	st := stats.Compute(
		filepath.Base(m.settings.SourcePath),
		res.Entries,
		m.totalBytes,
		res.CompressedBytes,
		time.Since(m.start),
	)
	m.reporter.Complete(st)
	return &st, nil
}

// Run performs a full discover-then-write run.
func (m *Manager) Run(ctx context.Context) (*stats.RunStats, error) {
	if err := m.Discover(ctx); err != nil {
		return nil, err
	}
	return m.Write(ctx)
}

// Progress returns the current counters. Safe to call from any
// goroutine while a run is in flight.
func (m *Manager) Progress() (found, written, total int32) {
	return atomic.LoadInt32(&m.foundFiles),
		atomic.LoadInt32(&m.writtenFiles),
		atomic.LoadInt32(&m.totalFiles)
}

// TotalBytes returns the cumulative size of the discovered files.
func (m *Manager) TotalBytes() int64 { return m.totalBytes }

// ArchivePath returns the finalized archive's path, or empty if the
// run has not completed.
func (m *Manager) ArchivePath() string { return m.archivePath }

// Excluded returns the active exclusion patterns, sorted.
func (m *Manager) Excluded() []string { return m.set.Patterns() }

// reportError forwards run failures to the reporter. Cancellation is
// deliberately not forwarded; it is an expected termination path the
// frontend handles itself.
func (m *Manager) reportError(err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	m.reporter.Error(err.Error())
}
