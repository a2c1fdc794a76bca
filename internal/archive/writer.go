// Package archive writes discovered files into a deflate-compressed
// zip archive.
//
// Entry names are the slash-separated relative paths computed during
// discovery, so any standard unpacking tool can open the result. The
// destination is opened with O_EXCL: an existing file fails the run
// rather than being overwritten. On any failure the partial archive
// is removed before returning, so a Result always refers to a
// complete, finalized archive.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/bencewok/dirzip/internal/model"
)

// WriteError reports a failure while creating the archive or writing
// one of its entries. Path names the file that failed.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Result holds the outcome of a completed archive write.
type Result struct {
	// Path is the destination archive file.
	Path string

	// Entries is the number of entries written.
	Entries int

	// CompressedBytes is the finalized archive's on-disk size.
	CompressedBytes int64
}

// ProgressFunc receives (index, total, relPath) after each entry
// completes. index is 1-based.
type ProgressFunc func(index, total int, relPath string)

// Write streams every file into a new zip archive at dest, in the
// given order. Parent directories of dest are created as needed.
//
// Cancellation of ctx aborts between entries and surfaces ctx.Err();
// all other failures surface as a *WriteError naming the offending
// path. Either way the partial destination file is deleted.
func Write(ctx context.Context, files []model.DiscoveredFile, dest string, onProgress ProgressFunc) (*Result, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return nil, &WriteError{Path: dest, Err: err}
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, &WriteError{Path: dest, Err: err}
	}

	zw := zip.NewWriter(out)

	g, ctx := errgroup.WithContext(ctx)
	// zip.Writer is not safe for concurrent use and entries must land
	// in discovery order, so the group runs one entry at a time.
	g.SetLimit(1)

	total := len(files)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if cancel := ctx.Err(); cancel != nil {
				return cancel
			}
			if err := addEntry(zw, f); err != nil {
				return err
			}
			if onProgress != nil {
				onProgress(i+1, total, f.RelPath)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zw.Close()
		out.Close()
		os.Remove(dest)
		return nil, err
	}

	if err := zw.Close(); err != nil {
		out.Close()
		os.Remove(dest)
		return nil, &WriteError{Path: dest, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return nil, &WriteError{Path: dest, Err: err}
	}

	info, err := os.Stat(dest)
	if err != nil {
		return nil, &WriteError{Path: dest, Err: err}
	}

	return &Result{
		Path:            dest,
		Entries:         total,
		CompressedBytes: info.Size(),
	}, nil
}

// addEntry writes a single file into the archive as a deflate entry
// named by its relative path.
func addEntry(zw *zip.Writer, file model.DiscoveredFile) error {
	info, err := os.Stat(file.Path)
	if err != nil {
		return &WriteError{Path: file.Path, Err: err}
	}

	h, err := zip.FileInfoHeader(info)
	if err != nil {
		return &WriteError{Path: file.Path, Err: err}
	}
	h.Name = file.RelPath
	h.Method = zip.Deflate

	w, err := zw.CreateHeader(h)
	if err != nil {
		return &WriteError{Path: file.Path, Err: err}
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return &WriteError{Path: file.Path, Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return &WriteError{Path: file.Path, Err: err}
	}
	return nil
}
