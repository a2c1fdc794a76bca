// Package discover walks a source directory depth-first and collects
// the files eligible for archiving.
//
// Subdirectories whose basename is excluded are pruned, so their
// contents are never visited. Files whose basename is excluded are
// skipped. Everything else is appended in the order the traversal
// yields it; the archive writer consumes the same slice, so both
// passes share one order by construction.
package discover

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bencewok/dirzip/internal/filter"
	"github.com/bencewok/dirzip/internal/model"
)

// DiscoveryError reports a source root that is missing, unreadable or
// not a directory.
type DiscoveryError struct {
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovering %s: %v", e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// Result holds the outcome of a discovery pass.
type Result struct {
	// Files is the ordered list of eligible files.
	Files []model.DiscoveredFile

	// TotalBytes is the cumulative size of Files.
	TotalBytes int64
}

// FoundFunc receives the running file count after each eligible file
// is appended.
type FoundFunc func(count int)

// Discover walks the tree rooted at root and returns every eligible
// file in traversal order, plus the cumulative byte total.
//
// An empty tree (or one where every entry is excluded) is not an
// error; the caller decides what zero files means. A missing or
// non-directory root returns a *DiscoveryError. Cancellation of ctx
// aborts the walk with ctx.Err().
func Discover(ctx context.Context, root string, set *filter.ExclusionSet, onFound FoundFunc) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &DiscoveryError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Path: root, Err: fmt.Errorf("not a directory")}
	}

	res := &Result{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if cancel := ctx.Err(); cancel != nil {
			return cancel
		}
		if err != nil {
			return &DiscoveryError{Path: path, Err: err}
		}

		if d.IsDir() {
			// Never prune the root itself, even if its basename is
			// excluded; the user asked for this directory explicitly.
			if path != root && set.Excluded(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		if set.Excluded(d.Name()) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return &DiscoveryError{Path: path, Err: err}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return &DiscoveryError{Path: path, Err: err}
		}

		res.Files = append(res.Files, model.DiscoveredFile{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
			Size:    fi.Size(),
		})
		res.TotalBytes += fi.Size()

		if onFound != nil {
			onFound(len(res.Files))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
