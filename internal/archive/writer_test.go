package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/bencewok/dirzip/internal/model"
)

func fixtureFiles(t *testing.T, contents map[string]string) (string, []model.DiscoveredFile) {
	t.Helper()
	root := t.TempDir()

	var files []model.DiscoveredFile
	// Deterministic order for the test: sorted rel paths.
	keys := make([]string, 0, len(contents))
	for rel := range contents {
		keys = append(keys, rel)
	}
	sort.Strings(keys)

	for _, rel := range keys {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(contents[rel]), 0644); err != nil {
			t.Fatal(err)
		}
		files = append(files, model.DiscoveredFile{
			Path:    path,
			RelPath: rel,
			Size:    int64(len(contents[rel])),
		})
	}
	return root, files
}

func TestWrite_RoundTrip(t *testing.T) {
	contents := map[string]string{
		"a.txt":       "hello world",
		"sub/b.txt":   strings.Repeat("compressible ", 100),
		"sub/c/d.bin": "\x00\x01\x02\x03",
	}
	_, files := fixtureFiles(t, contents)
	dest := filepath.Join(t.TempDir(), "out.zip")

	res, err := Write(context.Background(), files, dest, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Entries != len(files) {
		t.Errorf("Entries = %d, want %d", res.Entries, len(files))
	}
	if res.Path != dest {
		t.Errorf("Path = %q, want %q", res.Path, dest)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if res.CompressedBytes != info.Size() {
		t.Errorf("CompressedBytes = %d, want on-disk size %d", res.CompressedBytes, info.Size())
	}

	zr, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	if len(zr.File) != len(contents) {
		t.Fatalf("archive has %d entries, want %d", len(zr.File), len(contents))
	}
	for _, zf := range zr.File {
		want, ok := contents[zf.Name]
		if !ok {
			t.Errorf("unexpected entry %q", zf.Name)
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			t.Fatal(err)
		}
		got, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != want {
			t.Errorf("entry %q content mismatch", zf.Name)
		}
	}
}

func TestWrite_EntriesAreDeflate(t *testing.T) {
	_, files := fixtureFiles(t, map[string]string{"a.txt": "content"})
	dest := filepath.Join(t.TempDir(), "out.zip")

	if _, err := Write(context.Background(), files, dest, nil); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	for _, zf := range zr.File {
		if zf.Method != zip.Deflate {
			t.Errorf("entry %q method = %d, want deflate", zf.Name, zf.Method)
		}
	}
}

func TestWrite_ProgressInOrder(t *testing.T) {
	_, files := fixtureFiles(t, map[string]string{
		"a.txt": "1",
		"b.txt": "2",
		"c.txt": "3",
	})
	dest := filepath.Join(t.TempDir(), "out.zip")

	type event struct {
		index, total int
		relPath      string
	}
	var events []event
	_, err := Write(context.Background(), files, dest, func(index, total int, relPath string) {
		events = append(events, event{index, total, relPath})
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != len(files) {
		t.Fatalf("got %d events, want %d", len(events), len(files))
	}
	for i, ev := range events {
		if ev.index != i+1 {
			t.Errorf("events[%d].index = %d, want %d", i, ev.index, i+1)
		}
		if ev.total != len(files) {
			t.Errorf("events[%d].total = %d, want %d", i, ev.total, len(files))
		}
		if ev.relPath != files[i].RelPath {
			t.Errorf("events[%d].relPath = %q, want %q", i, ev.relPath, files[i].RelPath)
		}
	}
}

func TestWrite_FailsIfDestinationExists(t *testing.T) {
	_, files := fixtureFiles(t, map[string]string{"a.txt": "x"})
	dest := filepath.Join(t.TempDir(), "out.zip")
	if err := os.WriteFile(dest, []byte("already here"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Write(context.Background(), files, dest, nil)

	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("want *WriteError, got %v", err)
	}

	// The pre-existing file must be left alone.
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "already here" {
		t.Error("existing destination was clobbered")
	}
}

func TestWrite_RemovesPartialArchiveOnFailure(t *testing.T) {
	root, files := fixtureFiles(t, map[string]string{
		"a.txt": "readable",
		"b.txt": "will vanish",
	})
	// Delete b.txt between discovery and write to force a read failure.
	missing := filepath.Join(root, "b.txt")
	if err := os.Remove(missing); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(t.TempDir(), "out.zip")
	_, err := Write(context.Background(), files, dest, nil)

	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("want *WriteError, got %v", err)
	}
	if werr.Path != missing {
		t.Errorf("WriteError.Path = %q, want %q", werr.Path, missing)
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("partial archive should have been removed")
	}
}

func TestWrite_CancelledRemovesPartialArchive(t *testing.T) {
	_, files := fixtureFiles(t, map[string]string{"a.txt": "x"})
	dest := filepath.Join(t.TempDir(), "out.zip")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Write(ctx, files, dest, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("partial archive should have been removed")
	}
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	_, files := fixtureFiles(t, map[string]string{"a.txt": "x"})
	dest := filepath.Join(t.TempDir(), "deep", "nested", "out.zip")

	if _, err := Write(context.Background(), files, dest, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("archive not created: %v", err)
	}
}

func TestWrite_EmptyFileList(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.zip")

	res, err := Write(context.Background(), nil, dest, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Entries != 0 {
		t.Errorf("Entries = %d, want 0", res.Entries)
	}

	zr, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	if len(zr.File) != 0 {
		t.Errorf("archive has %d entries, want 0", len(zr.File))
	}
}
