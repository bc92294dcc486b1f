package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/filevault/internal/filex"
)

// DiskStorage writes uploads under root, one directory per user per upload
// date. Paths recorded in the index are relative and slash-separated, so an
// index written on one platform stays readable on another.
type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) *DiskStorage {
	return &DiskStorage{root: root}
}

// DirectoryFor returns the storage directory for one user at the given
// moment, creating it if absent. The date partition is the calendar date of
// the clock reading; creating an existing directory is not an error.
func (d *DiskStorage) DirectoryFor(userID string, now time.Time) (string, error) {
	dir := filepath.Join(d.root, userID, now.Format("2006-01-02"))
	return filex.EnsureDir(dir)
}

// Save writes the upload into the user's directory for today. The date used
// here comes from its own clock reading; the index entry's timestamp is taken
// separately by the caller and the two are not guaranteed to agree across a
// day boundary.
func (d *DiskStorage) Save(ctx context.Context, userID, name string, r io.Reader) (string, error) {
	dir, err := d.DirectoryFor(userID, time.Now())
	if err != nil {
		return "", err
	}

	dst := filepath.Join(dir, name)
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write %s: %w", dst, err)
	}

	return filepath.ToSlash(dst), nil
}

func (d *DiskStorage) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.FromSlash(relPath))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", relPath, err)
	}
	return f, nil
}

func (d *DiskStorage) Remove(ctx context.Context, relPath string) error {
	if err := os.Remove(filepath.FromSlash(relPath)); err != nil {
		return fmt.Errorf("remove %s: %w", relPath, err)
	}
	return nil
}
