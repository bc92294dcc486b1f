package files

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/server/storage"
)

type Service struct {
	repo  Repository
	blobs storage.Storage
}

func NewService(repo Repository, blobs storage.Storage) *Service {
	return &Service{repo: repo, blobs: blobs}
}

func (s *Service) List(ctx context.Context, userID string) ([]models.File, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Upload stores the file bytes, then appends the index entry. The entry's
// timestamp is a separate clock reading from the one the storage backend uses
// for its date partition; across a day boundary the two can differ, which
// matches the behavior of the existing data. If appending the index entry
// fails the stored bytes are left behind; there is no rollback.
func (s *Service) Upload(ctx context.Context, userID, name string, r io.Reader) (*models.File, error) {
	relPath, err := s.blobs.Save(ctx, userID, name, r)
	if err != nil {
		return nil, fmt.Errorf("saving upload: %w", err)
	}

	f := models.File{
		Name: name,
		Path: relPath,
		Date: time.Now().Format(time.RFC3339),
	}

	if err := s.repo.Append(ctx, userID, f); err != nil {
		return nil, fmt.Errorf("appending index entry: %w", err)
	}

	return &f, nil
}

// Download looks up the first index entry with the given name and opens its
// content. A dangling entry whose bytes are gone surfaces the storage error,
// not a not-found.
func (s *Service) Download(ctx context.Context, userID, name string) (*models.File, io.ReadCloser, error) {
	f, err := s.repo.FindByName(ctx, userID, name)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.blobs.Open(ctx, f.Path)
	if err != nil {
		return nil, nil, err
	}

	return f, rc, nil
}

// Delete removes the stored bytes first, then the index entry. There is no
// rollback: a failure between the two steps leaves a dangling index entry.
func (s *Service) Delete(ctx context.Context, userID, name string) error {
	f, err := s.repo.FindByName(ctx, userID, name)
	if err != nil {
		return err
	}

	if err := s.blobs.Remove(ctx, f.Path); err != nil {
		return err
	}

	return s.repo.RemoveByName(ctx, userID, name)
}
