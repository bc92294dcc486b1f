package files

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/shared"
)

// JSONRepository keeps the whole file index in one JSON document keyed by
// user ID:
//
//	{"<userId>": [{"name": ..., "path": ..., "date": ...}]}
//
// Like the credential store, every operation loads and rewrites the entire
// document with no locking; concurrent writers race and the last persist
// wins.
type JSONRepository struct {
	path string
}

func NewJSONRepository(path string) *JSONRepository {
	return &JSONRepository{path: path}
}

func (r *JSONRepository) load() (map[string][]models.File, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]models.File{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	doc := map[string][]models.File{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return doc, nil
}

func (r *JSONRepository) save(doc map[string][]models.File) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

func (r *JSONRepository) ListByUser(ctx context.Context, userID string) ([]models.File, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc[userID], nil
}

func (r *JSONRepository) Append(ctx context.Context, userID string, f models.File) error {
	doc, err := r.load()
	if err != nil {
		return err
	}

	doc[userID] = append(doc[userID], f)

	return r.save(doc)
}

func (r *JSONRepository) FindByName(ctx context.Context, userID, name string) (*models.File, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, f := range doc[userID] {
		if f.Name == name {
			return &f, nil
		}
	}

	return nil, shared.ErrorNotFound
}

func (r *JSONRepository) RemoveByName(ctx context.Context, userID, name string) error {
	doc, err := r.load()
	if err != nil {
		return err
	}

	list := doc[userID]
	for i, f := range list {
		if f.Name == name {
			doc[userID] = append(list[:i], list[i+1:]...)
			return r.save(doc)
		}
	}

	return shared.ErrorNotFound
}
