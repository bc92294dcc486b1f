package users

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/shared"
)

// userRecord is the on-disk shape of one credential entry. The users document
// is a single JSON object keyed by login ID:
//
//	{"alice": {"userId": "...", "password": "<sha256 hex>"}}
type userRecord struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// JSONRepository keeps the whole credential store in one JSON document.
// Every operation loads the entire document and writes it back wholesale.
// There is no locking: concurrent writers race and the last one to persist
// wins.
type JSONRepository struct {
	path string
}

func NewJSONRepository(path string) *JSONRepository {
	return &JSONRepository{path: path}
}

func (r *JSONRepository) load() (map[string]userRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]userRecord{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	doc := map[string]userRecord{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return doc, nil
}

func (r *JSONRepository) save(doc map[string]userRecord) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

func (r *JSONRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	if _, ok := doc[user.LoginID]; ok {
		return nil, shared.ErrorAlreadyExists
	}

	doc[user.LoginID] = userRecord{UserID: user.ID, Password: user.PasswordDigest}

	if err := r.save(doc); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *JSONRepository) GetByLogin(ctx context.Context, loginID string) (*models.User, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	rec, ok := doc[loginID]
	if !ok {
		return nil, shared.ErrorNotFound
	}

	return &models.User{ID: rec.UserID, LoginID: loginID, PasswordDigest: rec.Password}, nil
}
