package db

import (
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/filevault/internal/filex"
	"github.com/dmitrijs2005/filevault/internal/server/files"
	"github.com/dmitrijs2005/filevault/internal/server/users"
)

// JSONRepositoryManager backs the repositories with two flat JSON documents
// in dataDir: users.json and files.json.
type JSONRepositoryManager struct {
	users *users.JSONRepository
	files *files.JSONRepository
}

func (m *JSONRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *JSONRepositoryManager) Files() files.Repository {
	return m.files
}

func (m *JSONRepositoryManager) Close() error {
	return nil
}

func NewJSONRepositoryManager(dataDir string) (RepositoryManager, error) {

	dir, err := filex.EnsureDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir init error: %w", err)
	}

	return &JSONRepositoryManager{
		users: users.NewJSONRepository(filepath.Join(dir, "users.json")),
		files: files.NewJSONRepository(filepath.Join(dir, "files.json")),
	}, nil
}
