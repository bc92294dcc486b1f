package users

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *JSONRepository {
	t.Helper()
	return NewJSONRepository(filepath.Join(t.TempDir(), "users.json"))
}

func TestJSONRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	u := &models.User{ID: "id-1", LoginID: "alice", PasswordDigest: "digest"}
	_, err := repo.Create(ctx, u)
	require.NoError(t, err)

	got, err := repo.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestJSONRepository_GetByLogin_NotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	_, err := repo.GetByLogin(context.Background(), "nobody")
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}

func TestJSONRepository_Create_DuplicateLeavesFirstIntact(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "id-1", LoginID: "alice", PasswordDigest: "first"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{ID: "id-2", LoginID: "alice", PasswordDigest: "second"})
	assert.ErrorIs(t, err, shared.ErrorAlreadyExists)

	got, err := repo.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "first", got.PasswordDigest)
	assert.Equal(t, "id-1", got.ID)
}

func TestJSONRepository_DocumentLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "users.json")
	repo := NewJSONRepository(path)

	_, err := repo.Create(context.Background(), &models.User{ID: "id-1", LoginID: "alice", PasswordDigest: "d"})
	require.NoError(t, err)

	// the document is keyed by login ID, matching the existing data files
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Contains(t, doc, "alice")
	assert.Equal(t, "id-1", doc["alice"]["userId"])
	assert.Equal(t, "d", doc["alice"]["password"])
}
