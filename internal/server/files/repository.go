package files

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/server/models"
)

// Repository is the per-user file index. Records keep insertion order; name
// lookups are first-match, so duplicate names resolve to the oldest record.
type Repository interface {
	// ListByUser returns the user's records in insertion order. An absent
	// user key is an empty list, not an error.
	ListByUser(ctx context.Context, userID string) ([]models.File, error)

	// Append adds a record to the end of the user's list, creating the list
	// if absent.
	Append(ctx context.Context, userID string, f models.File) error

	// FindByName returns the first record with the given name, or
	// shared.ErrorNotFound.
	FindByName(ctx context.Context, userID, name string) (*models.File, error)

	// RemoveByName removes the first record with the given name. Returns
	// shared.ErrorNotFound when no record matches, including when the user
	// has no list at all.
	RemoveByName(ctx context.Context, userID, name string) error
}
