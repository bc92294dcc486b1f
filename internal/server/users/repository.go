package users

import (
	"context"

	"github.com/dmitrijs2005/filevault/internal/server/models"
)

type Repository interface {
	// Create inserts a new user record. Returns shared.ErrorAlreadyExists
	// if the login ID is already taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByLogin returns the user with the given login ID, or
	// shared.ErrorNotFound.
	GetByLogin(ctx context.Context, loginID string) (*models.User, error)
}
