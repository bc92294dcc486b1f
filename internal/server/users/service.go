package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/shared"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account with a freshly generated opaque user ID.
// Returns shared.ErrorAlreadyExists if the login ID is taken; the existing
// record is left untouched in that case.
func (s *Service) Register(ctx context.Context, loginID, password string) (*models.User, error) {

	user := &models.User{
		ID:             uuid.NewString(),
		LoginID:        loginID,
		PasswordDigest: shared.HashPassword(password),
	}

	user, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, shared.ErrorAlreadyExists) {
			return nil, shared.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

func (s *Service) checkDigest(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Authenticate verifies the login ID and password. Unknown login and wrong
// password both yield shared.ErrorInvalidLoginPassword; the two cases are
// deliberately indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, loginID, password string) (*models.User, error) {

	user, err := s.repo.GetByLogin(ctx, loginID)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorInvalidLoginPassword
		}
		return nil, shared.ErrorInternal
	}

	if !s.checkDigest(user.PasswordDigest, shared.HashPassword(password)) {
		return nil, shared.ErrorInvalidLoginPassword
	}

	return user, nil
}
