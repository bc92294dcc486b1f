package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/shared"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (login_id, user_id, password_digest)
         VALUES ($1, $2, $3)
         ON CONFLICT (login_id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, user.LoginID, user.ID, user.PasswordDigest)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	if affected == 0 {
		return nil, shared.ErrorAlreadyExists
	}

	return user, nil
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, loginID string) (*models.User, error) {
	query :=
		`SELECT user_id, login_id, password_digest FROM users
		 WHERE login_id = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, loginID).Scan(&user.ID, &user.LoginID, &user.PasswordDigest)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}
