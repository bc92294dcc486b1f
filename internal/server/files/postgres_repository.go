package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filevault/internal/server/models"
	"github.com/dmitrijs2005/filevault/internal/shared"
)

// PostgresRepository keeps the file index in a table with a serial primary
// key, so insertion order and first-match semantics carry over from the
// JSON document.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.File, error) {
	query :=
		`SELECT name, path, date FROM files
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var list []models.File
	for rows.Next() {
		var f models.File
		if err := rows.Scan(&f.Name, &f.Path, &f.Date); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return list, nil
}

func (r *PostgresRepository) Append(ctx context.Context, userID string, f models.File) error {
	query :=
		`INSERT INTO files (user_id, name, path, date)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query, userID, f.Name, f.Path, f.Date)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) FindByName(ctx context.Context, userID, name string) (*models.File, error) {
	query :=
		`SELECT name, path, date FROM files
		 WHERE user_id = $1 AND name = $2
		 ORDER BY id
		 LIMIT 1
		 `

	f := &models.File{}
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(&f.Name, &f.Path, &f.Date)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return f, nil
}

func (r *PostgresRepository) RemoveByName(ctx context.Context, userID, name string) error {
	// first match only: duplicate names keep their later entries
	query :=
		`DELETE FROM files
		 WHERE id = (
		     SELECT min(id) FROM files
		     WHERE user_id = $1 AND name = $2
		 )
		 `

	res, err := r.db.ExecContext(ctx, query, userID, name)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if affected == 0 {
		return shared.ErrorNotFound
	}

	return nil
}
