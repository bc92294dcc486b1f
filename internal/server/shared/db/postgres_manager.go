package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/filevault/internal/server/files"
	"github.com/dmitrijs2005/filevault/internal/server/migrations"
	"github.com/dmitrijs2005/filevault/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db    *sql.DB
	users users.Repository
	files files.Repository
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Files() files.Repository {
	return m.files
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	userRepo, err := users.NewPostgresRepository(sqlDB)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	fileRepo, err := files.NewPostgresRepository(sqlDB)
	if err != nil {
		return nil, fmt.Errorf("file repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:    sqlDB,
		users: userRepo,
		files: fileRepo,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
