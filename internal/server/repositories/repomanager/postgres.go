package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/dbx"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/migrations"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/pictures"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and applies
// the embedded goose migrations.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager constructs a manager over an open connection
// pool.
func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations configures goose with the embedded migration files and runs
// them against the manager's database.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

// InTx runs fn inside a database transaction.
func (m *PostgresRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, m.db, nil, fn)
}

// Users returns a users.Repository bound to db, or to the default pool when
// db is nil.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	if db == nil {
		db = m.db
	}
	return users.NewPostgresRepository(db)
}

// Pictures returns a pictures.Repository bound to db, or to the default pool
// when db is nil.
func (m *PostgresRepositoryManager) Pictures(db dbx.DBTX) pictures.Repository {
	if db == nil {
		db = m.db
	}
	return pictures.NewPostgresRepository(db)
}
