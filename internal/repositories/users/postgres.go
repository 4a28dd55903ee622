package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/picseed/internal/dbx"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const deleteByEmailQuery = `DELETE FROM users WHERE email = $1`

// PostgresRepository talks to the datastore over a direct connection, or
// inside a caller's transaction when given a *sql.Tx.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// OpenPostgres opens a pgx-backed *sql.DB for dsn and verifies it with a ping.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

func (r *PostgresRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteByEmailQuery, email)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return -1, nil
	}
	return n, nil
}
