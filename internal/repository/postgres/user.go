package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB, timeout time.Duration) *UserRepo {
	return &UserRepo{db: db, timeout: timeout}
}

// GetOrCreate returns the internal id for an external identity, creating the row on first contact.
// Concurrent first contacts race on the unique external_id; the loser re-reads the winner's row.
func (r *UserRepo) GetOrCreate(ctx context.Context, externalID int64, displayName string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	id, err := r.findByExternalID(ctx, externalID)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, readError("find user", err)
	}

	query := `
		INSERT INTO users (external_id, display_name)
		VALUES ($1, NULLIF($2, ''))
		ON CONFLICT (external_id) DO NOTHING
		RETURNING id
	`
	err = r.db.QueryRowxContext(ctx, query, externalID, displayName).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, writeError("create user", err)
	}

	// Another event created the user between our read and insert
	id, err = r.findByExternalID(ctx, externalID)
	if err != nil {
		return 0, readError("find user after conflict", err)
	}
	return id, nil
}

func (r *UserRepo) findByExternalID(ctx context.Context, externalID int64) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `SELECT id FROM users WHERE external_id = $1`, externalID)
	return id, err
}
