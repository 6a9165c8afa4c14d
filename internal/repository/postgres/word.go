package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"englishcard/internal/domain"

	"github.com/jmoiron/sqlx"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sqlx.DB, timeout time.Duration) *WordRepo {
	return &WordRepo{db: db, timeout: timeout}
}

// AddPersonal saves a word pair owned by the user
func (r *WordRepo) AddPersonal(ctx context.Context, userID int64, source, target string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO words (source_text, target_text, is_common, owner_id)
		VALUES ($1, $2, FALSE, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, source, target, userID); err != nil {
		return writeError("add personal word", err)
	}
	return nil
}

// GetUserWords returns all personal words of the user, oldest first
func (r *WordRepo) GetUserWords(ctx context.Context, userID int64) ([]domain.Word, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, source_text, target_text, is_common, owner_id
		FROM words
		WHERE owner_id = $1
		ORDER BY id
	`
	var words []domain.Word
	if err := r.db.SelectContext(ctx, &words, query, userID); err != nil {
		return nil, readError("get user words", err)
	}
	return words, nil
}

// DeleteByID deletes a word only if it belongs to the user.
// A missing word or a foreign owner both report false without an error.
func (r *WordRepo) DeleteByID(ctx context.Context, wordID, userID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = $1 AND owner_id = $2`, wordID, userID)
	if err != nil {
		return false, writeError("delete word", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, writeError("delete word", err)
	}
	return n > 0, nil
}

// GetRandomForQuiz returns a random word visible to the user, or nil if there is none
func (r *WordRepo) GetRandomForQuiz(ctx context.Context, userID int64) (*domain.Word, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, source_text, target_text, is_common, owner_id
		FROM words
		WHERE is_common = TRUE OR owner_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`
	var w domain.Word
	err := r.db.GetContext(ctx, &w, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, readError("get random word", err)
	}
	return &w, nil
}

// GetWrongOptions returns up to limit distinct translations visible to the user,
// excluding the correct one.
// TODO: ORDER BY RANDOM() scans every visible row; switch to TABLESAMPLE once the shared pool grows.
func (r *WordRepo) GetWrongOptions(ctx context.Context, correctTarget string, userID int64, limit int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT target_text
		FROM (
			SELECT DISTINCT target_text
			FROM words
			WHERE target_text <> $1
				AND (is_common = TRUE OR owner_id = $2)
		) AS candidates
		ORDER BY RANDOM()
		LIMIT $3
	`
	var options []string
	if err := r.db.SelectContext(ctx, &options, query, correctTarget, userID, limit); err != nil {
		return nil, readError("get wrong options", err)
	}
	return options, nil
}

// SeedCommon inserts the given common words if the store has none yet.
// It returns how many words were inserted.
func (r *WordRepo) SeedCommon(ctx context.Context, pairs []domain.WordPair) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, writeError("seed common words", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM words WHERE is_common = TRUE`); err != nil {
		return 0, readError("count common words", err)
	}
	if count > 0 {
		return 0, nil
	}

	query := `
		INSERT INTO words (source_text, target_text, is_common)
		VALUES ($1, $2, TRUE)
	`
	for _, p := range pairs {
		if _, err := tx.ExecContext(ctx, query, p.Source, p.Target); err != nil {
			return 0, writeError("seed common words", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, writeError("seed common words", err)
	}
	return len(pairs), nil
}
