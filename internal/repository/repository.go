package repository

import (
	"context"

	"englishcard/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetOrCreate(ctx context.Context, externalID int64, displayName string) (int64, error)
}

// WordRepository defines word data operations.
// Every read used by the quiz applies the same visibility rule:
// a word is visible to a user if it is common or owned by that user.
type WordRepository interface {
	AddPersonal(ctx context.Context, userID int64, source, target string) error
	GetUserWords(ctx context.Context, userID int64) ([]domain.Word, error)
	DeleteByID(ctx context.Context, wordID, userID int64) (bool, error)
	GetRandomForQuiz(ctx context.Context, userID int64) (*domain.Word, error)
	GetWrongOptions(ctx context.Context, correctTarget string, userID int64, limit int) ([]string, error)
	SeedCommon(ctx context.Context, pairs []domain.WordPair) (int, error)
}
