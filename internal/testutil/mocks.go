package testutil

import (
	"context"

	"englishcard/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(ctx context.Context, externalID int64, displayName string) (int64, error) {
	args := m.Called(ctx, externalID, displayName)
	return args.Get(0).(int64), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) AddPersonal(ctx context.Context, userID int64, source, target string) error {
	args := m.Called(ctx, userID, source, target)
	return args.Error(0)
}

func (m *MockWordRepository) GetUserWords(ctx context.Context, userID int64) ([]domain.Word, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) DeleteByID(ctx context.Context, wordID, userID int64) (bool, error) {
	args := m.Called(ctx, wordID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) GetRandomForQuiz(ctx context.Context, userID int64) (*domain.Word, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWrongOptions(ctx context.Context, correctTarget string, userID int64, limit int) ([]string, error) {
	args := m.Called(ctx, correctTarget, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWordRepository) SeedCommon(ctx context.Context, pairs []domain.WordPair) (int, error) {
	args := m.Called(ctx, pairs)
	return args.Int(0), args.Error(1)
}
