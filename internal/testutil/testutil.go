package testutil

import (
	"englishcard/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewCommonWord creates a shared test word
func NewCommonWord(id int64, source, target string) *domain.Word {
	return &domain.Word{
		ID:     id,
		Source: source,
		Target: target,
		Common: true,
	}
}

// NewPersonalWord creates a test word owned by userID
func NewPersonalWord(id, userID int64, source, target string) *domain.Word {
	owner := userID
	return &domain.Word{
		ID:      id,
		Source:  source,
		Target:  target,
		OwnerID: &owner,
	}
}
