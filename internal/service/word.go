package service

import (
	"context"
	"strings"

	"englishcard/internal/domain"
	"englishcard/internal/repository"

	"go.uber.org/zap"
)

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, logger *zap.Logger) *WordService {
	return &WordService{wordRepo: wordRepo, logger: logger}
}

// AddPersonalWord saves a word pair owned by the user
func (s *WordService) AddPersonalWord(ctx context.Context, userID int64, source, target string) error {
	source = strings.TrimSpace(source)
	target = strings.TrimSpace(target)
	if source == "" || target == "" {
		return domain.ErrInvalidWord
	}
	return s.wordRepo.AddPersonal(ctx, userID, source, target)
}

// GetUserWords returns the user's personal words
func (s *WordService) GetUserWords(ctx context.Context, userID int64) ([]domain.Word, error) {
	return s.wordRepo.GetUserWords(ctx, userID)
}

// DeleteWord removes a personal word if the user owns it
func (s *WordService) DeleteWord(ctx context.Context, wordID, userID int64) (bool, error) {
	return s.wordRepo.DeleteByID(ctx, wordID, userID)
}

// SeedCommonWords fills the shared pool with the default words if it is empty
func (s *WordService) SeedCommonWords(ctx context.Context) error {
	inserted, err := s.wordRepo.SeedCommon(ctx, domain.DefaultCommonWords)
	if err != nil {
		s.logger.Error("Failed to seed common words", zap.Error(err))
		return err
	}

	if inserted == 0 {
		s.logger.Info("Common words already present, skipping seed")
	} else {
		s.logger.Info("Common words seeded", zap.Int("count", inserted))
	}
	return nil
}
