package service

import (
	"context"
	"fmt"
	"math/rand"

	"englishcard/internal/domain"
	"englishcard/internal/repository"
)

// QuizService builds multiple-choice questions
type QuizService struct {
	wordRepo repository.WordRepository
	shuffle  func(n int, swap func(i, j int))
}

// NewQuizService creates a new quiz service
func NewQuizService(wordRepo repository.WordRepository) *QuizService {
	return &QuizService{
		wordRepo: wordRepo,
		shuffle:  rand.Shuffle,
	}
}

// GenerateQuestion picks a random word visible to the user and three distractors.
// It returns nil when the user has no words at all.
func (s *QuizService) GenerateQuestion(ctx context.Context, userID int64) (*domain.Question, error) {
	word, err := s.wordRepo.GetRandomForQuiz(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("pick quiz word: %w", err)
	}
	if word == nil {
		return nil, nil
	}

	distractors := domain.OptionsCount - 1
	wrong, err := s.wordRepo.GetWrongOptions(ctx, word.Target, userID, distractors)
	if err != nil {
		return nil, fmt.Errorf("pick distractors: %w", err)
	}

	options := make([]string, 0, domain.OptionsCount)
	for _, opt := range wrong {
		if len(options) == distractors {
			break
		}
		options = append(options, opt)
	}
	for len(options) < distractors {
		options = append(options, domain.FillerOption)
	}
	options = append(options, word.Target)

	s.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.Question{
		WordID:  word.ID,
		Prompt:  word.Source,
		Answer:  word.Target,
		Options: options,
	}, nil
}
