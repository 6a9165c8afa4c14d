package service

import (
	"context"
	"testing"

	"englishcard/internal/domain"
	"englishcard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuizService_GenerateQuestion(t *testing.T) {
	cat := testutil.NewCommonWord(8, "Кот", "Cat")

	tests := []struct {
		name            string
		mockWord        *domain.Word
		mockWordError   error
		mockWrong       []string
		mockWrongError  error
		expectedNil     bool
		expectedError   error
		expectedOptions []string
	}{
		{
			name:            "three distractors",
			mockWord:        cat,
			mockWrong:       []string{"We", "House", "Dream"},
			expectedOptions: []string{"We", "House", "Dream", "Cat"},
		},
		{
			name:            "short pool padded with filler",
			mockWord:        cat,
			mockWrong:       []string{"We"},
			expectedOptions: []string{"We", domain.FillerOption, domain.FillerOption, "Cat"},
		},
		{
			name:            "single word pool",
			mockWord:        cat,
			mockWrong:       []string{},
			expectedOptions: []string{domain.FillerOption, domain.FillerOption, domain.FillerOption, "Cat"},
		},
		{
			name:            "extra distractors ignored",
			mockWord:        cat,
			mockWrong:       []string{"We", "House", "Dream", "She"},
			expectedOptions: []string{"We", "House", "Dream", "Cat"},
		},
		{
			name:        "no words",
			mockWord:    nil,
			expectedNil: true,
		},
		{
			name:          "word lookup fails",
			mockWordError: domain.ErrStorageUnavailable,
			expectedNil:   true,
			expectedError: domain.ErrStorageUnavailable,
		},
		{
			name:           "distractor lookup fails",
			mockWord:       cat,
			mockWrongError: domain.ErrStorageUnavailable,
			expectedNil:    true,
			expectedError:  domain.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("GetRandomForQuiz", mock.Anything, int64(7)).Return(tt.mockWord, tt.mockWordError)
			if tt.mockWord != nil {
				mockRepo.On("GetWrongOptions", mock.Anything, "Cat", int64(7), 3).Return(tt.mockWrong, tt.mockWrongError)
			}

			service := NewQuizService(mockRepo)
			// keep the generated order so options can be compared directly
			service.shuffle = func(int, func(i, j int)) {}

			q, err := service.GenerateQuestion(context.Background(), 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			if tt.expectedNil {
				assert.Nil(t, q)
			} else {
				require.NotNil(t, q)
				assert.Equal(t, int64(8), q.WordID)
				assert.Equal(t, "Кот", q.Prompt)
				assert.Equal(t, "Cat", q.Answer)
				assert.Equal(t, tt.expectedOptions, q.Options)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestQuizService_GenerateQuestion_AlwaysFourOptions(t *testing.T) {
	repo := testutil.NewMemoryWordRepository()
	repo.AddCommon("Кот", "Cat")

	service := NewQuizService(repo)

	for i := 0; i < 50; i++ {
		q, err := service.GenerateQuestion(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, q)

		assert.Len(t, q.Options, domain.OptionsCount)
		assert.Contains(t, q.Options, "Cat")
		assert.Equal(t, "Кот", q.Prompt)
	}
}

func TestQuizService_GenerateQuestion_AnswerPositionUniform(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("GetRandomForQuiz", mock.Anything, int64(7)).Return(testutil.NewCommonWord(8, "Кот", "Cat"), nil)
	mockRepo.On("GetWrongOptions", mock.Anything, "Cat", int64(7), 3).Return([]string{"We", "House", "Dream"}, nil)

	service := NewQuizService(mockRepo)

	const runs = 4000
	counts := make([]int, domain.OptionsCount)
	for i := 0; i < runs; i++ {
		q, err := service.GenerateQuestion(context.Background(), 7)
		require.NoError(t, err)

		for pos, opt := range q.Options {
			if opt == q.Answer {
				counts[pos]++
			}
		}
	}

	// expected 1000 per position, standard deviation about 27
	for pos, n := range counts {
		assert.InDelta(t, runs/domain.OptionsCount, n, 150, "position %d", pos)
	}
}

func TestQuizService_GenerateQuestion_PersonalWordsStayPrivate(t *testing.T) {
	repo := testutil.NewMemoryWordRepository()
	repo.AddCommon("Кот", "Cat")
	repo.AddCommon("Дом", "House")
	require.NoError(t, repo.AddPersonal(context.Background(), 1, "Секрет", "Secret"))

	service := NewQuizService(repo)

	for i := 0; i < 200; i++ {
		q, err := service.GenerateQuestion(context.Background(), 2)
		require.NoError(t, err)
		require.NotNil(t, q)

		assert.NotEqual(t, "Секрет", q.Prompt)
		assert.NotContains(t, q.Options, "Secret")
	}
}

func TestQuizService_GenerateQuestion_OwnPersonalWordOffered(t *testing.T) {
	repo := testutil.NewMemoryWordRepository()
	require.NoError(t, repo.AddPersonal(context.Background(), 1, "Кот", "Cat"))

	service := NewQuizService(repo)

	q, err := service.GenerateQuestion(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "Кот", q.Prompt)
	assert.Contains(t, q.Options, "Cat")
}
