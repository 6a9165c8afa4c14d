package testutil

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"englishcard/internal/domain"
	"englishcard/internal/repository"
)

// MemoryUserRepository is an in-memory UserRepository
type MemoryUserRepository struct {
	mu     sync.Mutex
	byExt  map[int64]*domain.User
	nextID int64

	// Err, when set, is returned by every call
	Err error
}

// NewMemoryUserRepository creates an empty user store
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byExt: make(map[int64]*domain.User)}
}

func (r *MemoryUserRepository) GetOrCreate(_ context.Context, externalID int64, displayName string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return 0, r.Err
	}
	if u, ok := r.byExt[externalID]; ok {
		return u.ID, nil
	}
	r.nextID++
	r.byExt[externalID] = &domain.User{
		ID:          r.nextID,
		ExternalID:  externalID,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	return r.nextID, nil
}

// Count returns the number of stored users
func (r *MemoryUserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byExt)
}

// MemoryWordRepository is an in-memory WordRepository applying the same
// "common or owned" visibility rule as the SQL store.
type MemoryWordRepository struct {
	mu     sync.Mutex
	words  map[int64]domain.Word
	nextID int64

	// Err, when set, is returned by every call
	Err error
}

// NewMemoryWordRepository creates an empty word store
func NewMemoryWordRepository() *MemoryWordRepository {
	return &MemoryWordRepository{words: make(map[int64]domain.Word)}
}

// AddCommon inserts a shared word and returns its id
func (r *MemoryWordRepository) AddCommon(source, target string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(domain.Word{Source: source, Target: target, Common: true})
}

func (r *MemoryWordRepository) insert(w domain.Word) int64 {
	r.nextID++
	w.ID = r.nextID
	r.words[w.ID] = w
	return w.ID
}

// Get returns a stored word by id
func (r *MemoryWordRepository) Get(id int64) (domain.Word, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.words[id]
	return w, ok
}

func (r *MemoryWordRepository) AddPersonal(_ context.Context, userID int64, source, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	owner := userID
	r.insert(domain.Word{Source: source, Target: target, OwnerID: &owner})
	return nil
}

func (r *MemoryWordRepository) GetUserWords(_ context.Context, userID int64) ([]domain.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	var out []domain.Word
	for _, w := range r.sorted() {
		if !w.Common && w.IsVisibleTo(userID) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *MemoryWordRepository) DeleteByID(_ context.Context, wordID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return false, r.Err
	}
	w, ok := r.words[wordID]
	if !ok || w.OwnerID == nil || *w.OwnerID != userID {
		return false, nil
	}
	delete(r.words, wordID)
	return true, nil
}

func (r *MemoryWordRepository) GetRandomForQuiz(_ context.Context, userID int64) (*domain.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	visible := r.visible(userID)
	if len(visible) == 0 {
		return nil, nil
	}
	w := visible[rand.Intn(len(visible))]
	return &w, nil
}

func (r *MemoryWordRepository) GetWrongOptions(_ context.Context, correctTarget string, userID int64, limit int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	seen := make(map[string]struct{})
	var candidates []string
	for _, w := range r.visible(userID) {
		if w.Target == correctTarget {
			continue
		}
		if _, dup := seen[w.Target]; dup {
			continue
		}
		seen[w.Target] = struct{}{}
		candidates = append(candidates, w.Target)
	}
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (r *MemoryWordRepository) SeedCommon(_ context.Context, pairs []domain.WordPair) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return 0, r.Err
	}
	for _, w := range r.words {
		if w.Common {
			return 0, nil
		}
	}
	for _, p := range pairs {
		r.insert(domain.Word{Source: p.Source, Target: p.Target, Common: true})
	}
	return len(pairs), nil
}

func (r *MemoryWordRepository) visible(userID int64) []domain.Word {
	var out []domain.Word
	for _, w := range r.sorted() {
		if w.IsVisibleTo(userID) {
			out = append(out, w)
		}
	}
	return out
}

func (r *MemoryWordRepository) sorted() []domain.Word {
	out := make([]domain.Word, 0, len(r.words))
	for _, w := range r.words {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var (
	_ repository.UserRepository = (*MemoryUserRepository)(nil)
	_ repository.WordRepository = (*MemoryWordRepository)(nil)
)
