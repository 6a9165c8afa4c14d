package domain

// Word represents a Russian-English word pair.
// A common word has no owner; a personal word always has one.
type Word struct {
	ID      int64  `db:"id"`
	Source  string `db:"source_text"`
	Target  string `db:"target_text"`
	Common  bool   `db:"is_common"`
	OwnerID *int64 `db:"owner_id"`
}

// IsVisibleTo reports whether the word may be shown to the given user
func (w Word) IsVisibleTo(userID int64) bool {
	if w.Common {
		return true
	}
	return w.OwnerID != nil && *w.OwnerID == userID
}

// WordPair is a simplified version for display and seeding
type WordPair struct {
	Source string
	Target string
}

// DefaultCommonWords is the pool every user sees from the start
var DefaultCommonWords = []WordPair{
	{"Мы", "We"}, {"Она", "She"}, {"Он", "He"}, {"Оно", "It"},
	{"Они", "They"}, {"Я", "I"}, {"Ты", "You"}, {"Кот", "Cat"},
	{"Дом", "House"}, {"Сон", "Dream"},
}
