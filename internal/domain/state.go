package domain

// ConversationState is the per-chat dialog state.
// Exactly one of Idle, AwaitingAnswer, AddingSource or AddingTarget.
type ConversationState interface {
	stateName() string
}

// Idle means no dialog is in progress
type Idle struct{}

// AwaitingAnswer holds the pending quiz question
type AwaitingAnswer struct {
	WordID int64
	Answer string
}

// AddingSource waits for the Russian text of a new word
type AddingSource struct{}

// AddingTarget waits for the English text; Source is what was entered so far
type AddingTarget struct {
	Source string
}

func (Idle) stateName() string           { return "idle" }
func (AwaitingAnswer) stateName() string { return "awaiting_answer" }
func (AddingSource) stateName() string   { return "adding_source" }
func (AddingTarget) stateName() string   { return "adding_target" }

// StateName returns a stable name for logging
func StateName(s ConversationState) string {
	if s == nil {
		return Idle{}.stateName()
	}
	return s.stateName()
}
