package dialog

// EventKind tags an inbound event. The platform boundary sets it once;
// the controller never inspects display text to decide what happened.
type EventKind int

const (
	EventStart EventKind = iota
	EventBeginQuiz
	EventAnswer
	EventBeginAddWord
	EventBeginDeleteWord
	EventDeleteSelection
	EventText
	EventCancel
)

var eventNames = map[EventKind]string{
	EventStart:           "start",
	EventBeginQuiz:       "begin_quiz",
	EventAnswer:          "answer",
	EventBeginAddWord:    "begin_add_word",
	EventBeginDeleteWord: "begin_delete_word",
	EventDeleteSelection: "delete_selection",
	EventText:            "text",
	EventCancel:          "cancel",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Sender is the chat-platform identity behind an event
type Sender struct {
	ID        int64
	Username  string
	FirstName string
}

// Event is a single inbound interaction.
// Text carries free text or the selected answer; WordID carries the
// question word of an answer or the word chosen for deletion.
type Event struct {
	Kind   EventKind
	ChatID int64
	Sender Sender
	Text   string
	WordID int64
}

// Action identifies what a selectable option does when chosen
type Action string

const (
	ActionAnswer Action = "answer"
	ActionDelete Action = "delete"
)

// Option is a selectable inline choice
type Option struct {
	Label  string
	Action Action
	WordID int64
	Value  string
}

// Response is what the platform should show for an event.
// Notice is a short acknowledgement of a button press; Edit asks to
// replace the message the button belonged to instead of sending a new one.
type Response struct {
	Text    string
	HTML    bool
	Edit    bool
	Notice  string
	Alert   bool
	Options []Option
	Menu    bool
}
