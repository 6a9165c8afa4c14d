package dialog

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"englishcard/internal/domain"
	"englishcard/internal/logger"
	"englishcard/internal/state"

	"go.uber.org/zap"
)

// Users resolves platform identities to internal user ids
type Users interface {
	GetOrCreateUser(ctx context.Context, externalID int64, displayName string) (int64, error)
}

// Words is the personal word store
type Words interface {
	AddPersonalWord(ctx context.Context, userID int64, source, target string) error
	GetUserWords(ctx context.Context, userID int64) ([]domain.Word, error)
	DeleteWord(ctx context.Context, wordID, userID int64) (bool, error)
}

// Quiz generates questions
type Quiz interface {
	GenerateQuestion(ctx context.Context, userID int64) (*domain.Question, error)
}

// Controller drives the per-chat dialogs
type Controller struct {
	users  Users
	words  Words
	quiz   Quiz
	states state.Store
	logger *zap.Logger

	// One event at a time per chat; chats share a fixed set of stripes
	chatLocks [chatLockStripes]sync.Mutex
}

const chatLockStripes = 64

// NewController creates a new dialog controller
func NewController(users Users, words Words, quiz Quiz, states state.Store, log *zap.Logger) *Controller {
	return &Controller{
		users:  users,
		words:  words,
		quiz:   quiz,
		states: states,
		logger: log,
	}
}

// Handle processes one event and always returns something to show the user
func (c *Controller) Handle(ctx context.Context, ev Event) Response {
	lock := c.chatLock(ev.ChatID)
	lock.Lock()
	defer lock.Unlock()

	switch ev.Kind {
	case EventStart:
		return c.handleStart(ctx, ev)
	case EventBeginQuiz:
		return c.handleBeginQuiz(ctx, ev)
	case EventAnswer:
		return c.handleAnswer(ctx, ev)
	case EventBeginAddWord:
		c.states.SetAddWordStep(ev.ChatID, state.AwaitingSource, "")
		return Response{Text: msgAskSource}
	case EventBeginDeleteWord:
		return c.handleBeginDelete(ctx, ev)
	case EventDeleteSelection:
		return c.handleDeleteSelection(ctx, ev)
	case EventText:
		return c.handleText(ctx, ev)
	case EventCancel:
		c.states.Clear(ev.ChatID)
		return Response{Text: msgCancelled, Menu: true}
	}

	c.log(ctx).Warn("Unhandled event kind",
		zap.Int("kind", int(ev.Kind)),
		zap.Int64("chat_id", ev.ChatID),
	)
	return Response{Text: msgUseMenu, Menu: true}
}

func (c *Controller) chatLock(chatID int64) *sync.Mutex {
	return &c.chatLocks[uint64(chatID)%chatLockStripes]
}

// log returns the controller logger tagged with the request id of ctx
func (c *Controller) log(ctx context.Context) *zap.Logger {
	return logger.FromContext(ctx, c.logger)
}

func (c *Controller) userID(ctx context.Context, s Sender) (int64, error) {
	return c.users.GetOrCreateUser(ctx, s.ID, s.Username)
}

// handleStart registers the user and shows the menu.
// A registration failure still greets; the next data operation reports the error.
func (c *Controller) handleStart(ctx context.Context, ev Event) Response {
	if _, err := c.userID(ctx, ev.Sender); err != nil {
		c.log(ctx).Error("Failed to register user",
			zap.Error(err),
			zap.Int64("external_id", ev.Sender.ID),
		)
	}

	c.states.Clear(ev.ChatID)

	name := strings.TrimSpace(ev.Sender.FirstName)
	if name == "" {
		name = defaultName
	}
	return Response{Text: fmt.Sprintf(msgGreeting, name), Menu: true}
}

func (c *Controller) handleBeginQuiz(ctx context.Context, ev Event) Response {
	userID, err := c.userID(ctx, ev.Sender)
	if err != nil {
		c.log(ctx).Error("Failed to resolve user", zap.Error(err), zap.Int64("external_id", ev.Sender.ID))
		return Response{Text: msgInternalError}
	}

	q, err := c.quiz.GenerateQuestion(ctx, userID)
	if err != nil {
		c.log(ctx).Error("Failed to generate question", zap.Error(err), zap.Int64("user_id", userID))
		return Response{Text: msgInternalError}
	}
	if q == nil {
		return Response{Text: msgNoWords}
	}

	c.states.SetPendingQuiz(ev.ChatID, q.WordID, q.Answer)

	options := make([]Option, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, Option{
			Label:  opt,
			Action: ActionAnswer,
			WordID: q.WordID,
			Value:  opt,
		})
	}

	c.log(ctx).Debug("Question posed",
		zap.Int64("chat_id", ev.ChatID),
		zap.Int64("user_id", userID),
		zap.Int64("word_id", q.WordID),
	)

	return Response{
		Text:    fmt.Sprintf(msgQuestion, html.EscapeString(q.Prompt)),
		HTML:    true,
		Options: options,
	}
}

// handleAnswer checks a selected option against the pending question.
// Answers are single-shot: the pending question is cleared either way.
func (c *Controller) handleAnswer(ctx context.Context, ev Event) Response {
	pending, ok := c.states.Get(ev.ChatID).(domain.AwaitingAnswer)
	if !ok || (ev.WordID != 0 && ev.WordID != pending.WordID) {
		c.log(ctx).Info("Expired answer",
			zap.Int64("chat_id", ev.ChatID),
			zap.Int64("word_id", ev.WordID),
		)
		return Response{Notice: msgExpired}
	}

	c.states.Clear(ev.ChatID)

	answer := html.EscapeString(pending.Answer)
	if ev.Text == pending.Answer {
		return Response{
			Text:   fmt.Sprintf(msgCorrect, answer),
			HTML:   true,
			Edit:   true,
			Notice: msgCorrectNotice,
		}
	}
	return Response{
		Text:   fmt.Sprintf(msgWrong, answer),
		HTML:   true,
		Edit:   true,
		Notice: msgWrongNotice,
	}
}

// handleText routes free text purely by the chat's state:
// mid add-word dialog, any text is taken as the next step.
func (c *Controller) handleText(ctx context.Context, ev Event) Response {
	text := singleLine(ev.Text)

	switch st := c.states.Get(ev.ChatID).(type) {
	case domain.AddingSource:
		if text == "" {
			return Response{Text: msgAskSource}
		}
		c.states.SetAddWordStep(ev.ChatID, state.AwaitingTarget, text)
		return Response{Text: fmt.Sprintf(msgAskTarget, text)}

	case domain.AddingTarget:
		// No retry of this step: the dialog ends whatever the outcome
		c.states.Clear(ev.ChatID)
		return c.saveWord(ctx, ev, st.Source, text)

	default:
		return Response{Text: msgUseMenu, Menu: true}
	}
}

// singleLine trims text and folds line breaks into spaces; words are
// shown on buttons, which hold a single line.
func singleLine(text string) string {
	lines := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

func (c *Controller) saveWord(ctx context.Context, ev Event, source, target string) Response {
	userID, err := c.userID(ctx, ev.Sender)
	if err != nil {
		c.log(ctx).Error("Failed to resolve user", zap.Error(err), zap.Int64("external_id", ev.Sender.ID))
		return Response{Text: msgSaveFailed}
	}

	if err := c.words.AddPersonalWord(ctx, userID, source, target); err != nil {
		if errors.Is(err, domain.ErrInvalidWord) {
			c.log(ctx).Info("Rejected empty word", zap.Int64("user_id", userID))
		} else {
			c.log(ctx).Error("Failed to save word pair", zap.Error(err), zap.Int64("user_id", userID))
		}
		return Response{Text: msgSaveFailed}
	}

	c.log(ctx).Info("Word pair saved",
		zap.Int64("user_id", userID),
		zap.String("source", source),
		zap.String("target", target),
	)
	return Response{Text: fmt.Sprintf(msgWordAdded, source, target)}
}

func (c *Controller) handleBeginDelete(ctx context.Context, ev Event) Response {
	userID, err := c.userID(ctx, ev.Sender)
	if err != nil {
		c.log(ctx).Error("Failed to resolve user", zap.Error(err), zap.Int64("external_id", ev.Sender.ID))
		return Response{Text: msgInternalError}
	}

	words, err := c.words.GetUserWords(ctx, userID)
	if err != nil {
		c.log(ctx).Error("Failed to list user words", zap.Error(err), zap.Int64("user_id", userID))
		return Response{Text: msgInternalError}
	}
	if len(words) == 0 {
		return Response{Text: msgNothingToDelete}
	}

	options := make([]Option, 0, len(words))
	for _, w := range words {
		options = append(options, Option{
			Label:  fmt.Sprintf(msgDeleteOption, w.Source, w.Target),
			Action: ActionDelete,
			WordID: w.ID,
		})
	}
	return Response{Text: msgChooseDelete, Options: options}
}

// handleDeleteSelection deletes a word scoped to the requesting user.
// Foreign and missing words get the same answer as any other failure.
func (c *Controller) handleDeleteSelection(ctx context.Context, ev Event) Response {
	failed := Response{Notice: msgDeleteFailed, Alert: true}

	if ev.WordID <= 0 {
		return failed
	}

	userID, err := c.userID(ctx, ev.Sender)
	if err != nil {
		c.log(ctx).Error("Failed to resolve user", zap.Error(err), zap.Int64("external_id", ev.Sender.ID))
		return failed
	}

	deleted, err := c.words.DeleteWord(ctx, ev.WordID, userID)
	if err != nil {
		c.log(ctx).Error("Failed to delete word",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("word_id", ev.WordID),
		)
		return failed
	}
	if !deleted {
		c.log(ctx).Info("Nothing to delete",
			zap.Int64("user_id", userID),
			zap.Int64("word_id", ev.WordID),
		)
		return failed
	}

	return Response{Text: msgDeleted, Edit: true, Notice: msgDeletedNotice}
}
