package handler

import (
	"context"

	"englishcard/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Dialog turns chat events into responses
type Dialog interface {
	Handle(ctx context.Context, ev dialog.Event) dialog.Response
}

// Handler adapts Telegram updates to dialog events and renders the responses
type Handler struct {
	bot    *tele.Bot
	dialog Dialog
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, d Dialog, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		dialog: d,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cancel", h.handleCancel)

	// Reply menu, matched by button text
	h.bot.Handle(&btnQuiz, h.handleBeginQuiz)
	h.bot.Handle(&btnAddWord, h.handleBeginAddWord)
	h.bot.Handle(&btnDeleteWord, h.handleBeginDeleteWord)

	// Inline buttons
	h.bot.Handle(&btnAnswer, h.handleAnswer)
	h.bot.Handle(&btnDelete, h.handleDeleteSelection)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Buttons from older deployments or unknown payloads
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

const (
	uniqueAnswer = "answer"
	uniqueDelete = "delete"

	labelQuiz       = "Начать тренировку"
	labelAddWord    = "➕ Добавить слово"
	labelDeleteWord = "🗑 Удалить слово"
)

// Buttons. Reply buttons are routed by their text, inline ones by Unique.
var (
	btnQuiz       = tele.Btn{Text: labelQuiz}
	btnAddWord    = tele.Btn{Text: labelAddWord}
	btnDeleteWord = tele.Btn{Text: labelDeleteWord}

	btnAnswer = tele.Btn{Unique: uniqueAnswer}
	btnDelete = tele.Btn{Unique: uniqueDelete}
)

// mainMenuMarkup returns the main reply keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(btnQuiz),
		menu.Row(btnAddWord, btnDeleteWord),
	)
	return menu
}
