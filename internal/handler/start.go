package handler

import (
	"englishcard/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	if sender := c.Sender(); sender != nil {
		h.logger.Info("User started bot",
			zap.Int64("user_id", sender.ID),
			zap.String("username", sender.Username),
		)
	}
	return h.dispatch(c, dialog.EventStart, nil)
}

// handleCancel handles /cancel command
func (h *Handler) handleCancel(c tele.Context) error {
	return h.dispatch(c, dialog.EventCancel, nil)
}

func (h *Handler) handleBeginQuiz(c tele.Context) error {
	return h.dispatch(c, dialog.EventBeginQuiz, nil)
}

func (h *Handler) handleBeginAddWord(c tele.Context) error {
	return h.dispatch(c, dialog.EventBeginAddWord, nil)
}

func (h *Handler) handleBeginDeleteWord(c tele.Context) error {
	return h.dispatch(c, dialog.EventBeginDeleteWord, nil)
}
