package handler

import (
	"englishcard/internal/dialog"

	tele "gopkg.in/telebot.v3"
)

// handleText handles free text; what it means depends on the chat's dialog
func (h *Handler) handleText(c tele.Context) error {
	return h.dispatch(c, dialog.EventText, func(ev *dialog.Event) {
		ev.Text = c.Text()
	})
}
