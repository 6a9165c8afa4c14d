package handler

import (
	"englishcard/internal/dialog"
	"englishcard/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// newEvent builds a dialog event from the update. Updates without a
// sender, such as channel posts, are not dialog events.
func newEvent(c tele.Context, kind dialog.EventKind) (dialog.Event, bool) {
	sender := c.Sender()
	if sender == nil {
		return dialog.Event{}, false
	}

	chatID := sender.ID
	if chat := c.Chat(); chat != nil {
		chatID = chat.ID
	}

	return dialog.Event{
		Kind:   kind,
		ChatID: chatID,
		Sender: dialog.Sender{
			ID:        sender.ID,
			Username:  sender.Username,
			FirstName: sender.FirstName,
		},
	}, true
}

// dispatch runs one event through the dialog and renders the result
func (h *Handler) dispatch(c tele.Context, kind dialog.EventKind, fill func(ev *dialog.Event)) error {
	ev, ok := newEvent(c, kind)
	if !ok {
		h.logger.Warn("Update without sender", zap.Stringer("kind", kind))
		if c.Callback() != nil {
			return c.Respond()
		}
		return nil
	}
	if fill != nil {
		fill(&ev)
	}

	h.logger.Debug("Dispatching event",
		zap.Stringer("kind", kind),
		zap.Int64("chat_id", ev.ChatID),
		zap.String("rid", middleware.RequestID(c)),
	)

	resp := h.dialog.Handle(middleware.Context(c), ev)
	if c.Callback() != nil {
		return h.renderCallback(c, resp)
	}
	return h.renderMessage(c, resp)
}

func sendOptions(resp dialog.Response, withMenu bool) []interface{} {
	var opts []interface{}
	switch {
	case len(resp.Options) > 0:
		opts = append(opts, optionsMarkup(resp.Options))
	case resp.Menu && withMenu:
		opts = append(opts, mainMenuMarkup())
	}
	if resp.HTML {
		opts = append(opts, tele.ModeHTML)
	}
	return opts
}

func (h *Handler) renderMessage(c tele.Context, resp dialog.Response) error {
	if resp.Text == "" {
		return nil
	}
	return c.Send(resp.Text, sendOptions(resp, true)...)
}

// renderCallback edits or sends the response text, then answers the
// callback with the notice so the client stops its progress indicator.
func (h *Handler) renderCallback(c tele.Context, resp dialog.Response) error {
	if resp.Text != "" {
		if resp.Edit {
			// Reply keyboards cannot be attached to edited messages
			if err := c.Edit(resp.Text, sendOptions(resp, false)...); err != nil && !isNotModified(err) {
				h.logger.Warn("Failed to edit message, sending new",
					zap.Error(err),
					zap.String("rid", middleware.RequestID(c)),
				)
				if err := c.Send(resp.Text, sendOptions(resp, true)...); err != nil {
					h.logger.Error("Failed to send message", zap.Error(err))
				}
			}
		} else if err := c.Send(resp.Text, sendOptions(resp, true)...); err != nil {
			h.logger.Error("Failed to send message", zap.Error(err))
		}
	}

	if resp.Notice == "" {
		return c.Respond()
	}
	return c.Respond(&tele.CallbackResponse{
		Text:      resp.Notice,
		ShowAlert: resp.Alert,
	})
}
