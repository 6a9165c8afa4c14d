package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"englishcard/internal/dialog"
	"englishcard/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Telegram rejects callback data longer than this many bytes
const maxCallbackData = 64

// Answer payload modes: the option text itself, or its position in the
// keyboard when the text does not fit into the callback data.
const (
	answerByText  = "t"
	answerByIndex = "i"
)

var errBadPayload = errors.New("malformed callback payload")

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// answerPayload encodes an answer option as "wordID|mode|value".
// telebot only routes single-line callback data, so multi-line options
// go by index like the ones that are too long.
func answerPayload(wordID int64, index int, value string) []string {
	id := strconv.FormatInt(wordID, 10)
	byText := []string{id, answerByText, value}
	if !strings.ContainsAny(value, "\r\n") &&
		len("\f"+uniqueAnswer+"|"+strings.Join(byText, "|")) <= maxCallbackData {
		return byText
	}
	return []string{id, answerByIndex, strconv.Itoa(index)}
}

// parseAnswerPayload splits an answer payload into its parts.
// The value is kept verbatim since it is compared with the stored answer.
func parseAnswerPayload(data string) (wordID int64, mode, value string, err error) {
	parts := strings.SplitN(data, "|", 3)
	if len(parts) != 3 {
		return 0, "", "", errBadPayload
	}

	wordID, err = parseWordID(parts[0])
	if err != nil {
		return 0, "", "", err
	}

	mode = cleanCallbackData(parts[1])
	switch mode {
	case answerByText:
	case answerByIndex:
		if _, err := strconv.Atoi(cleanCallbackData(parts[2])); err != nil {
			return 0, "", "", fmt.Errorf("%w: option index %q", errBadPayload, parts[2])
		}
	default:
		return 0, "", "", fmt.Errorf("%w: mode %q", errBadPayload, mode)
	}
	return wordID, mode, parts[2], nil
}

// parseWordID parses a positive word id
func parseWordID(data string) (int64, error) {
	id, err := strconv.ParseInt(cleanCallbackData(data), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: word id %q", errBadPayload, data)
	}
	return id, nil
}

// optionLabel returns the text of the n-th inline button of the message
func optionLabel(msg *tele.Message, n int) (string, bool) {
	if msg == nil || msg.ReplyMarkup == nil || n < 0 {
		return "", false
	}
	for _, row := range msg.ReplyMarkup.InlineKeyboard {
		if n < len(row) {
			return row[n].Text, true
		}
		n -= len(row)
	}
	return "", false
}

// optionsMarkup renders dialog options as one inline button per row
func optionsMarkup(options []dialog.Option) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(options))

	for i, opt := range options {
		var btn tele.Btn
		switch opt.Action {
		case dialog.ActionAnswer:
			btn = markup.Data(opt.Label, uniqueAnswer, answerPayload(opt.WordID, i, opt.Value)...)
		case dialog.ActionDelete:
			btn = markup.Data(opt.Label, uniqueDelete, strconv.FormatInt(opt.WordID, 10))
		default:
			continue
		}
		rows = append(rows, markup.Row(btn))
	}

	markup.Inline(rows...)
	return markup
}

// handleAnswer handles a press on a quiz option
func (h *Handler) handleAnswer(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	wordID, mode, value, err := parseAnswerPayload(callback.Data)
	if err != nil {
		h.logger.Warn("Bad answer payload",
			zap.Error(err),
			zap.String("data", callback.Data),
			zap.String("rid", middleware.RequestID(c)),
		)
		return c.Respond()
	}

	if mode == answerByIndex {
		index, _ := strconv.Atoi(cleanCallbackData(value))
		label, ok := optionLabel(callback.Message, index)
		if !ok {
			h.logger.Warn("Answer option not found in message",
				zap.Int("index", index),
				zap.String("rid", middleware.RequestID(c)),
			)
			return c.Respond()
		}
		value = label
	}

	return h.dispatch(c, dialog.EventAnswer, func(ev *dialog.Event) {
		ev.WordID = wordID
		ev.Text = value
	})
}

// handleDeleteSelection handles a press on a word in the delete list
func (h *Handler) handleDeleteSelection(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	// A bad id still goes through the dialog, which reports the failure
	wordID, err := parseWordID(callback.Data)
	if err != nil {
		h.logger.Warn("Bad delete payload",
			zap.Error(err),
			zap.String("data", callback.Data),
			zap.String("rid", middleware.RequestID(c)),
		)
	}

	return h.dispatch(c, dialog.EventDeleteSelection, func(ev *dialog.Event) {
		ev.WordID = wordID
	})
}

// handleCallback acknowledges callbacks no button handler claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", cleanCallbackData(callback.Data)),
		zap.String("unique", callback.Unique),
		zap.String("rid", middleware.RequestID(c)),
	)
	return c.Respond()
}

// isNotModified reports whether an edit failed only because the message
// already has the requested content, e.g. after a double tap.
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
