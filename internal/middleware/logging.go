package middleware

import (
	"context"
	"time"

	"englishcard/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	ridKey     = "rid"
	contextKey = "request_ctx"
)

// Logging tags every update with a request id and logs its outcome
func Logging(log *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			rid := uuid.NewString()
			c.Set(ridKey, rid)
			c.Set(contextKey, logger.WithRequestID(context.Background(), rid))

			fields := []zap.Field{
				zap.String("rid", rid),
				zap.Int("update_id", c.Update().ID),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}
			if cb := c.Callback(); cb != nil {
				fields = append(fields, zap.String("cb_unique", cb.Unique))
			}

			start := time.Now()
			err := next(c)
			fields = append(fields, zap.Duration("duration", time.Since(start)))

			if err != nil {
				log.Warn("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			log.Debug("Update handled", fields...)
			return nil
		}
	}
}

// RequestID returns the id Logging assigned to the update, if any
func RequestID(c tele.Context) string {
	if c == nil {
		return ""
	}
	if rid, ok := c.Get(ridKey).(string); ok {
		return rid
	}
	return ""
}

// Context returns the request context stored by Logging,
// or a fresh background context when the middleware did not run.
func Context(c tele.Context) context.Context {
	if c == nil {
		return context.Background()
	}
	if ctx, ok := c.Get(contextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}
