package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"englishcard/internal/domain"
)

// unavailable reports whether err means the database could not be reached in time
func unavailable(err error) bool {
	var netErr net.Error
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.As(err, &netErr)
}

// readError classifies a failed read; all of them surface as ErrStorageUnavailable
func readError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}

// writeError classifies a failed write
func writeError(op string, err error) error {
	if unavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageWriteFailed, err)
}
