package domain

import "time"

// User represents a bot user
type User struct {
	ID          int64     `db:"id"`
	ExternalID  int64     `db:"external_id"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}
