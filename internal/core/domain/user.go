package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the UTC ISO-8601 layout used for createdAt fields.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Pseudo    string    `json:"pseudo"`
	CreatedAt string    `json:"createdAt"`
}

// FormatTimestamp renders t in UTC with a trailing Z.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
