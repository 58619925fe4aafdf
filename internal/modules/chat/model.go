// README: Chat history record and domain errors.
package chat

import (
	"errors"
	"time"
)

// ErrEmptyMessage is returned for requests without a message body; these are
// caller errors and are never persisted as pipeline runs.
var ErrEmptyMessage = errors.New("no message provided")

// Record is one persisted chat exchange. Records are append-only and are
// removed only when their owning user is deleted.
type Record struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
