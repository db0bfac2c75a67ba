package buffer

import (
	"time"

	"github.com/google/uuid"
)

// Entry is an order-index write that could not reach the primary store and
// should be retried once connectivity returns.
type Entry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	TaskID    string    `json:"task_id"`
	Index     int       `json:"index"`
	Retries   int       `json:"retries"`
	Timestamp time.Time `json:"timestamp"`

	bucketKey []byte
}

func (e *Entry) normalize() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
}
