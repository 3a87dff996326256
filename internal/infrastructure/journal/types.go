package journal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded mutation of the payment store.
type Entry struct {
	ID        string          `json:"id"`
	PaymentID string          `json:"payment_id"`
	ClientID  string          `json:"client_id"`
	Operation string          `json:"operation"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`

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
