package transport

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response wrapper used on every endpoint. Status
// repeats the HTTP status code inside the body for downstream consumers
// that only inspect the payload.
type Envelope struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
}

// NewDone returns the standard success envelope.
func NewDone(data interface{}) Envelope {
	return Envelope{
		Message: "Done",
		Status:  http.StatusOK,
		Data:    data,
	}
}

// NewFailure returns a failure envelope with a nil payload.
func NewFailure(message string, status int) Envelope {
	return Envelope{
		Message: message,
		Status:  status,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
