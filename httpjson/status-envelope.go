package httpjson

import (
	"encoding/json"
	"fmt"
	"io"
)

// StatusEnvelope is the JSON body a couple of LIST endpoints answer with
// instead of HTML. A false status is an explicit business-rule failure,
// not a transport error.
type StatusEnvelope struct {
	Status bool `json:"status"`
}

// DecodeStatus reads a {"status": bool} envelope from r. A body that is
// not valid JSON or lacks the status field is a shape mismatch and is
// returned as an error.
func DecodeStatus(r io.Reader) (bool, error) {
	var envelope struct {
		Status *bool `json:"status"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return false, fmt.Errorf("decoding status envelope: %w", err)
	}
	if envelope.Status == nil {
		return false, fmt.Errorf("status envelope has no status field")
	}
	return *envelope.Status, nil
}
