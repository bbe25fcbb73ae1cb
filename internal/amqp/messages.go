package amqp

import (
	"encoding/json"
	"time"
)

// RecordSyncMessage tells a mirror worker that one funding record changed.
// It carries only the fingerprint; the worker fetches the full record from
// the JSON store.
type RecordSyncMessage struct {
	Fingerprint string    `json:"fingerprint"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewRecordSyncMessage creates a sync message for the given fingerprint.
func NewRecordSyncMessage(fingerprint string) *RecordSyncMessage {
	return &RecordSyncMessage{
		Fingerprint: fingerprint,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *RecordSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordSyncMessageFromJSON creates a message from JSON bytes
func RecordSyncMessageFromJSON(data []byte) (*RecordSyncMessage, error) {
	var msg RecordSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
