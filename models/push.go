package models

// PushTypeCounter is the only push message type the client reacts to.
const PushTypeCounter = "counter"

// PushMessage is a server -> client frame delivered over the push channel.
//
//	{"type": "counter", "value": 7}
//
// Frames with any other Type are ignored.
type PushMessage struct {
	Type string `json:"type"`
	// Value is a pointer so a frame without "value" can be told apart from 0.
	Value *int64 `json:"value,omitempty"`
}

// IsCounter reports whether the message carries a counter update.
func (m PushMessage) IsCounter() bool {
	return m.Type == PushTypeCounter && m.Value != nil
}
