// Package message defines the sluice control protocol.
//
// All messages are newline-delimited JSON. The CLI tools (bind, unbind,
// paste, status) speak this protocol to a running daemon over the local IPC
// socket or, with a token, over TCP. Each message is exactly one line:
// <json>\n
package message

import (
	"encoding/json"
	"fmt"
	"time"
)

// Type identifies the kind of message.
type Type string

const (
	TypeAuth           Type = "AUTH"
	TypeBind           Type = "BIND"
	TypeUnbind         Type = "UNBIND"
	TypePaste          Type = "PASTE"
	TypeStatus         Type = "STATUS"
	TypeStatusResponse Type = "STATUS_RESPONSE"
	TypeResult         Type = "RESULT"
	TypePing           Type = "PING"
	TypePong           Type = "PONG"
	TypeError          Type = "ERROR"
)

// Binding describes one active destination binding, used in STATUS responses.
type Binding struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Resource string    `json:"resource"`
	BoundAt  time.Time `json:"bound_at"`
	Active   bool      `json:"active"`
}

// Panel describes a configured AI panel and whether its commands resolve on
// this host.
type Panel struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// Message is the top-level wire envelope.
type Message struct {
	// Always present
	Type   Type   `json:"type"`
	Source string `json:"source,omitempty"`

	// AUTH — token is base64-encoded
	Payload string `json:"payload,omitempty"`

	// BIND / UNBIND / PASTE — which destination kind the request targets.
	// Empty Kind on PASTE means the currently active binding.
	Kind string `json:"kind,omitempty"`

	// BIND — resource selectors: a terminal pane id or an editor document URI
	Pane   string `json:"pane,omitempty"`
	DocURI string `json:"doc_uri,omitempty"`

	// PASTE — the text to deliver; Link marks locator-link deliveries
	Text string `json:"text,omitempty"`
	Link bool   `json:"link,omitempty"`

	// RESULT
	OK     bool   `json:"ok,omitempty"`
	Detail string `json:"detail,omitempty"`

	// STATUS_RESPONSE
	Bindings []Binding `json:"bindings,omitempty"`
	Panels   []Panel   `json:"panels,omitempty"`

	// ERROR
	Error string `json:"error,omitempty"`
}

// Encode serialises the message to JSON without a trailing newline.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode deserialises a message from raw JSON bytes.
func Decode(b []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("message decode: %w", err)
	}
	return &m, nil
}
