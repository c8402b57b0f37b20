// Package hostbridge implements host.EditorDirectory by talking to an editor
// host extension over a Unix socket. Requests and responses are
// newline-delimited JSON, one exchange per connection — the bridge is
// deliberately stateless so that every focus resolution sees the host's
// current window state, never a cached one.
package hostbridge

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.klb.dev/sluice/internal/host"
	"go.klb.dev/sluice/internal/wire"
)

const dialTimeout = 2 * time.Second

// Op names the bridge operations.
type Op string

const (
	OpVisibleEditors Op = "editors/visible"
	OpShowDocument   Op = "editors/show"
	OpInsertAtCursor Op = "editors/insert"
	OpActiveDocument Op = "editors/active"
)

// Request is one bridge call.
type Request struct {
	Op     Op     `json:"op"`
	DocURI string `json:"doc_uri,omitempty"`
	Column int    `json:"column,omitempty"`
	Text   string `json:"text,omitempty"`
}

// EditorRef mirrors host.EditorRef on the wire.
type EditorRef struct {
	DocURI string `json:"doc_uri"`
	Column int    `json:"column"`
}

// Response is the host's answer.
type Response struct {
	OK      bool        `json:"ok"`
	Error   string      `json:"error,omitempty"`
	Editors []EditorRef `json:"editors,omitempty"`
	Editor  *EditorRef  `json:"editor,omitempty"`
	DocURI  string      `json:"doc_uri,omitempty"`
	Applied bool        `json:"applied,omitempty"`
}

// Bridge dials the editor host socket per call.
type Bridge struct {
	socketPath string
	dial       func(ctx context.Context) (net.Conn, error)
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithDial overrides connection establishment, for tests.
func WithDial(fn func(ctx context.Context) (net.Conn, error)) Option {
	return func(b *Bridge) { b.dial = fn }
}

// New returns a Bridge for the given host socket path.
func New(socketPath string, opts ...Option) *Bridge {
	b := &Bridge{socketPath: socketPath}
	b.dial = func(ctx context.Context) (net.Conn, error) {
		d := net.Dialer{Timeout: dialTimeout}
		return d.DialContext(ctx, "unix", b.socketPath)
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var _ host.EditorDirectory = (*Bridge)(nil)

// call performs one request/response exchange.
func (b *Bridge) call(ctx context.Context, req Request) (Response, error) {
	conn, err := b.dial(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("host bridge dial: %w", err)
	}
	defer conn.Close()

	wc := wire.New(conn, nil)
	if err := wc.WriteJSON(req); err != nil {
		return Response{}, fmt.Errorf("host bridge write: %w", err)
	}
	var resp Response
	if err := wc.ReadJSON(&resp); err != nil {
		return Response{}, fmt.Errorf("host bridge read: %w", err)
	}
	if !resp.OK {
		return Response{}, fmt.Errorf("host bridge %s: %s", req.Op, resp.Error)
	}
	return resp, nil
}

// VisibleEditors implements host.EditorDirectory.
func (b *Bridge) VisibleEditors(ctx context.Context) ([]host.EditorRef, error) {
	resp, err := b.call(ctx, Request{Op: OpVisibleEditors})
	if err != nil {
		return nil, err
	}
	out := make([]host.EditorRef, 0, len(resp.Editors))
	for _, e := range resp.Editors {
		out = append(out, host.EditorRef{DocURI: e.DocURI, Column: e.Column})
	}
	return out, nil
}

// ShowDocument implements host.EditorDirectory.
func (b *Bridge) ShowDocument(ctx context.Context, uri string, column int) (host.EditorRef, error) {
	resp, err := b.call(ctx, Request{Op: OpShowDocument, DocURI: uri, Column: column})
	if err != nil {
		return host.EditorRef{}, err
	}
	if resp.Editor == nil {
		return host.EditorRef{}, fmt.Errorf("host bridge: show returned no editor")
	}
	return host.EditorRef{DocURI: resp.Editor.DocURI, Column: resp.Editor.Column}, nil
}

// InsertAtCursor implements host.EditorDirectory.
func (b *Bridge) InsertAtCursor(ctx context.Context, ed host.EditorRef, text string) (bool, error) {
	resp, err := b.call(ctx, Request{Op: OpInsertAtCursor, DocURI: ed.DocURI, Column: ed.Column, Text: text})
	if err != nil {
		return false, err
	}
	return resp.Applied, nil
}

// ActiveDocument implements host.EditorDirectory.
func (b *Bridge) ActiveDocument(ctx context.Context) (string, error) {
	resp, err := b.call(ctx, Request{Op: OpActiveDocument})
	if err != nil {
		return "", err
	}
	return resp.DocURI, nil
}
