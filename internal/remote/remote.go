// Package remote declares the collaborators a networked backend would plug
// into: inbound message channels, attachment uploads and outbound delivery.
// Only the no-op implementation exists.
package remote

import (
	"context"
	"io"

	"github.com/matheus3301/wave/internal/messagelog"
)

// Channel delivers inbound messages for a single conversation.
type Channel interface {
	Subscribe(ctx context.Context, conversationID string, fn func(messagelog.Message)) (unsubscribe func(), err error)
}

// Uploader stores an attachment and returns a reference to it.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (ref string, err error)
}

// Publisher delivers a locally appended message.
type Publisher interface {
	Publish(ctx context.Context, msg messagelog.Message) error
}

// Nop satisfies Channel, Uploader and Publisher and does nothing.
type Nop struct{}

func (Nop) Subscribe(context.Context, string, func(messagelog.Message)) (func(), error) {
	return func() {}, nil
}

func (Nop) Upload(_ context.Context, name string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return name, nil
}

func (Nop) Publish(context.Context, messagelog.Message) error { return nil }
