// Package messagelog keeps the per-conversation message history. Each log is
// append-only and stored oldest first; the last entry is always the newest.
package messagelog

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/matheus3301/wave/internal/apperr"
	"github.com/matheus3301/wave/internal/bus"
	"github.com/matheus3301/wave/internal/seed"
)

// MaxTextLength is the longest accepted outbound message, in characters.
const MaxTextLength = 1000

// JustNow is the display timestamp given to locally authored messages.
const JustNow = "Just now"

// Message is one entry of a conversation log.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text"`
	Timestamp      string `json:"timestamp"`
	IsOutbound     bool   `json:"is_outbound"`
}

// Conversations reports which conversation ids exist.
type Conversations interface {
	Has(id string) bool
}

// Log holds every conversation's messages.
type Log struct {
	mu    sync.RWMutex
	logs  map[string][]Message
	convs Conversations
	bus   *bus.Bus
	newID func() string
}

// New builds a log from seed messages, which must already be oldest first
// within each conversation. convs may be nil, in which case any id is accepted.
func New(msgs []seed.Message, convs Conversations, b *bus.Bus) *Log {
	l := &Log{
		logs:  make(map[string][]Message),
		convs: convs,
		bus:   b,
		newID: uuid.NewString,
	}
	for _, m := range msgs {
		l.logs[m.ChatID] = append(l.logs[m.ChatID], Message{
			ID:             m.ID,
			ConversationID: m.ChatID,
			Text:           m.Text,
			Timestamp:      m.Timestamp,
			IsOutbound:     m.Outbound,
		})
	}
	return l
}

// GetLog returns a copy of the conversation's messages, oldest first. A known
// conversation without messages yields an empty slice.
func (l *Log) GetLog(conversationID string) ([]Message, error) {
	if err := l.checkConversation(conversationID); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := slices.Clone(l.logs[conversationID])
	if out == nil {
		out = []Message{}
	}
	return out, nil
}

// Len returns the number of messages in a conversation.
func (l *Log) Len(conversationID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.logs[conversationID])
}

// Append validates text, stores it as the newest outbound message and returns
// it. The message is visible to readers as soon as Append returns.
func (l *Log) Append(conversationID, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, apperr.Validation("message text is empty")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return Message{}, apperr.Validation("message text is %d characters, limit is %d", n, MaxTextLength)
	}
	if err := l.checkConversation(conversationID); err != nil {
		return Message{}, err
	}

	msg := Message{
		ID:             l.newID(),
		ConversationID: conversationID,
		Text:           text,
		Timestamp:      JustNow,
		IsOutbound:     true,
	}

	l.mu.Lock()
	l.logs[conversationID] = append(l.logs[conversationID], msg)
	l.mu.Unlock()

	l.bus.Publish(bus.NewEvent(bus.KindMessageAdded, msg))
	return msg, nil
}

// Reversed returns msgs newest first, for views that render from the bottom.
func Reversed(msgs []Message) []Message {
	out := slices.Clone(msgs)
	slices.Reverse(out)
	return out
}

func (l *Log) checkConversation(id string) error {
	if l.convs != nil && !l.convs.Has(id) {
		return apperr.NotFound("conversation %q not found", id)
	}
	return nil
}
