// Package directory holds the seed-ordered list of conversation summaries.
package directory

import (
	"slices"

	"github.com/matheus3301/wave/internal/apperr"
	"github.com/matheus3301/wave/internal/seed"
)

// Conversation is a summary row of the chat list.
type Conversation struct {
	ID                   string `json:"id"`
	DisplayName          string `json:"display_name"`
	AvatarRef            string `json:"avatar_ref"`
	LastMessagePreview   string `json:"last_message_preview"`
	LastMessageTimestamp string `json:"last_message_timestamp"`
	UnreadCount          int    `json:"unread_count"`
	IsOnline             bool   `json:"is_online"`
}

// Directory is read-only after construction. Sending a message does not
// reorder it and opening a conversation does not clear its unread count.
type Directory struct {
	convs []Conversation
	index map[string]int
}

// New builds a directory from seed chats, keeping their order.
func New(chats []seed.Chat) *Directory {
	d := &Directory{
		convs: make([]Conversation, 0, len(chats)),
		index: make(map[string]int, len(chats)),
	}
	for _, c := range chats {
		d.index[c.ID] = len(d.convs)
		d.convs = append(d.convs, Conversation{
			ID:                   c.ID,
			DisplayName:          c.Name,
			AvatarRef:            c.Avatar,
			LastMessagePreview:   c.LastMessage,
			LastMessageTimestamp: c.Timestamp,
			UnreadCount:          c.Unread,
			IsOnline:             c.Online,
		})
	}
	return d
}

// List returns a copy of every conversation in seed order.
func (d *Directory) List() []Conversation {
	return slices.Clone(d.convs)
}

// Get returns the conversation with the given id.
func (d *Directory) Get(id string) (Conversation, error) {
	i, ok := d.index[id]
	if !ok {
		return Conversation{}, apperr.NotFound("conversation %q not found", id)
	}
	return d.convs[i], nil
}

// Has reports whether id names a known conversation.
func (d *Directory) Has(id string) bool {
	_, ok := d.index[id]
	return ok
}

// First returns the first conversation. "New chat" opens it until a real
// creation flow exists.
func (d *Directory) First() (Conversation, error) {
	if len(d.convs) == 0 {
		return Conversation{}, apperr.NotFound("no conversations")
	}
	return d.convs[0], nil
}

// Len returns the number of conversations.
func (d *Directory) Len() int { return len(d.convs) }
