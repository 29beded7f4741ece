package api

import (
	"github.com/matheus3301/wave/internal/directory"
	"github.com/matheus3301/wave/internal/feed"
	"github.com/matheus3301/wave/internal/messagelog"
	"github.com/matheus3301/wave/internal/settings"
)

// Empty is the request of every call that takes no arguments.
type Empty struct{}

type GetStatusResponse struct {
	Profile       string `json:"profile"`
	Status        string `json:"status"`
	Authenticated bool   `json:"authenticated"`
	Identifier    string `json:"identifier,omitempty"`
	Theme         string `json:"theme"`
	ChatCount     int    `json:"chat_count"`
	UptimeMs      int64  `json:"uptime_ms"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
}

type LoginResponse struct {
	Session settings.Session `json:"session"`
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SetThemeRequest struct {
	Theme string `json:"theme"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type ListChatsResponse struct {
	Chats []directory.Conversation `json:"chats"`
}

type GetChatRequest struct {
	ID string `json:"id"`
}

type ChatResponse struct {
	Chat directory.Conversation `json:"chat"`
}

type ListMessagesRequest struct {
	ConversationID string `json:"conversation_id"`
	// NewestFirst reverses the oldest-first log order.
	NewestFirst bool `json:"newest_first,omitempty"`
}

type ListMessagesResponse struct {
	Messages []messagelog.Message `json:"messages"`
}

type SendTextRequest struct {
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text"`
}

type SendTextResponse struct {
	Message messagelog.Message `json:"message"`
}

type WatchMessagesRequest struct {
	// ConversationID limits the stream to one conversation when set.
	ConversationID string `json:"conversation_id,omitempty"`
}

type MessageEvent struct {
	EventID          string             `json:"event_id"`
	OccurredAtUnixMs int64              `json:"occurred_at_unix_ms"`
	Kind             string             `json:"kind"`
	Message          messagelog.Message `json:"message"`
}

type ListPostsResponse struct {
	Posts []feed.Post `json:"posts"`
}

type ListReelsResponse struct {
	Reels []feed.Reel `json:"reels"`
}

type ListNewsResponse struct {
	News []feed.NewsItem `json:"news"`
}

type ListServicesRequest struct {
	Query string `json:"query,omitempty"`
}

type ListServicesResponse struct {
	Services []feed.Service `json:"services"`
}

type ListAdsResponse struct {
	Ads        []feed.Ad `json:"ads"`
	IntervalMs int64     `json:"interval_ms"`
}

type ToggleLikeRequest struct {
	ItemID string `json:"item_id"`
}

type ToggleLikeResponse struct {
	ItemID string         `json:"item_id"`
	Likes  feed.LikeState `json:"likes"`
}

type ProfileResponse struct {
	Profile feed.Profile `json:"profile"`
}
