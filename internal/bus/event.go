package bus

import "time"

// Event kinds published by the daemon stores.
const (
	KindStatusChanged = "session.status_changed"
	KindLoggedIn      = "session.logged_in"
	KindThemeChanged  = "settings.theme_changed"
	KindMessageAdded  = "message.appended"
	KindLikeToggled   = "feed.like_toggled"
)

// Event represents a domain event published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// NewEvent stamps an event with the current time.
func NewEvent(kind string, payload any) Event {
	return Event{Kind: kind, Timestamp: time.Now(), Payload: payload}
}
