// Package seed holds the static dataset the in-memory collections are
// populated from at startup.
package seed

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed seed.toml
var defaultData []byte

// Dataset is the decoded seed file.
type Dataset struct {
	Profile  Profile   `toml:"profile"`
	Chats    []Chat    `toml:"chats"`
	Messages []Message `toml:"messages"`
	Posts    []Post    `toml:"posts"`
	Reels    []Reel    `toml:"reels"`
	News     []News    `toml:"news"`
	Services []Service `toml:"services"`
	Ads      []Ad      `toml:"ads"`
}

type Profile struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	Handle    string `toml:"handle"`
	Avatar    string `toml:"avatar"`
	Bio       string `toml:"bio"`
	Posts     int    `toml:"posts"`
	Followers int    `toml:"followers"`
	Following int    `toml:"following"`
}

type Chat struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Avatar      string `toml:"avatar"`
	LastMessage string `toml:"last_message"`
	Timestamp   string `toml:"timestamp"`
	Unread      int    `toml:"unread"`
	Online      bool   `toml:"online"`
}

// Message rows appear in the file oldest first within each chat.
type Message struct {
	ID        string `toml:"id"`
	ChatID    string `toml:"chat_id"`
	Text      string `toml:"text"`
	Timestamp string `toml:"timestamp"`
	Outbound  bool   `toml:"outbound"`
}

type Post struct {
	ID        string `toml:"id"`
	Username  string `toml:"username"`
	Avatar    string `toml:"avatar"`
	Image     string `toml:"image"`
	Caption   string `toml:"caption"`
	Likes     int    `toml:"likes"`
	Comments  int    `toml:"comments"`
	Liked     bool   `toml:"liked"`
	Timestamp string `toml:"timestamp"`
}

type Reel struct {
	ID        string `toml:"id"`
	Username  string `toml:"username"`
	Avatar    string `toml:"avatar"`
	Thumbnail string `toml:"thumbnail"`
	Caption   string `toml:"caption"`
	Likes     int    `toml:"likes"`
	Comments  int    `toml:"comments"`
	Shares    int    `toml:"shares"`
	Liked     bool   `toml:"liked"`
	Video     bool   `toml:"video"`
}

type News struct {
	ID        string `toml:"id"`
	Title     string `toml:"title"`
	Summary   string `toml:"summary"`
	Image     string `toml:"image"`
	Timestamp string `toml:"timestamp"`
	Category  string `toml:"category"`
}

type Service struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Icon        string `toml:"icon"`
	Color       string `toml:"color"`
	Description string `toml:"description"`
}

type Ad struct {
	ID       string `toml:"id"`
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Image    string `toml:"image"`
	Color    string `toml:"color"`
}

var loadDefault = sync.OnceValues(func() (*Dataset, error) {
	return Parse(defaultData)
})

// Default returns the embedded dataset. Callers must not mutate it.
func Default() (*Dataset, error) {
	return loadDefault()
}

// Parse decodes and validates a seed file.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if _, err := toml.Decode(string(data), &ds); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	chats := make(map[string]bool, len(ds.Chats))
	for _, c := range ds.Chats {
		if c.ID == "" {
			return fmt.Errorf("seed: chat with empty id")
		}
		if chats[c.ID] {
			return fmt.Errorf("seed: duplicate chat id %q", c.ID)
		}
		if c.Unread < 0 {
			return fmt.Errorf("seed: chat %q has negative unread count", c.ID)
		}
		chats[c.ID] = true
	}

	msgIDs := make(map[[2]string]bool, len(ds.Messages))
	for _, m := range ds.Messages {
		if !chats[m.ChatID] {
			return fmt.Errorf("seed: message %q references unknown chat %q", m.ID, m.ChatID)
		}
		key := [2]string{m.ChatID, m.ID}
		if msgIDs[key] {
			return fmt.Errorf("seed: duplicate message id %q in chat %q", m.ID, m.ChatID)
		}
		msgIDs[key] = true
	}

	// Posts and reels share one like-toggle namespace.
	likeable := make(map[string]bool, len(ds.Posts)+len(ds.Reels))
	check := func(id string, likes int, liked bool) error {
		if id == "" {
			return fmt.Errorf("seed: feed item with empty id")
		}
		if likeable[id] {
			return fmt.Errorf("seed: duplicate feed item id %q", id)
		}
		if likes < 0 {
			return fmt.Errorf("seed: feed item %q has negative like count", id)
		}
		if liked && likes == 0 {
			return fmt.Errorf("seed: feed item %q is liked with zero like count", id)
		}
		likeable[id] = true
		return nil
	}
	for _, p := range ds.Posts {
		if err := check(p.ID, p.Likes, p.Liked); err != nil {
			return err
		}
	}
	for _, r := range ds.Reels {
		if err := check(r.ID, r.Likes, r.Liked); err != nil {
			return err
		}
	}
	return nil
}
