package feed

import (
	"testing"
	"time"

	"github.com/matheus3301/wave/internal/apperr"
	"github.com/matheus3301/wave/internal/bus"
	"github.com/matheus3301/wave/internal/seed"
)

func testFeed(t *testing.T, b *bus.Bus) *Feed {
	t.Helper()
	ds, err := seed.Default()
	if err != nil {
		t.Fatal(err)
	}
	return New(ds, b)
}

func TestCollectionsKeepSeedOrder(t *testing.T) {
	f := testFeed(t, nil)

	posts := f.Posts()
	if len(posts) != 3 || posts[0].ID != "post-1" || posts[2].ID != "post-3" {
		t.Errorf("posts = %+v", posts)
	}
	reels := f.Reels()
	if len(reels) != 6 || reels[0].ID != "reel-1" || reels[5].ID != "reel-6" {
		t.Errorf("reels = %+v", reels)
	}
	if n := len(f.News()); n != 3 {
		t.Errorf("len(News) = %d, want 3", n)
	}
	services := f.Services()
	if len(services) != 8 || services[0].Name != "Wallet" || services[7].Name != "More" {
		t.Errorf("services = %+v", services)
	}
	if n := len(f.Ads()); n != 3 {
		t.Errorf("len(Ads) = %d, want 3", n)
	}
	if p := f.Profile(); p.Handle != "@alexthompson" {
		t.Errorf("profile handle = %q", p.Handle)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	f := testFeed(t, nil)
	posts := f.Posts()
	posts[0].LikeCount = -100
	posts[0].Caption = "changed"

	again := f.Posts()
	if again[0].LikeCount == -100 || again[0].Caption == "changed" {
		t.Error("mutating a snapshot changed the feed")
	}
}

func TestToggleLike(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantLiked bool
		wantCount int
	}{
		{"unliked post", "post-1", true, 249},
		{"liked post", "post-2", false, 1531},
		{"unliked reel", "reel-1", true, 1543},
		{"liked reel", "reel-3", false, 2102},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFeed(t, nil)
			got, err := f.ToggleLike(tt.id)
			if err != nil {
				t.Fatal(err)
			}
			if got.IsLiked != tt.wantLiked || got.LikeCount != tt.wantCount {
				t.Errorf("ToggleLike(%s) = %+v, want {%v %d}", tt.id, got, tt.wantLiked, tt.wantCount)
			}
			cur, _ := f.Likes(tt.id)
			if cur != got {
				t.Errorf("Likes(%s) = %+v, want %+v", tt.id, cur, got)
			}
		})
	}
}

func TestToggleLikeTwiceRestores(t *testing.T) {
	f := testFeed(t, nil)
	for _, id := range []string{"post-1", "post-2", "post-3", "reel-1", "reel-3", "reel-4", "reel-6"} {
		before, err := f.Likes(id)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.ToggleLike(id); err != nil {
			t.Fatal(err)
		}
		after, err := f.ToggleLike(id)
		if err != nil {
			t.Fatal(err)
		}
		if after != before {
			t.Errorf("%s: two toggles = %+v, want %+v", id, after, before)
		}
	}
}

func TestToggleLikeIsPerItem(t *testing.T) {
	f := testFeed(t, nil)
	other, _ := f.Likes("reel-2")
	if _, err := f.ToggleLike("reel-1"); err != nil {
		t.Fatal(err)
	}
	if got, _ := f.Likes("reel-2"); got != other {
		t.Errorf("reel-2 changed to %+v", got)
	}
	if reels := f.Reels(); !reels[0].IsLiked {
		t.Error("Reels()[0] does not reflect toggle")
	}
}

func TestToggleLikeUnknown(t *testing.T) {
	f := testFeed(t, nil)
	if _, err := f.ToggleLike("news-1"); !apperr.IsNotFound(err) {
		t.Errorf("ToggleLike(news-1) error = %v, want NotFound", err)
	}
	if _, err := f.ToggleLike(""); !apperr.IsNotFound(err) {
		t.Errorf("ToggleLike(\"\") error = %v, want NotFound", err)
	}
}

func TestToggleLikePublishes(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("feed.", 4)
	defer unsub()
	f := testFeed(t, b)

	state, err := f.ToggleLike("post-3")
	if err != nil {
		t.Fatal(err)
	}
	select {
	case evt := <-ch:
		lt, ok := evt.Payload.(LikeToggle)
		if evt.Kind != bus.KindLikeToggled || !ok || lt.ItemID != "post-3" || lt.State != state {
			t.Errorf("event = %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for feed.like_toggled")
	}
}

func TestSearchServices(t *testing.T) {
	f := testFeed(t, nil)
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Wallet", "Tickets", "Map", "Dining", "Sharing", "Rewards", "Transport", "More"}},
		{"  ", []string{"Wallet", "Tickets", "Map", "Dining", "Sharing", "Rewards", "Transport", "More"}},
		{"wal", []string{"Wallet"}},
		{"WAL", []string{"Wallet"}},
		{"re", []string{"Rewards", "More"}},
		{"ing", []string{"Dining", "Sharing"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := f.SearchServices(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("SearchServices(%q) = %d results, want %d", tt.query, len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("result[%d] = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{87, "87"},
		{999, "999"},
		{1000, "1.0k"},
		{1532, "1.5k"},
		{2103, "2.1k"},
		{12345, "12.3k"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestLikeStateToggle(t *testing.T) {
	s := LikeState{LikeCount: 5}
	if got := s.Toggle(); got != (LikeState{IsLiked: true, LikeCount: 6}) {
		t.Errorf("first toggle = %+v", got)
	}
	if got := s.Toggle(); got != (LikeState{LikeCount: 5}) {
		t.Errorf("second toggle = %+v", got)
	}
}
