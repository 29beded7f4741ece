// Package feed holds the read-only posts, reels, news and services
// collections together with the process-local like state of posts and reels.
// Like state is never persisted and resets on restart.
package feed

import (
	"slices"
	"strings"
	"sync"

	"github.com/matheus3301/wave/internal/apperr"
	"github.com/matheus3301/wave/internal/bus"
	"github.com/matheus3301/wave/internal/seed"
)

// Feed is safe for concurrent use.
type Feed struct {
	mu        sync.RWMutex
	posts     []*Post
	reels     []*Reel
	likeables map[string]Likeable

	news     []NewsItem
	services []Service
	ads      []Ad
	profile  Profile

	bus *bus.Bus
}

// New builds the feed collections from a seed dataset.
func New(ds *seed.Dataset, b *bus.Bus) *Feed {
	f := &Feed{
		likeables: make(map[string]Likeable, len(ds.Posts)+len(ds.Reels)),
		bus:       b,
		profile: Profile{
			ID:        ds.Profile.ID,
			Name:      ds.Profile.Name,
			Handle:    ds.Profile.Handle,
			AvatarRef: ds.Profile.Avatar,
			Bio:       ds.Profile.Bio,
			Posts:     ds.Profile.Posts,
			Followers: ds.Profile.Followers,
			Following: ds.Profile.Following,
		},
	}
	for _, p := range ds.Posts {
		post := &Post{
			ID:        p.ID,
			Author:    p.Username,
			AvatarRef: p.Avatar,
			MediaRef:  p.Image,
			Caption:   p.Caption,
			Comments:  p.Comments,
			Timestamp: p.Timestamp,
			LikeState: LikeState{IsLiked: p.Liked, LikeCount: p.Likes},
		}
		f.posts = append(f.posts, post)
		f.likeables[post.ID] = &post.LikeState
	}
	for _, r := range ds.Reels {
		reel := &Reel{
			ID:        r.ID,
			Author:    r.Username,
			AvatarRef: r.Avatar,
			MediaRef:  r.Thumbnail,
			Caption:   r.Caption,
			Comments:  r.Comments,
			Shares:    r.Shares,
			IsVideo:   r.Video,
			LikeState: LikeState{IsLiked: r.Liked, LikeCount: r.Likes},
		}
		f.reels = append(f.reels, reel)
		f.likeables[reel.ID] = &reel.LikeState
	}
	for _, n := range ds.News {
		f.news = append(f.news, NewsItem{
			ID:        n.ID,
			Title:     n.Title,
			Summary:   n.Summary,
			MediaRef:  n.Image,
			Timestamp: n.Timestamp,
			Category:  n.Category,
		})
	}
	for _, s := range ds.Services {
		f.services = append(f.services, Service{
			ID:          s.ID,
			Name:        s.Name,
			IconRef:     s.Icon,
			AccentColor: s.Color,
			Description: s.Description,
		})
	}
	for _, a := range ds.Ads {
		f.ads = append(f.ads, Ad{
			ID:          a.ID,
			Title:       a.Title,
			Subtitle:    a.Subtitle,
			MediaRef:    a.Image,
			AccentColor: a.Color,
		})
	}
	return f
}

// Posts returns a snapshot of the posts feed in seed order.
func (f *Feed) Posts() []Post {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Post, len(f.posts))
	for i, p := range f.posts {
		out[i] = *p
	}
	return out
}

// Reels returns a snapshot of the reels in seed order.
func (f *Feed) Reels() []Reel {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Reel, len(f.reels))
	for i, r := range f.reels {
		out[i] = *r
	}
	return out
}

func (f *Feed) News() []NewsItem { return slices.Clone(f.news) }

func (f *Feed) Services() []Service { return slices.Clone(f.services) }

func (f *Feed) Ads() []Ad { return slices.Clone(f.ads) }

func (f *Feed) Profile() Profile { return f.profile }

// SearchServices returns the services whose name contains query, ignoring
// case. An empty or blank query returns every service.
func (f *Feed) SearchServices(query string) []Service {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return f.Services()
	}
	var out []Service
	for _, s := range f.services {
		if strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
		}
	}
	return out
}

// ToggleLike flips the like state of the post or reel with the given id.
func (f *Feed) ToggleLike(itemID string) (LikeState, error) {
	f.mu.Lock()
	item, ok := f.likeables[itemID]
	if !ok {
		f.mu.Unlock()
		return LikeState{}, apperr.NotFound("feed item %q not found", itemID)
	}
	state := item.Toggle()
	f.mu.Unlock()

	f.bus.Publish(bus.NewEvent(bus.KindLikeToggled, LikeToggle{ItemID: itemID, State: state}))
	return state, nil
}

// Likes returns the current like state of a post or reel.
func (f *Feed) Likes(itemID string) (LikeState, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	item, ok := f.likeables[itemID]
	if !ok {
		return LikeState{}, apperr.NotFound("feed item %q not found", itemID)
	}
	return item.Likes(), nil
}
