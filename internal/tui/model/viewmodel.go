// Package model caches daemon state for the TUI.
package model

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matheus3301/wave/internal/api"
	"github.com/matheus3301/wave/internal/client"
	"github.com/matheus3301/wave/internal/directory"
	"github.com/matheus3301/wave/internal/feed"
	"github.com/matheus3301/wave/internal/messagelog"
)

// ViewModel caches state fetched from the daemon and signals UI refreshes.
type ViewModel struct {
	mu sync.RWMutex

	client   *client.Client
	status   *api.GetStatusResponse
	chats    []directory.Conversation
	messages map[string][]messagelog.Message
	posts    []feed.Post
	reels    []feed.Reel
	news     []feed.NewsItem
	services []feed.Service
	ads      *api.ListAdsResponse
	profile  *feed.Profile

	refreshCh chan struct{}
}

// NewViewModel creates a new view model connected to the daemon client.
func NewViewModel(c *client.Client) *ViewModel {
	return &ViewModel{
		client:    c,
		messages:  make(map[string][]messagelog.Message),
		refreshCh: make(chan struct{}, 1),
	}
}

// Client returns the underlying daemon client.
func (vm *ViewModel) Client() *client.Client { return vm.client }

// RefreshCh returns the channel that signals UI refresh.
func (vm *ViewModel) RefreshCh() <-chan struct{} {
	return vm.refreshCh
}

func (vm *ViewModel) signalRefresh() {
	select {
	case vm.refreshCh <- struct{}{}:
	default:
	}
}

// LoadStatus fetches daemon and session status.
func (vm *ViewModel) LoadStatus(ctx context.Context) error {
	resp, err := vm.client.Session.GetStatus(ctx, &api.Empty{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.status = resp
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// Login signs in with identifier and refreshes the cached status.
func (vm *ViewModel) Login(ctx context.Context, identifier string) error {
	if _, err := vm.client.Session.Login(ctx, &api.LoginRequest{Identifier: identifier}); err != nil {
		return err
	}
	return vm.LoadStatus(ctx)
}

// Logout asks the daemon to sign out and returns its answer.
func (vm *ViewModel) Logout(ctx context.Context) (*api.LogoutResponse, error) {
	return vm.client.Session.Logout(ctx, &api.Empty{})
}

// ToggleTheme flips the stored theme and returns the new value.
func (vm *ViewModel) ToggleTheme(ctx context.Context) (string, error) {
	resp, err := vm.client.Session.ToggleTheme(ctx, &api.Empty{})
	if err != nil {
		return "", err
	}
	vm.mu.Lock()
	if vm.status != nil {
		vm.status.Theme = resp.Theme
	}
	vm.mu.Unlock()
	vm.signalRefresh()
	return resp.Theme, nil
}

// LoadChats fetches the conversation list.
func (vm *ViewModel) LoadChats(ctx context.Context) error {
	resp, err := vm.client.Chat.ListChats(ctx, &api.Empty{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.chats = resp.Chats
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// NewChat returns the conversation a new chat opens.
func (vm *ViewModel) NewChat(ctx context.Context) (directory.Conversation, error) {
	resp, err := vm.client.Chat.NewChat(ctx, &api.Empty{})
	if err != nil {
		return directory.Conversation{}, err
	}
	return resp.Chat, nil
}

// LoadMessages fetches the oldest-first log of a conversation.
func (vm *ViewModel) LoadMessages(ctx context.Context, conversationID string) error {
	resp, err := vm.client.Message.ListMessages(ctx, &api.ListMessagesRequest{ConversationID: conversationID})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.messages[conversationID] = mergeLog(resp.Messages, vm.messages[conversationID])
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// mergeLog keeps the fetched log and appends cached messages it does not
// contain yet. Those arrived on the watch stream after the fetch was served.
func mergeLog(fetched, cached []messagelog.Message) []messagelog.Message {
	seen := make(map[string]struct{}, len(fetched))
	for _, m := range fetched {
		seen[m.ID] = struct{}{}
	}
	merged := append([]messagelog.Message(nil), fetched...)
	for _, m := range cached {
		if _, ok := seen[m.ID]; !ok {
			merged = append(merged, m)
		}
	}
	return merged
}

// SendText appends an outbound message. The cached log is updated by the
// watch stream, or by AddMessage when no stream is running.
func (vm *ViewModel) SendText(ctx context.Context, conversationID, text string) (messagelog.Message, error) {
	resp, err := vm.client.Message.SendText(ctx, &api.SendTextRequest{
		ConversationID: conversationID,
		Text:           text,
	})
	if err != nil {
		return messagelog.Message{}, err
	}
	return resp.Message, nil
}

// AddMessage records m as the newest message of its conversation. A message
// already present is ignored, so stream events and send responses can both
// report it.
func (vm *ViewModel) AddMessage(m messagelog.Message) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	log := vm.messages[m.ConversationID]
	for _, existing := range log {
		if existing.ID == m.ID {
			return false
		}
	}
	vm.messages[m.ConversationID] = append(log, m)
	vm.signalRefresh()
	return true
}

// Watch streams appended messages into the cache until ctx ends.
func (vm *ViewModel) Watch(ctx context.Context, onMessage func(messagelog.Message)) error {
	w, err := vm.client.Message.WatchMessages(ctx, &api.WatchMessagesRequest{})
	if err != nil {
		return err
	}
	for {
		ev, err := w.Recv()
		if err != nil {
			return err
		}
		if vm.AddMessage(ev.Message) && onMessage != nil {
			onMessage(ev.Message)
		}
	}
}

// LoadFeed fetches posts, reels, news, services, ads and the profile
// concurrently. The cache is only replaced when every call succeeds.
func (vm *ViewModel) LoadFeed(ctx context.Context) error {
	var (
		posts    *api.ListPostsResponse
		reels    *api.ListReelsResponse
		news     *api.ListNewsResponse
		services *api.ListServicesResponse
		ads      *api.ListAdsResponse
		profile  *api.ProfileResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		posts, err = vm.client.Feed.ListPosts(gctx, &api.Empty{})
		return err
	})
	g.Go(func() (err error) {
		reels, err = vm.client.Feed.ListReels(gctx, &api.Empty{})
		return err
	})
	g.Go(func() (err error) {
		news, err = vm.client.Feed.ListNews(gctx, &api.Empty{})
		return err
	})
	g.Go(func() (err error) {
		services, err = vm.client.Feed.ListServices(gctx, &api.ListServicesRequest{})
		return err
	})
	g.Go(func() (err error) {
		ads, err = vm.client.Feed.ListAds(gctx, &api.Empty{})
		return err
	})
	g.Go(func() (err error) {
		profile, err = vm.client.Feed.GetProfile(gctx, &api.Empty{})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	vm.mu.Lock()
	vm.posts = posts.Posts
	vm.reels = reels.Reels
	vm.news = news.News
	vm.services = services.Services
	vm.ads = ads
	vm.profile = &profile.Profile
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// SearchServices returns services whose name contains query.
func (vm *ViewModel) SearchServices(ctx context.Context, query string) ([]feed.Service, error) {
	resp, err := vm.client.Feed.ListServices(ctx, &api.ListServicesRequest{Query: query})
	if err != nil {
		return nil, err
	}
	return resp.Services, nil
}

// ToggleLike flips the like state of a post or reel and updates the cache.
func (vm *ViewModel) ToggleLike(ctx context.Context, itemID string) (feed.LikeState, error) {
	resp, err := vm.client.Feed.ToggleLike(ctx, &api.ToggleLikeRequest{ItemID: itemID})
	if err != nil {
		return feed.LikeState{}, err
	}
	vm.mu.Lock()
	for i := range vm.posts {
		if vm.posts[i].ID == itemID {
			vm.posts[i].LikeState = resp.Likes
		}
	}
	for i := range vm.reels {
		if vm.reels[i].ID == itemID {
			vm.reels[i].LikeState = resp.Likes
		}
	}
	vm.mu.Unlock()
	vm.signalRefresh()
	return resp.Likes, nil
}

// Status returns the cached status, or nil before the first load.
func (vm *ViewModel) Status() *api.GetStatusResponse {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if vm.status == nil {
		return nil
	}
	s := *vm.status
	return &s
}

// Chats returns a snapshot of the conversation list.
func (vm *ViewModel) Chats() []directory.Conversation {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return append([]directory.Conversation(nil), vm.chats...)
}

// Chat returns a cached conversation by id.
func (vm *ViewModel) Chat(id string) (directory.Conversation, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	for _, c := range vm.chats {
		if c.ID == id {
			return c, true
		}
	}
	return directory.Conversation{}, false
}

// Messages returns a snapshot of a conversation's log, oldest first.
func (vm *ViewModel) Messages(conversationID string) []messagelog.Message {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return append([]messagelog.Message(nil), vm.messages[conversationID]...)
}

// Posts returns a snapshot of the posts.
func (vm *ViewModel) Posts() []feed.Post {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return append([]feed.Post(nil), vm.posts...)
}

// Reels returns a snapshot of the reels.
func (vm *ViewModel) Reels() []feed.Reel {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return append([]feed.Reel(nil), vm.reels...)
}

// News returns a snapshot of the news items.
func (vm *ViewModel) News() []feed.NewsItem {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return append([]feed.NewsItem(nil), vm.news...)
}

// Services returns a snapshot of every service.
func (vm *ViewModel) Services() []feed.Service {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return append([]feed.Service(nil), vm.services...)
}

// Ads returns the carousel ads and the advance interval in milliseconds.
func (vm *ViewModel) Ads() ([]feed.Ad, int64) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if vm.ads == nil {
		return nil, 0
	}
	return append([]feed.Ad(nil), vm.ads.Ads...), vm.ads.IntervalMs
}

// Profile returns the signed-in user's profile, or nil before loading.
func (vm *ViewModel) Profile() *feed.Profile {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	if vm.profile == nil {
		return nil
	}
	p := *vm.profile
	return &p
}

// SetTheme stores name as the theme and returns the stored value.
func (vm *ViewModel) SetTheme(ctx context.Context, name string) (string, error) {
	resp, err := vm.client.Session.SetTheme(ctx, &api.SetThemeRequest{Theme: name})
	if err != nil {
		return "", err
	}
	vm.mu.Lock()
	if vm.status != nil {
		vm.status.Theme = resp.Theme
	}
	vm.mu.Unlock()
	vm.signalRefresh()
	return resp.Theme, nil
}
