package api

import (
	"context"
	"time"

	"github.com/matheus3301/wave/internal/feed"
)

// FeedService implements wave.v1.FeedService.
type FeedService struct {
	feed             *feed.Feed
	carouselInterval time.Duration
}

// NewFeedService creates a feed service. carouselInterval is reported to
// clients with the ads so every UI advances at the configured pace.
func NewFeedService(f *feed.Feed, carouselInterval time.Duration) *FeedService {
	return &FeedService{feed: f, carouselInterval: carouselInterval}
}

func (s *FeedService) ListPosts(_ context.Context, _ *Empty) (*ListPostsResponse, error) {
	return &ListPostsResponse{Posts: s.feed.Posts()}, nil
}

func (s *FeedService) ListReels(_ context.Context, _ *Empty) (*ListReelsResponse, error) {
	return &ListReelsResponse{Reels: s.feed.Reels()}, nil
}

func (s *FeedService) ListNews(_ context.Context, _ *Empty) (*ListNewsResponse, error) {
	return &ListNewsResponse{News: s.feed.News()}, nil
}

func (s *FeedService) ListServices(_ context.Context, req *ListServicesRequest) (*ListServicesResponse, error) {
	return &ListServicesResponse{Services: s.feed.SearchServices(req.Query)}, nil
}

func (s *FeedService) ListAds(_ context.Context, _ *Empty) (*ListAdsResponse, error) {
	return &ListAdsResponse{Ads: s.feed.Ads(), IntervalMs: s.carouselInterval.Milliseconds()}, nil
}

func (s *FeedService) ToggleLike(_ context.Context, req *ToggleLikeRequest) (*ToggleLikeResponse, error) {
	likes, err := s.feed.ToggleLike(req.ItemID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ToggleLikeResponse{ItemID: req.ItemID, Likes: likes}, nil
}

func (s *FeedService) GetProfile(_ context.Context, _ *Empty) (*ProfileResponse, error) {
	return &ProfileResponse{Profile: s.feed.Profile()}, nil
}
