package service

import (
	"context"
	"log"
	"time"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
	"github.com/banjomaryam17/socialmediaAPP/internal/repository"
)

// FeedService composes the content and graph stores into a per-viewer feed.
// Every flag and count is computed against the live rows on each call;
// nothing viewer-relative is ever cached.
type FeedService struct {
	postRepo repository.PostRepository
}

func NewFeedService(postRepo repository.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// GetFeed returns all posts newest-first, enriched for the viewer. With no
// viewer, is_liked and is_following are false on every row and no block
// filtering applies, since there is no viewer to have blocked anyone.
func (s *FeedService) GetFeed(ctx context.Context, viewerID *int64) ([]model.FeedPost, error) {
	startTime := time.Now()

	posts, err := s.postRepo.GetFeed(ctx, orZero(viewerID))
	if err != nil {
		return nil, err
	}

	log.Printf("[FeedService] GetFeed OK: viewer=%d posts=%d duration=%v",
		orZero(viewerID), len(posts), time.Since(startTime))

	return posts, nil
}
