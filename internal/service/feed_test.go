package service

import (
	"context"
	"testing"
	"time"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
)

func TestFeedService_GetFeed_PassesViewer(t *testing.T) {
	viewer := int64(4)
	var gotViewer int64 = -1
	mockRepo := &mockPostRepository{
		getFeedFn: func(ctx context.Context, viewerID int64) ([]model.FeedPost, error) {
			gotViewer = viewerID
			return []model.FeedPost{}, nil
		},
	}
	svc := NewFeedService(mockRepo)

	if _, err := svc.GetFeed(context.Background(), &viewer); err != nil {
		t.Fatalf("get feed: %v", err)
	}
	if gotViewer != viewer {
		t.Errorf("viewer id passed to store = %d, want %d", gotViewer, viewer)
	}
}

func TestFeedService_GetFeed_AnonymousViewerIsZero(t *testing.T) {
	var gotViewer int64 = -1
	mockRepo := &mockPostRepository{
		getFeedFn: func(ctx context.Context, viewerID int64) ([]model.FeedPost, error) {
			gotViewer = viewerID
			return []model.FeedPost{}, nil
		},
	}
	svc := NewFeedService(mockRepo)

	if _, err := svc.GetFeed(context.Background(), nil); err != nil {
		t.Fatalf("get feed: %v", err)
	}
	if gotViewer != 0 {
		t.Errorf("viewer id passed to store = %d, want 0 for anonymous", gotViewer)
	}
}

func TestFeedService_GetFeed_PreservesOrderAndEnrichment(t *testing.T) {
	now := time.Now()
	rows := []model.FeedPost{
		{ID: 2, UserID: 1, Text: "newer", CreatedAt: now, Username: "alice",
			LikeCount: 3, CommentCount: 0, IsLiked: true, IsFollowing: false},
		{ID: 1, UserID: 1, Text: "older", CreatedAt: now.Add(-time.Hour), Username: "alice",
			LikeCount: 0, CommentCount: 2, IsLiked: false, IsFollowing: false},
	}
	mockRepo := &mockPostRepository{
		getFeedFn: func(ctx context.Context, viewerID int64) ([]model.FeedPost, error) {
			return rows, nil
		},
	}
	svc := NewFeedService(mockRepo)

	viewer := int64(9)
	feed, err := svc.GetFeed(context.Background(), &viewer)
	if err != nil {
		t.Fatalf("get feed: %v", err)
	}

	if len(feed) != 2 {
		t.Fatalf("feed length = %d, want 2", len(feed))
	}
	if feed[0].ID != 2 || feed[1].ID != 1 {
		t.Errorf("feed order changed: got ids %d,%d", feed[0].ID, feed[1].ID)
	}

	// Counts are independent tallies: likes and comments do not multiply
	if feed[0].LikeCount != 3 || feed[0].CommentCount != 0 {
		t.Errorf("post 2 counts = (%d,%d), want (3,0)", feed[0].LikeCount, feed[0].CommentCount)
	}
	if feed[1].LikeCount != 0 || feed[1].CommentCount != 2 {
		t.Errorf("post 1 counts = (%d,%d), want (0,2)", feed[1].LikeCount, feed[1].CommentCount)
	}
}
