package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
	"github.com/banjomaryam17/socialmediaAPP/internal/service"
)

type stubPostRepository struct {
	toggleLikeFn func(ctx context.Context, userID, postID int64) (model.LikeOutcome, error)
	reportFn     func(ctx context.Context, reporterID, postID int64, reason string) error
}

func (s *stubPostRepository) Create(ctx context.Context, userID int64, text string) (*model.Post, error) {
	return &model.Post{ID: 1, UserID: userID, Text: text}, nil
}

func (s *stubPostRepository) GetFeed(ctx context.Context, viewerID int64) ([]model.FeedPost, error) {
	return nil, nil
}

func (s *stubPostRepository) ToggleLike(ctx context.Context, userID, postID int64) (model.LikeOutcome, error) {
	if s.toggleLikeFn != nil {
		return s.toggleLikeFn(ctx, userID, postID)
	}
	return model.Liked, nil
}

func (s *stubPostRepository) Report(ctx context.Context, reporterID, postID int64, reason string) error {
	if s.reportFn != nil {
		return s.reportFn(ctx, reporterID, postID, reason)
	}
	return nil
}

func newPostRouter(repo *stubPostRepository) chi.Router {
	postService := service.NewPostService(repo)
	feedService := service.NewFeedService(repo)
	h := NewPostHandler(postService, feedService)

	r := chi.NewRouter()
	r.Post("/posts/{postId}/like", h.ToggleLike)
	r.Post("/posts/{postId}/report", h.Report)
	return r
}

func routeJSON(t *testing.T, r chi.Router, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPostHandler_ToggleLike_UnknownActorIsNotFound(t *testing.T) {
	// The store tells an unknown liker apart from an unknown post; the
	// response must name the right one.
	r := newPostRouter(&stubPostRepository{
		toggleLikeFn: func(ctx context.Context, userID, postID int64) (model.LikeOutcome, error) {
			return "", model.ErrUserNotFound
		},
	})

	rec := routeJSON(t, r, "/posts/3/like", `{"user_id":999}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusNotFound, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Errorf("body should name the missing user: %s", rec.Body)
	}
}

func TestPostHandler_ToggleLike_UnknownPostIsNotFound(t *testing.T) {
	r := newPostRouter(&stubPostRepository{
		toggleLikeFn: func(ctx context.Context, userID, postID int64) (model.LikeOutcome, error) {
			return "", model.ErrPostNotFound
		},
	})

	rec := routeJSON(t, r, "/posts/999/like", `{"user_id":1}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusNotFound, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "Post not found") {
		t.Errorf("body should name the missing post: %s", rec.Body)
	}
}

func TestPostHandler_Report_UnknownActorIsNotFound(t *testing.T) {
	r := newPostRouter(&stubPostRepository{
		reportFn: func(ctx context.Context, reporterID, postID int64, reason string) error {
			return model.ErrUserNotFound
		},
	})

	rec := routeJSON(t, r, "/posts/3/report", `{"user_id":999,"reason":"spam"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusNotFound, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Errorf("body should name the missing user: %s", rec.Body)
	}
}
