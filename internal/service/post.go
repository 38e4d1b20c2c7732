package service

import (
	"context"
	"log"
	"strings"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
	"github.com/banjomaryam17/socialmediaAPP/internal/repository"
)

// PostService owns post publication, the like toggle, and report intake.
type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Create publishes a post. Validation happens before any store write.
func (s *PostService) Create(ctx context.Context, userID int64, text string) (*model.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.ErrTextRequired
	}

	return s.postRepo.Create(ctx, userID, text)
}

// ToggleLike flips the viewer's like on a post and reports which state it
// landed on. The atomicity lives in the store statements; this controller
// only validates and delegates.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID int64) (model.LikeOutcome, error) {
	outcome, err := s.postRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return "", err
	}

	log.Printf("[PostService] toggle like: user=%d post=%d outcome=%s", userID, postID, outcome)
	return outcome, nil
}

// Report records a report against a post. Reports are append-only and the
// reason falls back to a fixed placeholder when omitted.
func (s *PostService) Report(ctx context.Context, reporterID, postID int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		reason = model.DefaultReportReason
	}
	return s.postRepo.Report(ctx, reporterID, postID, reason)
}
