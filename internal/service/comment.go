package service

import (
	"context"
	"strings"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
	"github.com/banjomaryam17/socialmediaAPP/internal/repository"
)

// CommentService owns comment creation and listing.
type CommentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// Create adds a comment to a post. An unknown post surfaces as
// model.ErrPostNotFound from the store's foreign key, not a generic failure.
func (s *CommentService) Create(ctx context.Context, postID, userID int64, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.ErrTextRequired
	}

	return s.commentRepo.Create(ctx, postID, userID, text)
}

// ListByPost returns a post's comments oldest-first with commenter identity.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
