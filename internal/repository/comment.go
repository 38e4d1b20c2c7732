package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment. The foreign key on post_id surfaces an unknown
// post as model.ErrPostNotFound instead of a generic failure.
func (r *commentRepository) Create(ctx context.Context, postID, userID int64, text string) (*model.Comment, error) {
	query := `
		INSERT INTO comments (post_id, user_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, post_id, user_id, text, created_at
	`

	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, postID, userID, text)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			if pqErr.Constraint == "comments_user_id_fkey" {
				return nil, model.ErrUserNotFound
			}
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return &comment, nil
}

// ListByPost returns the comments on a post in insertion order, each with
// the commenting user's identity joined in.
func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, c.text, c.created_at,
		       u.username, u.avatar_url
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`

	comments := []model.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}
