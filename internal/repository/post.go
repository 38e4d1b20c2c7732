package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post.
func (r *postRepository) Create(ctx context.Context, userID int64, text string) (*model.Post, error) {
	query := `
		INSERT INTO posts (user_id, text)
		VALUES ($1, $2)
		RETURNING id, user_id, text, created_at
	`

	var post model.Post
	err := r.db.GetContext(ctx, &post, query, userID, text)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return &post, nil
}

// GetFeed builds the viewer's feed in one query.
//
// The like and comment tallies come from separate grouped subqueries joined
// back onto posts. Joining the raw like and comment tables directly would
// fan out to N×M rows per post and a post with comments but no likes would
// vanish behind an inner join; the grouped LEFT JOINs keep each tally
// independent and keep every post present.
//
// The viewer-relative flags are EXISTS probes against the live edge tables,
// and the block filter is a NOT EXISTS on blocked_users. viewerID 0 (no
// authenticated viewer) matches no edges, so flags come back false and no
// post is filtered.
func (r *postRepository) GetFeed(ctx context.Context, viewerID int64) ([]model.FeedPost, error) {
	query := `
		SELECT p.id, p.user_id, p.text, p.created_at,
		       u.username, u.avatar_url,
		       COALESCE(l.like_count, 0)    AS like_count,
		       COALESCE(c.comment_count, 0) AS comment_count,
		       EXISTS(SELECT 1 FROM post_likes pl
		              WHERE pl.post_id = p.id AND pl.user_id = $1)             AS is_liked,
		       EXISTS(SELECT 1 FROM followers f
		              WHERE f.follower_id = $1 AND f.following_id = p.user_id) AS is_following
		FROM posts p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN (
			SELECT post_id, COUNT(*) AS like_count
			FROM post_likes
			GROUP BY post_id
		) l ON l.post_id = p.id
		LEFT JOIN (
			SELECT post_id, COUNT(*) AS comment_count
			FROM comments
			GROUP BY post_id
		) c ON c.post_id = p.id
		WHERE NOT EXISTS (
			SELECT 1 FROM blocked_users b
			WHERE b.blocker_id = $1 AND b.blocked_id = p.user_id
		)
		ORDER BY p.created_at DESC, p.id DESC
	`

	posts := []model.FeedPost{}
	if err := r.db.SelectContext(ctx, &posts, query, viewerID); err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	return posts, nil
}

// ToggleLike flips the like row for (userID, postID).
//
// The insert leg is conditional on the primary key, so two concurrent
// toggles that both observe "absent" cannot both insert: one lands the row
// and reports Liked, the other falls through to the delete leg and reports
// Unliked. Every path is a single atomic statement; there is no read
// followed by a dependent write.
func (r *postRepository) ToggleLike(ctx context.Context, userID, postID int64) (model.LikeOutcome, error) {
	insert := `
		INSERT INTO post_likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, insert, userID, postID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			if pqErr.Constraint == "post_likes_user_id_fkey" {
				return "", model.ErrUserNotFound
			}
			return "", model.ErrPostNotFound
		}
		return "", fmt.Errorf("failed to insert like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return model.Liked, nil
	}

	del := `DELETE FROM post_likes WHERE user_id = $1 AND post_id = $2`
	if _, err := r.db.ExecContext(ctx, del, userID, postID); err != nil {
		return "", fmt.Errorf("failed to delete like: %w", err)
	}

	return model.Unliked, nil
}

// Report appends to the audit log.
func (r *postRepository) Report(ctx context.Context, reporterID, postID int64, reason string) error {
	query := `
		INSERT INTO post_reports (reporter_id, post_id, reason)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, reporterID, postID, reason); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			if pqErr.Constraint == "post_reports_reporter_id_fkey" {
				return model.ErrUserNotFound
			}
			return model.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}
