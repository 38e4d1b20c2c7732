package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow inserts the edge as a single conditional statement. Two concurrent
// identical follows race on the conflict clause: exactly one inserts, the
// other sees zero rows affected. Neither errors.
func (r *followRepository) Follow(ctx context.Context, followerID, followingID int64) (bool, error) {
	query := `
		INSERT INTO followers (follower_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, following_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return false, model.ErrUserNotFound
		}
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Unfollow deletes the edge if present. Zero rows affected means the edge
// was already absent; the caller reports that as a success outcome.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID int64) (bool, error) {
	query := `DELETE FROM followers WHERE follower_id = $1 AND following_id = $2`
	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Block inserts the block edge. Duplicate blocks are swallowed by the
// conflict clause.
func (r *followRepository) Block(ctx context.Context, blockerID, blockedID int64) error {
	query := `
		INSERT INTO blocked_users (blocker_id, blocked_id)
		VALUES ($1, $2)
		ON CONFLICT (blocker_id, blocked_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, blockerID, blockedID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return model.ErrUserNotFound
		}
		return fmt.Errorf("failed to create block: %w", err)
	}
	return nil
}

// ListFollowing returns the users userID follows, ordered by username.
func (r *followRepository) ListFollowing(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.avatar_url
		FROM followers f
		JOIN users u ON u.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY u.username ASC
	`

	users := []model.UserSummary{}
	if err := r.db.SelectContext(ctx, &users, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}

	return users, nil
}
