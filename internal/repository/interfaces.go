package repository

import (
	"context"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
)

type UserRepository interface {
	// Create inserts a new user. A duplicate username maps to
	// model.ErrUsernameExists via the unique constraint, not a pre-read.
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// ListAll returns every user except the viewer with aggregate counts
	// and the viewer-relative follow flag, ordered by username.
	ListAll(ctx context.Context, viewerID int64) ([]model.UserStats, error)
	// Search matches usernames case-insensitively by substring,
	// excluding the viewer.
	Search(ctx context.Context, viewerID int64, query string, limit int) ([]model.SearchResult, error)
}

type FollowRepository interface {
	// Follow inserts the edge if absent. Returns false when the edge
	// already existed; never errors on a duplicate.
	Follow(ctx context.Context, followerID, followingID int64) (bool, error)
	// Unfollow deletes the edge if present. Returns false when there was
	// nothing to delete; that is still a success.
	Unfollow(ctx context.Context, followerID, followingID int64) (bool, error)
	// Block inserts the block edge, conflict-safe and idempotent.
	Block(ctx context.Context, blockerID, blockedID int64) error
	// ListFollowing returns the users followed by userID, username ascending.
	ListFollowing(ctx context.Context, userID int64) ([]model.UserSummary, error)
}

type PostRepository interface {
	// Create inserts a post. An unknown author maps to model.ErrUserNotFound.
	Create(ctx context.Context, userID int64, text string) (*model.Post, error)
	// GetFeed returns all posts newest-first, enriched for the viewer and
	// filtered of blocked authors. viewerID 0 means unauthenticated: all
	// flags false, no filtering.
	GetFeed(ctx context.Context, viewerID int64) ([]model.FeedPost, error)
	// ToggleLike flips the (user, post) like row in atomic statements and
	// reports which state the toggle landed on.
	ToggleLike(ctx context.Context, userID, postID int64) (model.LikeOutcome, error)
	// Report appends to the audit log. Reports are never read back here.
	Report(ctx context.Context, reporterID, postID int64, reason string) error
}

type CommentRepository interface {
	// Create inserts a comment. An unknown post maps to model.ErrPostNotFound.
	Create(ctx context.Context, postID, userID int64, text string) (*model.Comment, error)
	// ListByPost returns comments oldest-first with commenter identity joined.
	ListByPost(ctx context.Context, postID int64) ([]model.Comment, error)
}
