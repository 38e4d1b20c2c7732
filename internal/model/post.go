package model

import (
	"errors"
	"time"
)

// Post is a bare content row as stored. Posts are immutable once published.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FeedPost is a post enriched for a specific viewer: author identity,
// independently tallied like/comment counts, and the viewer-relative flags.
type FeedPost struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	Text         string    `db:"text" json:"text"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	Username     string    `db:"username" json:"username"`
	AvatarURL    *string   `db:"avatar_url" json:"avatar_url"`
	LikeCount    int       `db:"like_count" json:"like_count"`
	CommentCount int       `db:"comment_count" json:"comment_count"`
	IsLiked      bool      `db:"is_liked" json:"is_liked"`
	IsFollowing  bool      `db:"is_following" json:"is_following"`
}

// LikeOutcome reports which side of the like toggle a call landed on.
type LikeOutcome string

const (
	Liked   LikeOutcome = "liked"
	Unliked LikeOutcome = "unliked"
)

// CreatePostRequest is the publish payload.
type CreatePostRequest struct {
	UserID int64  `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// LikeRequest carries the acting user for the like toggle.
type LikeRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

// ReportRequest carries the acting user and an optional reason.
type ReportRequest struct {
	UserID int64  `json:"user_id" validate:"required"`
	Reason string `json:"reason"`
}

// DefaultReportReason is recorded when a report omits its reason.
const DefaultReportReason = "No reason provided"

var (
	// ErrPostNotFound is returned when a referenced post does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrTextRequired is returned when a post or comment has no text
	ErrTextRequired = errors.New("text is required")
)
