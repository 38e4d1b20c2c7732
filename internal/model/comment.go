package model

import "time"

// Comment is a single comment on a post. Username and AvatarURL are joined
// from the commenting user when listing; they are empty on a fresh insert.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Username  string    `db:"username" json:"username,omitempty"`
	AvatarURL *string   `db:"avatar_url" json:"avatar_url,omitempty"`
}

// CreateCommentRequest is the comment payload.
type CreateCommentRequest struct {
	UserID int64  `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}
