package model

import (
	"errors"
	"time"
)

// User represents a registered account. The password hash is never
// serialized; the "-" json tag strips it from every response.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	FirstName *string   `db:"first_name" json:"first_name"`
	LastName  *string   `db:"last_name" json:"last_name"`
	AvatarURL *string   `db:"avatar_url" json:"avatar_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// UserSummary is the compact identity block attached to graph listings.
type UserSummary struct {
	ID        int64   `db:"id" json:"id"`
	Username  string  `db:"username" json:"username"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url"`
}

// SearchResult is a user row in search output, flagged relative to the viewer.
type SearchResult struct {
	UserSummary
	IsFollowing bool `db:"is_following" json:"is_following"`
}

// UserStats is a profile row in the user directory: aggregate counts plus
// the viewer-relative follow flag. Counts are tallied from rows at query
// time, never stored.
type UserStats struct {
	ID             int64   `db:"id" json:"id"`
	Username       string  `db:"username" json:"username"`
	AvatarURL      *string `db:"avatar_url" json:"avatar_url"`
	FollowerCount  int     `db:"follower_count" json:"follower_count"`
	FollowingCount int     `db:"following_count" json:"following_count"`
	PostCount      int     `db:"post_count" json:"post_count"`
	IsFollowing    bool    `db:"is_following" json:"is_following"`
}

// RegisterRequest is the signup payload. Field names match the client form.
type RegisterRequest struct {
	Username  string  `json:"username" validate:"required"`
	Password  string  `json:"password" validate:"required"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	AvatarURL *string `json:"avatarUrl"`
}

// LoginRequest is the credential-check payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var (
	// ErrUserNotFound is returned when a referenced user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when registering a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrUsernameRequired is returned when a registration carries no username
	ErrUsernameRequired = errors.New("username is required")

	// ErrPasswordRequired is returned when a registration carries no password
	ErrPasswordRequired = errors.New("password is required")

	// ErrInvalidPassword is returned when the password hash does not match
	ErrInvalidPassword = errors.New("invalid password")
)
