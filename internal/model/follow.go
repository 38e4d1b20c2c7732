package model

import "errors"

// FollowOutcome names the end state of a follow call. Both values are
// success outcomes: repeating a follow never errors and never duplicates
// the edge.
type FollowOutcome string

const (
	Followed         FollowOutcome = "followed"
	AlreadyFollowing FollowOutcome = "already_following"
)

// UnfollowOutcome names the end state of an unfollow call. Deleting an
// absent edge is a no-op, not an error.
type UnfollowOutcome string

const (
	Unfollowed   UnfollowOutcome = "unfollowed"
	NotFollowing UnfollowOutcome = "not_following"
)

// ActorRequest carries the acting user's id for graph mutations
// (follow, unfollow, block). The caller supplies the identity; there is
// no server-side session to derive it from.
type ActorRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

var (
	// ErrCannotFollowSelf is returned when follower and followee are the same user
	ErrCannotFollowSelf = errors.New("cannot follow yourself")

	// ErrCannotBlockSelf is returned when blocker and blocked are the same user
	ErrCannotBlockSelf = errors.New("cannot block yourself")
)
