package service

import (
	"context"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
	"github.com/banjomaryam17/socialmediaAPP/internal/repository"
)

// FollowService is the toggle controller over the social graph store. It
// owns no state: repeated identical calls converge on the same end state,
// never duplicate an edge, and never error on a redundant end.
type FollowService struct {
	followRepo repository.FollowRepository
}

func NewFollowService(followRepo repository.FollowRepository) *FollowService {
	return &FollowService{followRepo: followRepo}
}

// Follow moves the (follower, following) pair to Following. Already being
// there is a success, not an error.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID int64) (model.FollowOutcome, error) {
	if followerID == followingID {
		return "", model.ErrCannotFollowSelf
	}

	inserted, err := s.followRepo.Follow(ctx, followerID, followingID)
	if err != nil {
		return "", err
	}
	if !inserted {
		return model.AlreadyFollowing, nil
	}
	return model.Followed, nil
}

// Unfollow moves the pair to NotFollowing. Deleting an absent edge is a
// no-op that still succeeds.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID int64) (model.UnfollowOutcome, error) {
	deleted, err := s.followRepo.Unfollow(ctx, followerID, followingID)
	if err != nil {
		return "", err
	}
	if !deleted {
		return model.NotFollowing, nil
	}
	return model.Unfollowed, nil
}

// Block hides blockedID's content from blockerID's feed. Idempotent.
func (s *FollowService) Block(ctx context.Context, blockerID, blockedID int64) error {
	if blockerID == blockedID {
		return model.ErrCannotBlockSelf
	}
	return s.followRepo.Block(ctx, blockerID, blockedID)
}

// ListFollowing returns who userID follows, ordered by username.
func (s *FollowService) ListFollowing(ctx context.Context, userID int64) ([]model.UserSummary, error) {
	return s.followRepo.ListFollowing(ctx, userID)
}
