package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/banjomaryam17/socialmediaAPP/internal/avatar"
	"github.com/banjomaryam17/socialmediaAPP/internal/model"
	"github.com/banjomaryam17/socialmediaAPP/internal/repository"
)

// SearchLimit caps the number of rows a username search returns.
const SearchLimit = 20

// UserService owns identity: registration, credential verification, and the
// viewer-relative user directory.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account. The raw password is hashed with bcrypt
// before anything touches the store, and the returned user carries no
// credential in either form. Accounts without an avatar get a generated
// placeholder reference.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, model.ErrUsernameRequired
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, model.ErrPasswordRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	avatarURL := req.AvatarURL
	if avatarURL == nil {
		generated := avatar.URLFor(displayName(req), avatar.DefaultSize)
		avatarURL = &generated
	}

	user := &model.User{
		Username:  req.Username,
		Password:  string(hashedPassword),
		AvatarURL: avatarURL,
	}
	if req.FirstName != "" {
		user.FirstName = &req.FirstName
	}
	if req.LastName != "" {
		user.LastName = &req.LastName
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Login verifies a username/password pair. An unknown username and a wrong
// password are distinct failures: the surrounding system reports them
// separately.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidPassword
	}

	user.Password = ""
	return user, nil
}

// List returns the user directory relative to the viewer. A nil viewer sees
// everyone with is_following false.
func (s *UserService) List(ctx context.Context, viewerID *int64) ([]model.UserStats, error) {
	return s.repo.ListAll(ctx, orZero(viewerID))
}

// Search finds users by username substring, case-insensitive, excluding the
// viewer, capped at SearchLimit rows.
func (s *UserService) Search(ctx context.Context, viewerID *int64, query string) ([]model.SearchResult, error) {
	return s.repo.Search(ctx, orZero(viewerID), query, SearchLimit)
}

// displayName picks the most human name available for avatar generation.
func displayName(req *model.RegisterRequest) string {
	name := strings.TrimSpace(req.FirstName + " " + req.LastName)
	if name == "" {
		name = req.Username
	}
	return name
}

// orZero collapses an absent viewer to id 0, which matches no edge rows.
func orZero(viewerID *int64) int64 {
	if viewerID == nil {
		return 0
	}
	return *viewerID
}
