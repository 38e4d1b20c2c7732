package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/banjomaryam17/socialmediaAPP/internal/model"
	"github.com/banjomaryam17/socialmediaAPP/internal/service"
)

// stubUserRepository backs a real UserService in handler tests, so requests
// travel the same decode/validate/service path they do in production.
type stubUserRepository struct {
	createFn func(ctx context.Context, user *model.User) error
}

func (s *stubUserRepository) Create(ctx context.Context, user *model.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (s *stubUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepository) ListAll(ctx context.Context, viewerID int64) ([]model.UserStats, error) {
	return nil, nil
}

func (s *stubUserRepository) Search(ctx context.Context, viewerID int64, query string, limit int) ([]model.SearchResult, error) {
	return nil, nil
}

func postJSON(t *testing.T, handlerFn http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFn(rec, req)
	return rec
}

func TestAuthHandler_Signup_WhitespaceCredentialsAreBadRequest(t *testing.T) {
	repo := &stubUserRepository{
		createFn: func(ctx context.Context, user *model.User) error {
			t.Error("store should not be touched for whitespace-only input")
			return nil
		},
	}
	h := NewAuthHandler(service.NewUserService(repo))

	// A whitespace-only value survives the required tag; the service must
	// still surface it as invalid input, not a server failure.
	cases := []struct {
		name string
		body string
	}{
		{"whitespace username", `{"username":"   ","password":"password123"}`},
		{"whitespace password", `{"username":"alice","password":" \t "}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Signup, "/auth/signup", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body)
			}
			if !strings.Contains(rec.Body.String(), "BAD_REQUEST") {
				t.Errorf("body should carry the BAD_REQUEST code: %s", rec.Body)
			}
		})
	}
}

func TestAuthHandler_Signup_DuplicateUsernameIsConflict(t *testing.T) {
	repo := &stubUserRepository{
		createFn: func(ctx context.Context, user *model.User) error {
			return model.ErrUsernameExists
		},
	}
	h := NewAuthHandler(service.NewUserService(repo))

	rec := postJSON(t, h.Signup, "/auth/signup", `{"username":"alice","password":"password123"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusConflict, rec.Body)
	}
}
