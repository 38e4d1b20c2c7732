package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/banjomaryam17/socialmediaAPP/internal/handler"
	viewermw "github.com/banjomaryam17/socialmediaAPP/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	FollowHandler  *handler.FollowHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	HealthHandler  *handler.HealthHandler
}

// NewRouter creates and configures a new Chi router with all route groups.
// Reads carry the optional viewer_id query param; writes carry the acting
// user's id in the body. No session middleware exists: the caller is
// trusted to supply the acting identity.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", cfg.HealthHandler.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", cfg.AuthHandler.Signup)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	r.Route("/posts", func(r chi.Router) {
		r.With(viewermw.ViewerContext).Get("/", cfg.PostHandler.Feed)
		r.Post("/", cfg.PostHandler.Create)
		r.Post("/{postId}/like", cfg.PostHandler.ToggleLike)
		r.Post("/{postId}/report", cfg.PostHandler.Report)
		r.Get("/{postId}/comments", cfg.CommentHandler.List)
		r.Post("/{postId}/comments", cfg.CommentHandler.Create)
	})

	r.Route("/users", func(r chi.Router) {
		r.With(viewermw.ViewerContext).Get("/", cfg.UserHandler.List)
		r.With(viewermw.ViewerContext).Get("/search", cfg.UserHandler.Search)
		r.Get("/{userId}/following", cfg.FollowHandler.ListFollowing)
		r.Post("/{userId}/follow", cfg.FollowHandler.Follow)
		r.Post("/{userId}/unfollow", cfg.FollowHandler.Unfollow)
		r.Post("/{userId}/block", cfg.FollowHandler.Block)
	})

	return r
}
