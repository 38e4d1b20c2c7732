package http

import (
	"fmt"
	"log"
	stdhttp "net/http"

	"github.com/banjomaryam17/socialmediaAPP/internal/config"
	"github.com/banjomaryam17/socialmediaAPP/internal/database"
	"github.com/banjomaryam17/socialmediaAPP/internal/handler"
	"github.com/banjomaryam17/socialmediaAPP/internal/repository"
	"github.com/banjomaryam17/socialmediaAPP/internal/service"
)

// Run loads configuration, connects the store, wires every layer, and
// serves until the process exits.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Services
	userService := service.NewUserService(userRepo)
	followService := service.NewFollowService(followRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo)
	feedService := service.NewFeedService(postRepo)

	// Handlers
	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(userService),
		UserHandler:    handler.NewUserHandler(userService),
		FollowHandler:  handler.NewFollowHandler(followService),
		PostHandler:    handler.NewPostHandler(postService, feedService),
		CommentHandler: handler.NewCommentHandler(commentService),
		HealthHandler:  handler.NewHealthHandler(db),
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
