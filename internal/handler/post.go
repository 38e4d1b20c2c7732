package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/banjomaryam17/socialmediaAPP/internal/httputil"
	"github.com/banjomaryam17/socialmediaAPP/internal/model"
	"github.com/banjomaryam17/socialmediaAPP/internal/service"
	"github.com/banjomaryam17/socialmediaAPP/internal/transport/http/middleware"
)

// PostHandler groups post publication, the feed, the like toggle, and
// report intake.
type PostHandler struct {
	postService *service.PostService
	feedService *service.FeedService
}

func NewPostHandler(postService *service.PostService, feedService *service.FeedService) *PostHandler {
	return &PostHandler{
		postService: postService,
		feedService: feedService,
	}
}

// Create handles post publication
// POST /posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Missing user_id or text")
		return
	}

	post, err := h.postService.Create(r.Context(), req.UserID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTextRequired):
			httputil.WriteBadRequest(w, "Missing user_id or text")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] Create post handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Post created",
		"post":    post,
	})
}

// Feed handles the viewer-relative post listing
// GET /posts?viewer_id=
func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	var viewerID *int64
	if id, ok := middleware.GetViewerIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	posts, err := h.feedService.GetFeed(r.Context(), viewerID)
	if err != nil {
		log.Printf("[ERROR] Feed handler: %v", err)
		httputil.WriteInternalError(w, "Failed to load posts")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
	})
}

// ToggleLike flips the acting user's like on a post. Returns 201 when the
// toggle lands on liked, 200 on unliked.
// POST /posts/{postId}/like
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Missing user_id")
		return
	}

	outcome, err := h.postService.ToggleLike(r.Context(), req.UserID, postID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] ToggleLike handler: %v", err)
			httputil.WriteInternalError(w, "Failed to process like")
		}
		return
	}

	if outcome == model.Liked {
		httputil.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Post liked"})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Post unliked"})
}

// Report records a report against a post
// POST /posts/{postId}/report
func (h *PostHandler) Report(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Missing user_id")
		return
	}

	if err := h.postService.Report(r.Context(), req.UserID, postID, req.Reason); err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] Report handler: %v", err)
			httputil.WriteInternalError(w, "Failed to report post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Post reported"})
}
