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
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create adds a comment to a post
// POST /posts/{postId}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Missing user_id or text")
		return
	}

	comment, err := h.commentService.Create(r.Context(), postID, req.UserID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTextRequired):
			httputil.WriteBadRequest(w, "Missing user_id or text")
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] Create comment handler: %v", err)
			httputil.WriteInternalError(w, "Failed to add comment")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Comment added",
		"comment": comment,
	})
}

// List returns a post's comments in insertion order
// GET /posts/{postId}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postId"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	comments, err := h.commentService.ListByPost(r.Context(), postID)
	if err != nil {
		log.Printf("[ERROR] List comments handler: %v", err)
		httputil.WriteInternalError(w, "Failed to fetch comments")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"comments": comments,
	})
}
