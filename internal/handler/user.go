package handler

import (
	"log"
	"net/http"

	"github.com/banjomaryam17/socialmediaAPP/internal/httputil"
	"github.com/banjomaryam17/socialmediaAPP/internal/service"
	"github.com/banjomaryam17/socialmediaAPP/internal/transport/http/middleware"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns the user directory relative to the viewer
// GET /users?viewer_id=
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var viewerID *int64
	if id, ok := middleware.GetViewerIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	users, err := h.userService.List(r.Context(), viewerID)
	if err != nil {
		log.Printf("[ERROR] List users handler: %v", err)
		httputil.WriteInternalError(w, "Failed to fetch users")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
	})
}

// Search matches usernames by case-insensitive substring. An empty q
// matches everyone, capped by the search limit.
// GET /users/search?q=&viewer_id=
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var viewerID *int64
	if id, ok := middleware.GetViewerIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	users, err := h.userService.Search(r.Context(), viewerID, query)
	if err != nil {
		log.Printf("[ERROR] Search handler: %v", err)
		httputil.WriteInternalError(w, "Failed to search users")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
	})
}
