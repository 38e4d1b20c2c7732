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

// FollowHandler exposes the follow/unfollow toggle and block over the
// social graph store.
type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow creates the follow edge. Returns 201 on a new edge, 200 when
// already following.
// POST /users/{userId}/follow
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followingID, req, ok := h.decodeEdge(w, r)
	if !ok {
		return
	}

	outcome, err := h.followService.Follow(r.Context(), req.UserID, followingID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCannotFollowSelf):
			httputil.WriteBadRequest(w, "Cannot follow yourself")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] Follow handler: %v", err)
			httputil.WriteInternalError(w, "Failed to follow")
		}
		return
	}

	if outcome == model.AlreadyFollowing {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Already following"})
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Followed successfully"})
}

// Unfollow deletes the follow edge; deleting an absent edge still succeeds
// POST /users/{userId}/unfollow
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followingID, req, ok := h.decodeEdge(w, r)
	if !ok {
		return
	}

	outcome, err := h.followService.Unfollow(r.Context(), req.UserID, followingID)
	if err != nil {
		log.Printf("[ERROR] Unfollow handler: %v", err)
		httputil.WriteInternalError(w, "Failed to unfollow")
		return
	}

	if outcome == model.NotFollowing {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Not following"})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Unfollowed successfully"})
}

// Block hides the target's posts from the actor's feed
// POST /users/{userId}/block
func (h *FollowHandler) Block(w http.ResponseWriter, r *http.Request) {
	blockedID, req, ok := h.decodeEdge(w, r)
	if !ok {
		return
	}

	if err := h.followService.Block(r.Context(), req.UserID, blockedID); err != nil {
		switch {
		case errors.Is(err, model.ErrCannotBlockSelf):
			httputil.WriteBadRequest(w, "Cannot block yourself")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.Printf("[ERROR] Block handler: %v", err)
			httputil.WriteInternalError(w, "Failed to block user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "User blocked"})
}

// ListFollowing returns who a user follows, ordered by username
// GET /users/{userId}/following
func (h *FollowHandler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	users, err := h.followService.ListFollowing(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] ListFollowing handler: %v", err)
		httputil.WriteInternalError(w, "Failed to fetch following list")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"following": users,
	})
}

// decodeEdge parses the target user from the URL and the acting user from
// the body, writing the 400 itself when either is missing or malformed.
func (h *FollowHandler) decodeEdge(w http.ResponseWriter, r *http.Request) (int64, model.ActorRequest, bool) {
	targetID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return 0, model.ActorRequest{}, false
	}

	var req model.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return 0, model.ActorRequest{}, false
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Missing user_id")
		return 0, model.ActorRequest{}, false
	}

	return targetID, req, true
}
