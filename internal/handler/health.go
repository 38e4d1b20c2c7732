package handler

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/banjomaryam17/socialmediaAPP/internal/httputil"
)

// HealthHandler reports liveness plus a round trip to the store.
type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health checks database connectivity
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	var now time.Time
	if err := h.db.GetContext(r.Context(), &now, `SELECT NOW()`); err != nil {
		httputil.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Database unreachable",
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"database": map[string]interface{}{
			"connected":    true,
			"current_time": now,
		},
	})
}
