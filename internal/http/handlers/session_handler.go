// README: Session handler — re-displays the last-entered place fields.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessions SessionStore
}

func NewSessionHandler(sessions SessionStore) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Places handles GET /api/session/places so the form can restore what the
// user last typed or spoke.
func (h *SessionHandler) Places(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		writeError(c, http.StatusBadRequest, "missing "+sessionHeader+" header")
		return
	}

	places, err := h.sessions.GetPlaces(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"start_place": places.Start,
		"end_place":   places.End,
	})
}
