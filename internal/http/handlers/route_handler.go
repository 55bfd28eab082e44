// README: Route handler — builds an itinerary from the submitted form values.
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"routefinder/internal/modules/session"
	"routefinder/internal/modules/trip"
)

// sessionHeader identifies the caller's UI session for place re-display.
const sessionHeader = "X-Session-ID"

// SessionStore is the subset of the session store the route handler needs.
// nil disables session behavior entirely.
type SessionStore interface {
	GetPlaces(ctx context.Context, sessionID string) (session.Places, error)
	SetPlaces(ctx context.Context, sessionID string, p session.Places) error
}

type RouteHandler struct {
	trip     *trip.Service
	catalog  LanguageResolver
	sessions SessionStore
}

// LanguageResolver maps a language display name to its translation code.
type LanguageResolver interface {
	CodeFor(name string) (string, bool)
}

func NewRouteHandler(tripSvc *trip.Service, catalog LanguageResolver, sessions SessionStore) *RouteHandler {
	return &RouteHandler{trip: tripSvc, catalog: catalog, sessions: sessions}
}

type buildRouteReq struct {
	StartPlace string `json:"start_place"`
	EndPlace   string `json:"end_place"`
	Mode       string `json:"mode"`
	Language   string `json:"language"`
}

type buildRouteResp struct {
	*trip.Itinerary
	POINotice string `json:"poi_notice,omitempty"`
}

// Build handles POST /api/routes.
func (h *RouteHandler) Build(c *gin.Context) {
	var req buildRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.StartPlace = strings.TrimSpace(req.StartPlace)
	req.EndPlace = strings.TrimSpace(req.EndPlace)

	// Fill blank fields from the session's last-entered places so a voice
	// input captured moments ago survives a partial form submit.
	sessionID := c.GetHeader(sessionHeader)
	if h.sessions != nil && sessionID != "" {
		if remembered, err := h.sessions.GetPlaces(c.Request.Context(), sessionID); err == nil {
			if req.StartPlace == "" {
				req.StartPlace = remembered.Start
			}
			if req.EndPlace == "" {
				req.EndPlace = remembered.End
			}
		}
	}

	code, ok := h.resolveLanguage(req.Language)
	if !ok {
		writeError(c, http.StatusBadRequest, "unknown language: "+req.Language)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	itinerary, err := h.trip.BuildItinerary(ctx, trip.BuildRequest{
		StartPlace:   req.StartPlace,
		EndPlace:     req.EndPlace,
		Mode:         req.Mode,
		LanguageCode: code,
	})
	if err != nil {
		writeTripError(c, err)
		return
	}

	if h.sessions != nil && sessionID != "" {
		err := h.sessions.SetPlaces(c.Request.Context(), sessionID, session.Places{
			Start: itinerary.StartPlace,
			End:   itinerary.EndPlace,
		})
		if err != nil {
			log.Printf("session: remember places for %q: %v", sessionID, err)
		}
	}

	resp := buildRouteResp{Itinerary: itinerary}
	if len(itinerary.NearbyPOIs) == 0 {
		resp.POINotice = "No nearby hospitals found."
	}
	writeJSON(c, http.StatusOK, resp)
}

// resolveLanguage accepts either a catalog display name ("Hindi") or a raw
// two-letter code ("hi"). Empty input means English.
func (h *RouteHandler) resolveLanguage(language string) (string, bool) {
	language = strings.TrimSpace(language)
	if language == "" {
		return "en", true
	}
	if code, ok := h.catalog.CodeFor(language); ok {
		return code, true
	}
	if len(language) == 2 {
		return strings.ToLower(language), true
	}
	return "", false
}
