// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"

	"routefinder/internal/http/handlers"
	"routefinder/internal/http/middleware"
	"routefinder/internal/modules/catalog"
	"routefinder/internal/modules/trip"
)

type RouterDeps struct {
	Trip       *trip.Service
	Catalog    *catalog.Service
	Recognizer handlers.Transcriber
	Sessions   handlers.SessionStore
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	routeHandler := handlers.NewRouteHandler(deps.Trip, deps.Catalog, deps.Sessions)
	r.POST("/api/routes", routeHandler.Build)

	if deps.Recognizer != nil {
		voiceHandler := handlers.NewVoiceHandler(deps.Recognizer)
		r.POST("/api/voice/transcribe", voiceHandler.Transcribe)
	}

	if deps.Sessions != nil {
		sessionHandler := handlers.NewSessionHandler(deps.Sessions)
		r.GET("/api/session/places", sessionHandler.Places)
	}

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	r.GET("/api/catalog/modes", catalogHandler.Modes)
	r.GET("/api/catalog/languages", catalogHandler.Languages)
	r.GET("/api/emergency", handlers.Emergency)

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	return r
}
