// README: Entry point; loads config, wires adapters, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"routefinder/internal/ai"
	"routefinder/internal/config"
	"routefinder/internal/geocode"
	httptransport "routefinder/internal/http"
	"routefinder/internal/infra"
	"routefinder/internal/localize"
	gmaps "routefinder/internal/maps"
	"routefinder/internal/modules/catalog"
	"routefinder/internal/modules/session"
	"routefinder/internal/modules/trip"
	"routefinder/internal/voice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	directions, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer directions.Close()

	translator, err := localize.NewGoogleTranslator(ctx, cfg.Google.CloudKey)
	if err != nil {
		log.Fatalf("translate init: %v", err)
	}
	defer translator.Close()

	synthesizer, err := localize.NewGoogleSynthesizer(ctx, cfg.Google.CloudKey)
	if err != nil {
		log.Fatalf("text-to-speech init: %v", err)
	}
	defer synthesizer.Close()

	recognizer, err := voice.NewRecognizer(ctx, cfg.Google.CloudKey)
	if err != nil {
		log.Fatalf("speech init: %v", err)
	}
	defer recognizer.Close()

	geocoder := geocode.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent)

	var poiFinder trip.POIFinder = geocoder
	if cfg.Google.MapsKey != "" {
		places, err := gmaps.NewPlacesService(cfg.Google.MapsKey)
		if err != nil {
			log.Fatalf("places init: %v", err)
		}
		poiFinder = places
	}

	catalogSvc := loadCatalog(ctx, cfg.DB.DSN)

	var sessions *session.Store
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		sessions = session.NewStore(redisClient, time.Duration(cfg.Redis.SessionTTLMinutes)*time.Minute)
	}

	tripSvc := trip.NewService(trip.ServiceDeps{
		Geocoder:   geocoder,
		Directions: directions,
		Localizer:  localize.NewService(translator, synthesizer),
		POI:        poiFinder,
		Catalog:    catalogSvc,
	}, trip.POIConfig{
		RadiusMeters: cfg.POI.RadiusMeters,
		Category:     cfg.POI.Category,
	})

	deps := httptransport.RouterDeps{
		Trip:       tripSvc,
		Catalog:    catalogSvc,
		Recognizer: recognizer,
	}
	if sessions != nil {
		deps.Sessions = sessions
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(deps)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// loadCatalog reads vehicle profiles and languages from Postgres when a DSN is
// configured, falling back to the compiled-in defaults otherwise.
func loadCatalog(ctx context.Context, dsn string) *catalog.Service {
	if dsn == "" {
		return catalog.NewDefaultService()
	}

	pool, err := infra.NewDB(ctx, dsn)
	if err != nil {
		log.Printf("catalog: db connect failed, using defaults: %v", err)
		return catalog.NewDefaultService()
	}

	store := catalog.NewStore(pool)
	profiles, err := store.LoadProfiles(ctx)
	if err != nil || len(profiles) == 0 {
		log.Printf("catalog: profile load failed, using defaults: %v", err)
		profiles = catalog.DefaultProfiles()
	}
	languages, err := store.LoadLanguages(ctx)
	if err != nil || len(languages) == 0 {
		log.Printf("catalog: language load failed, using defaults: %v", err)
		languages = catalog.DefaultLanguages()
	}
	return catalog.NewService(profiles, languages)
}
