// README: Config loader with env defaults for HTTP, geocoding, Google APIs, DB, and Redis.
package config

import (
	"os"
	"strconv"
)

type POIConfig struct {
	RadiusMeters int
	Category     string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr              string
		SessionTTLMinutes int
	}
	Geocode struct {
		BaseURL   string
		UserAgent string
	}
	POI POIConfig
	AI  struct {
		GeminiKey string
	}
	Google struct {
		CloudKey string
		MapsKey  string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ROUTEFINDER_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("ROUTEFINDER_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("ROUTEFINDER_REDIS_ADDR", "")
	cfg.Redis.SessionTTLMinutes = envOrDefaultInt("ROUTEFINDER_SESSION_TTL_MIN", 60)
	cfg.Geocode.BaseURL = envOrDefault("ROUTEFINDER_GEOCODE_URL", "https://nominatim.openstreetmap.org")
	cfg.Geocode.UserAgent = envOrDefault("ROUTEFINDER_GEOCODE_USER_AGENT", "RouteFinder/1.0")
	cfg.POI.RadiusMeters = envOrDefaultInt("ROUTEFINDER_POI_RADIUS_M", 5000)
	cfg.POI.Category = envOrDefault("ROUTEFINDER_POI_CATEGORY", "hospital")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.Google.CloudKey = envOrError("GOOGLE_CLOUD_API_KEY")
	cfg.Google.MapsKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
