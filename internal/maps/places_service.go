package maps

import (
	"context"
	"fmt"
	"log"

	"googlemaps.github.io/maps"

	"routefinder/internal/types"
)

// PlacesService handles interactions with Google Places API. It is an optional
// alternative to the default search-endpoint POI lookup, selected at wire-up
// time when a Maps API key is configured.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Nearby searches for amenities matching the category keyword around center.
// The contract matches the default POI finder: failures are swallowed and
// reported as an empty result set.
func (s *PlacesService) Nearby(ctx context.Context, center types.Point, radiusMeters int, category string) []types.Point {
	r := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: center.Lat, Lng: center.Lng},
		Radius:   uint(radiusMeters),
		Keyword:  category,
	}

	resp, err := s.client.NearbySearch(ctx, r)
	if err != nil {
		log.Printf("places: nearby %q search: %v", category, err)
		return nil
	}

	var points []types.Point
	for _, result := range resp.Results {
		loc := result.Geometry.Location
		points = append(points, types.Point{Lat: loc.Lat, Lng: loc.Lng})
	}
	return points
}
