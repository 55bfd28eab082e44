// README: Trip service sequences geocoding, estimation, directions, localization, and POI lookup.
package trip

import (
	"context"
	"errors"
	"log"
	"strings"

	"routefinder/internal/modules/catalog"
	"routefinder/internal/types"
)

var (
	ErrMissingInput       = errors.New("start and end locations are required")
	ErrUnresolvedLocation = errors.New("could not retrieve coordinates for the specified location")
)

// DirectionsFallback replaces the generated directions whenever the language
// service fails or returns nothing. The rest of the itinerary still ships.
const DirectionsFallback = "Sorry, there was an error generating the directions."

// Geocoder resolves a place name to a coordinate.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (types.Point, error)
}

// DirectionsGenerator produces free-text directions between two named places.
type DirectionsGenerator interface {
	GenerateDirections(ctx context.Context, startName, endName string) (string, error)
}

// Localizer translates text and synthesizes audio for it, degrading softly.
type Localizer interface {
	Localize(ctx context.Context, text, languageCode string) (string, []byte)
}

// POIFinder lists amenity coordinates near a center. It never fails: an empty
// slice stands in for both "nothing there" and "lookup broke".
type POIFinder interface {
	Nearby(ctx context.Context, center types.Point, radiusMeters int, category string) []types.Point
}

type ServiceDeps struct {
	Geocoder   Geocoder
	Directions DirectionsGenerator
	Localizer  Localizer
	POI        POIFinder
	Catalog    *catalog.Service
}

type POIConfig struct {
	RadiusMeters int
	Category     string
}

// Service owns the end-to-end itinerary build for one request.
type Service struct {
	geocoder   Geocoder
	directions DirectionsGenerator
	localizer  Localizer
	poi        POIFinder
	catalog    *catalog.Service
	poiCfg     POIConfig
}

func NewService(deps ServiceDeps, poiCfg POIConfig) *Service {
	return &Service{
		geocoder:   deps.Geocoder,
		directions: deps.Directions,
		localizer:  deps.Localizer,
		poi:        deps.POI,
		catalog:    deps.Catalog,
		poiCfg:     poiCfg,
	}
}

type BuildRequest struct {
	StartPlace   string
	EndPlace     string
	Mode         string
	LanguageCode string
}

// BuildItinerary runs the pipeline strictly in sequence. Only missing input and
// failed geocoding abort the build; once both endpoints resolve, the call
// always returns a complete Itinerary — directions may be the fallback string
// and the POI list may be empty, but those are content, not errors.
func (s *Service) BuildItinerary(ctx context.Context, req BuildRequest) (*Itinerary, error) {
	start := strings.TrimSpace(req.StartPlace)
	end := strings.TrimSpace(req.EndPlace)
	if start == "" || end == "" {
		return nil, ErrMissingInput
	}

	startPt, err := s.geocoder.Resolve(ctx, start)
	if err != nil {
		log.Printf("trip: resolve start %q: %v", start, err)
		return nil, ErrUnresolvedLocation
	}
	endPt, err := s.geocoder.Resolve(ctx, end)
	if err != nil {
		log.Printf("trip: resolve end %q: %v", end, err)
		return nil, ErrUnresolvedLocation
	}

	estimate := EstimateTrip(startPt, endPt, s.catalog.ProfileFor(req.Mode))

	text, err := s.directions.GenerateDirections(ctx, start, end)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("trip: directions generation degraded: %v", err)
		text = DirectionsFallback
	}

	code := req.LanguageCode
	if code == "" {
		code = "en"
	}
	translated, audio := s.localizer.Localize(ctx, text, code)

	pois := s.poi.Nearby(ctx, startPt, s.poiCfg.RadiusMeters, s.poiCfg.Category)
	if pois == nil {
		pois = []types.Point{}
	}

	return &Itinerary{
		StartPlace:   start,
		EndPlace:     end,
		StartPoint:   startPt,
		EndPoint:     endPt,
		Estimate:     estimate,
		Directions:   translated,
		LanguageCode: code,
		Audio:        audio,
		NearbyPOIs:   pois,
	}, nil
}
