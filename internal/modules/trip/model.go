// README: Trip result models — estimate and assembled itinerary.
package trip

import "routefinder/internal/types"

// Estimate is derived deterministically from two coordinates and one vehicle
// profile. It is read-only once computed.
type Estimate struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
	Fare            float64 `json:"fare"`
}

// Itinerary is the aggregate result of one route request. It is built fresh per
// request and never persisted; Audio marshals as base64 in JSON.
type Itinerary struct {
	StartPlace   string        `json:"start_place"`
	EndPlace     string        `json:"end_place"`
	StartPoint   types.Point   `json:"start_point"`
	EndPoint     types.Point   `json:"end_point"`
	Estimate     Estimate      `json:"estimate"`
	Directions   string        `json:"directions"`
	LanguageCode string        `json:"language_code"`
	Audio        []byte        `json:"audio,omitempty"`
	NearbyPOIs   []types.Point `json:"nearby_pois"`
}
