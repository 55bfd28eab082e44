// Package trip — estimator contains the pure trip arithmetic.
package trip

import (
	"math"

	"routefinder/internal/modules/catalog"
	"routefinder/internal/types"
)

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// EstimateTrip computes distance, duration, and fare for a trip between two
// coordinates under the given vehicle profile. It always succeeds for finite
// inputs; identical points yield the zero Estimate.
func EstimateTrip(a, b types.Point, profile catalog.VehicleProfile) Estimate {
	distanceKm := haversineKm(a, b)

	speed := profile.SpeedKmh
	if speed <= 0 {
		speed = catalog.DefaultSpeedKmh
	}

	return Estimate{
		DistanceKm:      distanceKm,
		DurationMinutes: distanceKm / speed * 60,
		Fare:            distanceKm * profile.FarePerKm,
	}
}
