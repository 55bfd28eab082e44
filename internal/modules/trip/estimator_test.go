package trip

import (
	"math"
	"testing"

	"routefinder/internal/modules/catalog"
	"routefinder/internal/types"
)

var (
	delhi = types.Point{Lat: 28.61, Lng: 77.21}
	agra  = types.Point{Lat: 27.18, Lng: 78.01}
)

func TestEstimateTrip_IdenticalPointsAreZero(t *testing.T) {
	for _, profile := range catalog.DefaultProfiles() {
		t.Run(profile.Mode, func(t *testing.T) {
			est := EstimateTrip(delhi, delhi, profile)
			if est.DistanceKm != 0 || est.DurationMinutes != 0 || est.Fare != 0 {
				t.Errorf("EstimateTrip(a,a,%s) = %+v, want all zero", profile.Mode, est)
			}
		})
	}
}

func TestEstimateTrip_DistanceIsSymmetric(t *testing.T) {
	profile := catalog.VehicleProfile{Mode: "Car", SpeedKmh: 60, FarePerKm: 10}
	d1 := EstimateTrip(delhi, agra, profile).DistanceKm
	d2 := EstimateTrip(agra, delhi, profile).DistanceKm
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestEstimateTrip_FormulaHoldsExactly(t *testing.T) {
	profile := catalog.VehicleProfile{Mode: "Bus", SpeedKmh: 40, FarePerKm: 2}
	est := EstimateTrip(delhi, agra, profile)

	if diff := math.Abs(est.DurationMinutes - est.DistanceKm/40*60); diff > 1e-9 {
		t.Errorf("duration off formula by %g", diff)
	}
	if diff := math.Abs(est.Fare - est.DistanceKm*2); diff > 1e-9 {
		t.Errorf("fare off formula by %g", diff)
	}
}

func TestEstimateTrip_DelhiToAgraByCar(t *testing.T) {
	profile := catalog.VehicleProfile{Mode: "Car", SpeedKmh: 60, FarePerKm: 10}
	est := EstimateTrip(delhi, agra, profile)

	// Reference geodesic distance for these endpoints is ~177.4 km.
	if math.Abs(est.DistanceKm-177.4) > 1.0 {
		t.Errorf("DistanceKm = %f, want ~177.4", est.DistanceKm)
	}
	// At 60 km/h the duration in minutes equals the distance in kilometres.
	if math.Abs(est.DurationMinutes-est.DistanceKm) > 1e-9 {
		t.Errorf("DurationMinutes = %f, want %f", est.DurationMinutes, est.DistanceKm)
	}
	if math.Abs(est.Fare-est.DistanceKm*10) > 1e-9 {
		t.Errorf("Fare = %f, want %f", est.Fare, est.DistanceKm*10)
	}
}

func TestEstimateTrip_DelhiToAgraWalkingIsFree(t *testing.T) {
	profile := catalog.VehicleProfile{Mode: "Walking", SpeedKmh: 5, FarePerKm: 0}
	est := EstimateTrip(delhi, agra, profile)

	if math.Abs(est.DurationMinutes-est.DistanceKm/5*60) > 1e-9 {
		t.Errorf("DurationMinutes = %f, want %f", est.DurationMinutes, est.DistanceKm/5*60)
	}
	if est.Fare != 0 {
		t.Errorf("Fare = %f, want exactly 0", est.Fare)
	}
}

func TestEstimateTrip_ZeroSpeedProfileUsesDefault(t *testing.T) {
	est := EstimateTrip(delhi, agra, catalog.VehicleProfile{Mode: "Broken"})
	want := est.DistanceKm / catalog.DefaultSpeedKmh * 60
	if math.Abs(est.DurationMinutes-want) > 1e-9 {
		t.Errorf("DurationMinutes = %f, want %f", est.DurationMinutes, want)
	}
}

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 28.61, Lng: 77.21},
			b:         types.Point{Lat: 28.61, Lng: 77.21},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "New York to Los Angeles (~3944km)",
			a:         types.Point{Lat: 40.7128, Lng: -74.0060},
			b:         types.Point{Lat: 34.0522, Lng: -118.2437},
			wantKm:    3944,
			tolerance: 50,
		},
		{
			name:      "one degree of latitude at the equator (~111km)",
			a:         types.Point{Lat: 0, Lng: 0},
			b:         types.Point{Lat: 1, Lng: 0},
			wantKm:    111.2,
			tolerance: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("haversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}
