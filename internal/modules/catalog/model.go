// README: Catalog definitions for vehicle profiles and translation languages.
package catalog

// VehicleProfile maps a transport mode to its fixed average speed and fare rate.
type VehicleProfile struct {
	Mode      string  `json:"mode"`
	SpeedKmh  float64 `json:"speed_kmh"`
	FarePerKm float64 `json:"fare_per_km"`
}

// Language pairs a display name with its two-letter translation code.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
