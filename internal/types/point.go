// README: Common geographic value object used across modules.
package types

// Point is a WGS84 coordinate pair in decimal degrees. Points are produced by
// geocoding and never mutated afterwards.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
