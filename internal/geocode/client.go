// Package geocode resolves place names and searches nearby amenities through a
// Nominatim-compatible search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"routefinder/internal/types"
)

// ErrNotFound is returned when the service yields no candidate for a place.
// Callers must treat it as terminal for the current request; resolution is
// never retried.
var ErrNotFound = errors.New("no geocoding candidates found")

// searchResult mirrors one element of the service's JSON candidate array.
// Coordinates arrive as strings on the wire.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Client talks to the place-search endpoint. Every request carries the
// configured User-Agent, which the service requires for client identification.
type Client struct {
	baseURL   string
	userAgent string
	session   *http.Client
}

func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		session:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve geocodes a free-text place name to a coordinate, taking the first
// candidate only. Network errors, bad payloads, and empty candidate lists all
// collapse to ErrNotFound.
func (c *Client) Resolve(ctx context.Context, place string) (types.Point, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	results, err := c.search(ctx, q)
	if err != nil {
		log.Printf("geocode: search %q: %v", place, err)
		return types.Point{}, fmt.Errorf("resolve %q: %w", place, ErrNotFound)
	}
	if len(results) == 0 {
		return types.Point{}, fmt.Errorf("resolve %q: %w", place, ErrNotFound)
	}

	pt, err := parsePoint(results[0])
	if err != nil {
		log.Printf("geocode: parse candidate for %q: %v", place, err)
		return types.Point{}, fmt.Errorf("resolve %q: %w", place, ErrNotFound)
	}
	return pt, nil
}

// Nearby searches for amenities of the given category around a center point.
// Order is whatever the service returns. Failure is swallowed and reported as
// an empty result set, never as an error.
func (c *Client) Nearby(ctx context.Context, center types.Point, radiusMeters int, category string) []types.Point {
	q := url.Values{}
	q.Set("q", category)
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(center.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(center.Lng, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(radiusMeters))

	results, err := c.search(ctx, q)
	if err != nil {
		log.Printf("geocode: nearby %q search: %v", category, err)
		return nil
	}

	var points []types.Point
	for _, r := range results {
		pt, err := parsePoint(r)
		if err != nil {
			continue
		}
		points = append(points, pt)
	}
	return points
}

func (c *Client) search(ctx context.Context, q url.Values) ([]searchResult, error) {
	endpoint := c.baseURL + "/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return decoded, nil
}

func parsePoint(r searchResult) (types.Point, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("invalid lat %q", r.Lat)
	}
	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("invalid lon %q", r.Lon)
	}
	return types.Point{Lat: lat, Lng: lng}, nil
}
