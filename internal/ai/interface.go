package ai

import (
	"context"
)

// DirectionsProvider defines the contract for generating natural-language directions.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type DirectionsProvider interface {
	// GenerateDirections produces free-text directions between two named places.
	// The text is advisory prose, not a routed path.
	GenerateDirections(ctx context.Context, startName, endName string) (string, error)
}
