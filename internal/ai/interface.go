package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// ExtractRoute pulls the starting city and target city out of an
	// unstructured travel query. Either field may come back empty when the
	// model could not confidently identify it.
	ExtractRoute(ctx context.Context, userText string) (*RouteResult, error)

	// GenerateItinerary composes a Markdown itinerary from the user's request
	// and the enrichment data gathered from the mapping service.
	GenerateItinerary(ctx context.Context, req ItineraryRequest) (string, error)
}
