// README: Trip planner orchestrates the extract → enrich → synthesize pipeline.
package service

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/internal/ai"
	"wayfarer/internal/maps"
)

const (
	// clarificationMessage is persisted verbatim when extraction cannot name
	// both cities; enrichment and synthesis never run on this path.
	clarificationMessage = "❌ I couldn't recognize your source or destination. Please specify them clearly (e.g., 'Plan a trip from New York to London')."

	// itineraryFailureMessage replaces the synthesis output when the final
	// model call fails.
	itineraryFailureMessage = "❌ Failed to generate itinerary. Please check your API keys."
)

// Geocoder resolves a city name to a "lat,lng" location.
type Geocoder interface {
	Locate(ctx context.Context, city string) (location string, ok bool)
}

// PlaceFinder lists nearby places of one category around a location.
type PlaceFinder interface {
	Nearby(ctx context.Context, location, category string) []maps.Place
}

// TravelEstimator describes the trip between two free-text locations, or
// returns its unavailable marker.
type TravelEstimator interface {
	TravelInfo(ctx context.Context, origin, destination string) string
}

// PlanResult is the outcome of one pipeline run. Response always holds the
// text shown to the user; Degraded records every fallback substitution so
// logs can tell a real answer from degraded output.
type PlanResult struct {
	Response    string
	Resolved    bool
	Source      string
	Destination string
	Degraded    []string
}

// TripPlanner chains the AI extraction, Google Maps enrichment, and AI
// synthesis stages for a single chat message.
type TripPlanner struct {
	llm     ai.LLMProvider
	geo     Geocoder
	places  PlaceFinder
	metrics TravelEstimator
}

// NewTripPlanner creates a TripPlanner with initialized dependencies.
func NewTripPlanner(llm ai.LLMProvider, geo Geocoder, places PlaceFinder, metrics TravelEstimator) *TripPlanner {
	return &TripPlanner{
		llm:     llm,
		geo:     geo,
		places:  places,
		metrics: metrics,
	}
}

// Plan processes one user message. It never returns an error: every upstream
// failure is absorbed into fallback text, and the result is always a complete
// response to persist.
func (p *TripPlanner) Plan(ctx context.Context, userText string) PlanResult {
	var res PlanResult

	// 1. Extraction stage.
	route, err := p.llm.ExtractRoute(ctx, userText)
	if err != nil {
		res.Degraded = append(res.Degraded, fmt.Sprintf("route extraction failed: %v", err))
		route = &ai.RouteResult{}
	}
	res.Source = route.Source
	res.Destination = route.Destination

	if route.Source == "" || route.Destination == "" {
		res.Response = clarificationMessage
		return res
	}
	res.Resolved = true

	// 2. Enrichment stage. Both calls may fail independently; each failure
	// only degrades its own contribution to the prompt.
	travelInfo := p.metrics.TravelInfo(ctx, route.Source, route.Destination)
	if travelInfo == maps.NoTravelData {
		res.Degraded = append(res.Degraded, "travel metrics unavailable")
	}

	placesInfo, located := p.cityPlaces(ctx, route.Destination)
	if !located {
		res.Degraded = append(res.Degraded, fmt.Sprintf("no location found for %s", route.Destination))
	}

	// 3. Synthesis stage.
	itinerary, err := p.llm.GenerateItinerary(ctx, ai.ItineraryRequest{
		UserText:    userText,
		TravelInfo:  travelInfo,
		PlacesInfo:  placesInfo,
		Source:      route.Source,
		Destination: route.Destination,
	})
	if err != nil {
		res.Degraded = append(res.Degraded, fmt.Sprintf("itinerary generation failed: %v", err))
		res.Response = itineraryFailureMessage
		return res
	}

	res.Response = itinerary
	return res
}

// cityPlaces geocodes the city once and gathers the three labeled place
// sections. When the city cannot be located it returns a single
// human-readable line and issues no place queries at all.
func (p *TripPlanner) cityPlaces(ctx context.Context, city string) (info string, located bool) {
	loc, ok := p.geo.Locate(ctx, city)
	if !ok {
		return fmt.Sprintf("No location found for %s.", city), false
	}

	out := []string{fmt.Sprintf("\n📍 Attractions in %s:", city)}
	out = append(out, p.placeLines(ctx, loc, "tourist_attraction")...)
	out = append(out, "\n🏨 Hotels:")
	out = append(out, p.placeLines(ctx, loc, "lodging")...)
	out = append(out, "\n🍽️ Restaurants:")
	out = append(out, p.placeLines(ctx, loc, "restaurant")...)
	return strings.Join(out, "\n"), true
}

func (p *TripPlanner) placeLines(ctx context.Context, loc, category string) []string {
	var lines []string
	for _, place := range p.places.Nearby(ctx, loc, category) {
		lines = append(lines, placeLine(place))
	}
	return lines
}

func placeLine(p maps.Place) string {
	rating := "N/A"
	if p.Rating > 0 {
		rating = fmt.Sprintf("%.1f", p.Rating)
	}
	return fmt.Sprintf("- %s (Rating: %s) - %s", p.Name, rating, p.Vicinity)
}
