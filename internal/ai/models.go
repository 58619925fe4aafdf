package ai

// RouteResult captures the structured output of the extraction stage.
// An empty Source or Destination means the model could not confidently
// identify that city.
type RouteResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// ItineraryRequest bundles everything the synthesis stage embeds in its prompt.
type ItineraryRequest struct {
	// UserText is the raw travel request as the user typed it.
	UserText string
	// TravelInfo is the distance/duration sentence, or the unavailable marker.
	TravelInfo string
	// PlacesInfo is the labeled attractions/hotels/restaurants block, or the
	// no-location fallback line.
	PlacesInfo  string
	Source      string
	Destination string
}
