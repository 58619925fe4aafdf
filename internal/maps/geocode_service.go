package maps

import (
	"context"
	"log"

	"googlemaps.github.io/maps"
)

// GeoService resolves free-text city names to coordinates.
type GeoService struct {
	client *maps.Client
}

// NewGeoService creates a new GeoService with the given API Key.
func NewGeoService(apiKey string) (*GeoService, error) {
	client, err := newClient(apiKey)
	if err != nil {
		return nil, err
	}
	return &GeoService{client: client}, nil
}

// Locate resolves city to a "lat,lng" string. ok is false when the city is
// empty or the placeholder sentinel, the key is unconfigured, or the lookup
// fails or returns no results. Failures are logged, never returned.
func (s *GeoService) Locate(ctx context.Context, city string) (location string, ok bool) {
	if city == "" || city == placeholderKey {
		return "", false
	}
	if s.client == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, mapsTimeout)
	defer cancel()

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: city})
	if err != nil {
		log.Printf("geocode %q: %v", city, err)
		return "", false
	}
	if len(results) == 0 {
		return "", false
	}

	loc := results[0].Geometry.Location
	return loc.String(), true
}
