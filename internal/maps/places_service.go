package maps

import (
	"context"
	"log"

	"googlemaps.github.io/maps"
)

const (
	// searchRadiusMeters is the fixed nearby-search radius.
	searchRadiusMeters = 5000
	// maxPlaces caps results per category; ordering is the provider's own
	// ranking, no re-sorting.
	maxPlaces = 5
)

// Place represents a simplified nearby-search result.
type Place struct {
	Name     string
	Rating   float32
	Vicinity string
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := newClient(apiKey)
	if err != nil {
		return nil, err
	}
	return &PlacesService{client: client}, nil
}

// Nearby returns up to maxPlaces results of the given category around a
// "lat,lng" location. Transport failures and bad input degrade to an empty
// slice; callers cannot distinguish "no results" from "service failure".
func (s *PlacesService) Nearby(ctx context.Context, location, category string) []Place {
	if s.client == nil {
		return nil
	}

	latlng, err := maps.ParseLatLng(location)
	if err != nil {
		log.Printf("nearby places: bad location %q: %v", location, err)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, mapsTimeout)
	defer cancel()

	resp, err := s.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &latlng,
		Radius:   searchRadiusMeters,
		Type:     maps.PlaceType(category),
	})
	if err != nil {
		log.Printf("nearby places (%s): %v", category, err)
		return nil
	}

	return placesFromResults(resp.Results)
}

func placesFromResults(results []maps.PlacesSearchResult) []Place {
	var places []Place
	for _, r := range results {
		places = append(places, Place{
			Name:     r.Name,
			Rating:   r.Rating,
			Vicinity: r.Vicinity,
		})
		if len(places) >= maxPlaces {
			break
		}
	}
	return places
}
