package maps

import (
	"context"
	"fmt"
	"log"
	"time"

	"googlemaps.github.io/maps"
)

// NoTravelData is the unavailable marker substituted for failed
// distance-matrix lookups. The planner compares against it to record the
// degradation.
const NoTravelData = "No travel data available."

// DistanceService answers origin/destination travel-metrics lookups.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a new DistanceService with the given API Key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := newClient(apiKey)
	if err != nil {
		return nil, err
	}
	return &DistanceService{client: client}, nil
}

// TravelInfo returns a "Distance: X, Duration: Y" sentence for the trip from
// origin to destination, both as free text (no pre-geocoding). Any failure,
// non-OK element status, or missing data yields NoTravelData.
func (s *DistanceService) TravelInfo(ctx context.Context, origin, destination string) string {
	if s.client == nil {
		return NoTravelData
	}

	ctx, cancel := context.WithTimeout(ctx, mapsTimeout)
	defer cancel()

	resp, err := s.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
	})
	if err != nil {
		log.Printf("distance matrix %q -> %q: %v", origin, destination, err)
		return NoTravelData
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return NoTravelData
	}

	elem := resp.Rows[0].Elements[0]
	if elem.Status != "OK" {
		return NoTravelData
	}

	return fmt.Sprintf("Distance: %s, Duration: %s", elem.Distance.HumanReadable, formatDuration(elem.Duration))
}

// formatDuration renders a duration the way the distance-matrix web API
// phrases it ("2 hours 15 mins"), since the Go client parses the text away.
func formatDuration(d time.Duration) string {
	mins := int(d.Round(time.Minute) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	hours := mins / 60
	mins = mins % 60

	switch {
	case hours == 0 && mins == 1:
		return "1 min"
	case hours == 0:
		return fmt.Sprintf("%d mins", mins)
	case mins == 0:
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	case hours == 1:
		return fmt.Sprintf("1 hour %d mins", mins)
	default:
		return fmt.Sprintf("%d hours %d mins", hours, mins)
	}
}
