package maps

import (
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// placeholderKey is the unconfigured-key sentinel carried over from sample
// configuration files; treating it as "no key" keeps a copy-pasted config
// from issuing doomed requests.
const placeholderKey = "YOUR_GOOGLE_API_KEY"

// mapsTimeout bounds every outbound mapping-service request.
const mapsTimeout = 10 * time.Second

// newClient returns a Google Maps client, or nil when the key is absent or
// still the placeholder. Services built on a nil client answer every call
// with their unavailable markers, so the pipeline keeps working in a
// degraded mode instead of failing startup.
func newClient(apiKey string) (*maps.Client, error) {
	if apiKey == "" || apiKey == placeholderKey {
		return nil, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}
