// Package geo defines the injected college coordinate lookup.
package geo

import "strings"

// Option applies a configuration option to the StaticResolver.
type Option func(*StaticResolver)

// WithLocations seeds the resolver with a college -> coordinates map.
// Keys are normalized to lower case for case-insensitive lookup.
func WithLocations(locations map[string]Coordinates) Option {
	return func(r *StaticResolver) {
		for name, c := range locations {
			r.locations[strings.ToLower(strings.TrimSpace(name))] = c
		}
	}
}
