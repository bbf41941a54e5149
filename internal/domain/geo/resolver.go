// Package geo defines the injected college coordinate lookup.
//
// The aggregation core never touches this package; the app layer uses a
// Resolver to place colleges on the map when no recruit record supplies
// their coordinates.
package geo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `koanf:"latitude" json:"latitude"`
	Longitude float64 `koanf:"longitude" json:"longitude"`
}

// Resolver resolves a college name to coordinates.
type Resolver interface {
	// Resolve returns the coordinates for a college and whether the
	// resolver knows the college. Lookup is case-insensitive.
	Resolve(ctx context.Context, college string) (Coordinates, bool)
}

// StaticResolver implements Resolver over an in-memory map.
type StaticResolver struct {
	mu        sync.RWMutex
	locations map[string]Coordinates // keyed by lower-cased college name
}

// NewStaticResolver creates a resolver with configuration options.
func NewStaticResolver(opts ...Option) *StaticResolver {
	r := &StaticResolver{
		locations: make(map[string]Coordinates),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the coordinates for a college, case-insensitively.
func (r *StaticResolver) Resolve(_ context.Context, college string) (Coordinates, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.locations[strings.ToLower(strings.TrimSpace(college))]
	return c, ok
}

// Size returns the number of known colleges.
func (r *StaticResolver) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.locations)
}

// LoadLocations reads a YAML lookup file mapping college names to
// coordinates, e.g.:
//
//	Ohio State:
//	  latitude: 40.0067
//	  longitude: -83.0305
func LoadLocations(path string) (map[string]Coordinates, error) {
	// College names may contain dots, so use a delimiter that cannot
	// appear in them.
	k := koanf.New("::")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupLoad, err)
	}

	locations := make(map[string]Coordinates)
	if err := k.UnmarshalWithConf("", &locations, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupLoad, err)
	}
	return locations, nil
}
