// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	repository "github.com/okian/gridpath/internal/adapters/repository"
	"github.com/okian/gridpath/internal/domain/aggregate"
	"github.com/okian/gridpath/internal/domain/geo"
	"github.com/okian/gridpath/internal/domain/model"
	"github.com/okian/gridpath/pkg/logger"
	"github.com/okian/gridpath/pkg/metrics"
)

// Aggregation kinds used for metrics labels.
const (
	kindPathways = "pathways"
	kindCities   = "cities"
	kindColleges = "colleges"
)

// Service wires the record store, the aggregation functions and the
// optional college coordinate resolver behind one read-only facade.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	resolver geo.Resolver

	// Configuration
	datasetPath string
	coordsPath  string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithStore injects a record store, replacing the default CSV store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithResolver injects a college coordinate resolver.
func WithResolver(resolver geo.Resolver) Option {
	return func(s *Service) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithDatasetPath sets the recruiting CSV path for the default store.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.datasetPath = path
		}
	}
}

// WithCollegeCoordsPath sets the YAML lookup path for the default resolver.
func WithCollegeCoordsPath(path string) Option {
	return func(s *Service) {
		s.coordsPath = path
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components and warms the dataset cache.
// A load failure at warm-up is logged, not fatal: handlers retry the
// load and surface the failure per request.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting recruiting aggregation service...")

	if s.store == nil {
		s.store = repository.NewCSVStore(ctx,
			repository.WithPath(s.datasetPath),
			repository.WithLogger(s.logger),
		)
	}

	if s.resolver == nil && s.coordsPath != "" {
		locations, err := geo.LoadLocations(s.coordsPath)
		if err != nil {
			s.logger.Warn(ctx, "college locations unavailable; summaries will omit coordinates",
				logger.String("path", s.coordsPath),
				logger.Error(err),
			)
		} else {
			s.resolver = geo.NewStaticResolver(geo.WithLocations(locations))
			s.logger.Info(ctx, "college locations loaded",
				logger.Int("colleges", len(locations)),
			)
		}
	}

	if _, err := s.store.Load(ctx); err != nil {
		s.logger.Warn(ctx, "dataset warm-up failed; will retry on first request",
			logger.Error(err),
		)
	}

	s.started = true
	s.logger.Info(ctx, "recruiting aggregation service started",
		logger.String("dataset", s.datasetPath),
		logger.Bool("loaded", s.store.Loaded()),
		logger.Int("records", s.store.Count(ctx)),
	)

	return nil
}

// Stop releases the service. The cache is process-scoped, so there is
// nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "recruiting aggregation service stopped")
}

// Records returns the full normalized record set.
func (s *Service) Records(ctx context.Context) ([]model.Recruit, error) {
	return s.store.Load(ctx)
}

// Colleges returns the distinct committed-to colleges, sorted ascending.
func (s *Service) Colleges(ctx context.Context) ([]string, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.UniqueColleges(records), nil
}

// YearBounds returns the min and max class year in the dataset.
func (s *Service) YearBounds(ctx context.Context) (model.YearRange, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return model.YearRange{}, err
	}
	return aggregate.YearBounds(records), nil
}

// Pathways returns high-school-to-college aggregates for the filter.
func (s *Service) Pathways(ctx context.Context, startYear, endYear int, college string) ([]model.Pathway, error) {
	filtered, err := s.filtered(ctx, startYear, endYear, college)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	out := aggregate.Pathways(filtered)
	metrics.RecordAggregationLatency(kindPathways, float64(time.Since(start).Milliseconds()))
	return out, nil
}

// Cities returns per-city recruit counts for the filter.
func (s *Service) Cities(ctx context.Context, startYear, endYear int, college string) ([]model.CityAggregate, error) {
	filtered, err := s.filtered(ctx, startYear, endYear, college)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	out := aggregate.Cities(filtered)
	metrics.RecordAggregationLatency(kindCities, float64(time.Since(start).Milliseconds()))
	return out, nil
}

// CollegeSummaries returns per-college recruit counts for the filter,
// decorated with coordinates from the resolver when one is configured.
func (s *Service) CollegeSummaries(ctx context.Context, startYear, endYear int, college string) ([]model.CollegeSummary, error) {
	filtered, err := s.filtered(ctx, startYear, endYear, college)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	aggregates := aggregate.Colleges(filtered)
	metrics.RecordAggregationLatency(kindColleges, float64(time.Since(start).Milliseconds()))

	summaries := make([]model.CollegeSummary, len(aggregates))
	for i, a := range aggregates {
		summaries[i] = model.CollegeSummary{College: a.College, Count: a.Count}
		if s.resolver == nil {
			continue
		}
		if c, ok := s.resolver.Resolve(ctx, a.College); ok {
			lat, lng := c.Latitude, c.Longitude
			summaries[i].Latitude = &lat
			summaries[i].Longitude = &lng
		}
	}
	return summaries, nil
}

// filtered loads the cached record set and applies the active filter.
func (s *Service) filtered(ctx context.Context, startYear, endYear int, college string) ([]model.Recruit, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if college == "" {
		college = aggregate.AllColleges
	}
	metrics.RecordFilterRequest()
	return aggregate.Filter(records, startYear, endYear, college), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"datasetPath": s.datasetPath,
		"hasResolver": s.resolver != nil,
	}

	if s.store != nil {
		loaded := s.store.Loaded()
		count := s.store.Count(ctx)
		stats["loaded"] = loaded
		stats["records"] = count

		metrics.UpdateRecordsCached(count)
	}

	return stats
}
