// Package repository defines the recruit record store interface and errors.
package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/sync/singleflight"

	"github.com/okian/gridpath/internal/domain/model"
	"github.com/okian/gridpath/pkg/logger"
	"github.com/okian/gridpath/pkg/metrics"
)

// Canonical column names after header normalization.
const (
	colYear          = "year"
	colName          = "name"
	colSchool        = "school"
	colCommittedTo   = "committedTo"
	colCity          = "city"
	colStateProvince = "stateProvince"
	colCountry       = "country"
	colClassYear     = "classYear"
	colLatitude      = "latitude"
	colLongitude     = "longitude"
	colRanking       = "ranking"
	colHeight        = "height"
	colWeight        = "weight"
	colStars         = "stars"
	colRating        = "rating"
)

// headerOverrides maps source headers that need exact canonical
// replacements. Every other header is lower-cased with embedded
// whitespace stripped; these three would be mangled by that rule.
var headerOverrides = map[string]string{
	"class_year":    colClassYear,
	"stateProvince": colStateProvince,
	"committedTo":   colCommittedTo,
}

// loadKey keys the shared in-flight load; there is only one dataset.
const loadKey = "load"

// CSVStore implements Store over a delimited file with a header row.
//
// The parsed record set is cached for the process lifetime after the
// first successful load. A failed load is not cached, so callers may
// simply call Load again.
type CSVStore struct {
	path string
	log  logger.Logger

	flight singleflight.Group

	mu      sync.RWMutex
	records []model.Recruit
	loaded  bool
}

// NewCSVStore creates a store for the dataset at the configured path.
func NewCSVStore(_ context.Context, opts ...Option) *CSVStore {
	s := &CSVStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the cached record set, reading and normalizing the source
// on first use. Concurrent callers share one in-flight read.
func (s *CSVStore) Load(ctx context.Context) ([]model.Recruit, error) {
	s.mu.RLock()
	if s.loaded {
		records := s.records
		s.mu.RUnlock()
		return records, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.flight.Do(loadKey, func() (interface{}, error) {
		records, err := s.read(ctx)
		if err != nil {
			metrics.RecordDatasetLoadError()
			return nil, err
		}
		s.mu.Lock()
		s.records = records
		s.loaded = true
		s.mu.Unlock()
		metrics.UpdateRecordsCached(len(records))
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	records, ok := v.([]model.Recruit)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cache payload", ErrLoad)
	}
	return records, nil
}

// Loaded reports whether a successful load has completed.
func (s *CSVStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of cached records.
func (s *CSVStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Reset discards the cache so the next Load re-reads the source.
func (s *CSVStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.loaded = false
}

// read opens and parses the source file, returning only rows that pass
// the admission rule.
func (s *CSVStore) read(ctx context.Context) ([]model.Recruit, error) {
	if s.path == "" {
		return nil, ErrNoPath
	}

	start := time.Now()
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrLoad, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[canonicalHeader(name)] = i
	}

	var (
		records  []model.Recruit
		rowsRead int
		dropped  int
	)
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoad, ctxErr)
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// Malformed row: a row-level defect, never a load failure.
			rowsRead++
			dropped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoad, err)
		}
		rowsRead++
		rec, ok := buildRecord(cols, row)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	durationMs := float64(time.Since(start).Milliseconds())
	metrics.RecordDatasetLoad(durationMs)
	metrics.AddRowsRead(rowsRead)
	metrics.AddRowsDropped(dropped)

	if s.log != nil {
		s.log.Info(ctx, "dataset loaded",
			logger.String("path", s.path),
			logger.Int("rows", rowsRead),
			logger.Int("admitted", len(records)),
			logger.Int("dropped", dropped),
			logger.Float64("duration_ms", durationMs),
		)
	}
	return records, nil
}

// buildRecord coerces one raw row into a Recruit and applies the
// admission rule.
func buildRecord(cols map[string]int, row []string) (model.Recruit, bool) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := model.Recruit{
		Year:          intOrZero(field(colYear)),
		ClassYear:     intOrZero(field(colClassYear)),
		PlayerName:    field(colName),
		School:        field(colSchool),
		CommittedTo:   field(colCommittedTo),
		City:          field(colCity),
		StateProvince: field(colStateProvince),
		Country:       field(colCountry),
		Latitude:      coordinate(field(colLatitude)),
		Longitude:     coordinate(field(colLongitude)),
		Ranking:       intOrZero(field(colRanking)),
		Stars:         intOrZero(field(colStars)),
		Rating:        floatOrZero(field(colRating)),
		Height:        floatOrZero(field(colHeight)),
		Weight:        floatOrZero(field(colWeight)),
	}
	return rec, admit(rec)
}

// admit is the row admission rule: class year positive, both names
// present, both coordinates parsed.
func admit(r model.Recruit) bool {
	return r.ClassYear > 0 && r.CommittedTo != "" && r.School != "" && r.HasCoordinates()
}

// canonicalHeader maps a source header to its canonical column name.
func canonicalHeader(name string) string {
	name = strings.TrimSpace(name)
	if canon, ok := headerOverrides[name]; ok {
		return canon
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// intOrZero parses an integer cell, falling back to 0.
func intOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// floatOrZero parses an optional float cell, falling back to 0.
func floatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// coordinate parses a coordinate cell, falling back to nil so the
// admission rule can reject the row.
func coordinate(s string) *float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
