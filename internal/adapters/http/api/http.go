// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	repository "github.com/okian/gridpath/internal/adapters/repository"
	"github.com/okian/gridpath/internal/domain/aggregate"
	"github.com/okian/gridpath/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Colleges returns the distinct committed-to colleges, sorted ascending.
	Colleges(ctx context.Context) ([]string, error)

	// YearBounds returns the min and max class year in the dataset.
	YearBounds(ctx context.Context) (model.YearRange, error)

	// Filtered aggregates for map rendering.
	Pathways(ctx context.Context, startYear, endYear int, college string) ([]model.Pathway, error)
	Cities(ctx context.Context, startYear, endYear int, college string) ([]model.CityAggregate, error)
	CollegeSummaries(ctx context.Context, startYear, endYear int, college string) ([]model.CollegeSummary, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	collegesHandler *CollegesHandler
	yearsHandler    *YearsHandler
	pathwaysHandler *PathwaysHandler
	citiesHandler   *CitiesHandler
	commitsHandler  *CommitsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		collegesHandler: NewCollegesHandler(deps),
		yearsHandler:    NewYearsHandler(deps),
		pathwaysHandler: NewPathwaysHandler(deps),
		citiesHandler:   NewCitiesHandler(deps),
		commitsHandler:  NewCommitsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/colleges", RequestIDMiddleware(MetricsMiddleware(s.collegesHandler.HandleGetColleges, "colleges")))
	mux.HandleFunc("/years", RequestIDMiddleware(MetricsMiddleware(s.yearsHandler.HandleGetYears, "years")))
	mux.HandleFunc("/pathways", RequestIDMiddleware(MetricsMiddleware(s.pathwaysHandler.HandleGetPathways, "pathways")))
	mux.HandleFunc("/cities", RequestIDMiddleware(MetricsMiddleware(s.citiesHandler.HandleGetCities, "cities")))
	mux.HandleFunc("/commits", RequestIDMiddleware(MetricsMiddleware(s.commitsHandler.HandleGetCommits, "commits")))
}

// filterQuery carries the parsed filter parameters shared by the three
// aggregate endpoints.
type filterQuery struct {
	StartYear int
	EndYear   int
	College   string
}

// parseFilterQuery reads start_year, end_year and college from the URL.
// Missing years default to the dataset's own bounds; a missing college
// selects all colleges. Present-but-malformed values are a bad request.
func parseFilterQuery(r *http.Request, deps Dependencies) (filterQuery, error) {
	q := r.URL.Query()

	college := strings.TrimSpace(q.Get("college"))
	if college == "" {
		college = aggregate.AllColleges
	}

	startStr, endStr := q.Get("start_year"), q.Get("end_year")
	var bounds model.YearRange
	if startStr == "" || endStr == "" {
		b, err := deps.YearBounds(r.Context())
		if err != nil {
			return filterQuery{}, err
		}
		bounds = b
	}

	start := bounds.Min
	if startStr != "" {
		n, err := strconv.Atoi(startStr)
		if err != nil {
			return filterQuery{}, ErrBadRequest
		}
		start = n
	}
	end := bounds.Max
	if endStr != "" {
		n, err := strconv.Atoi(endStr)
		if err != nil {
			return filterQuery{}, ErrBadRequest
		}
		end = n
	}

	return filterQuery{StartYear: start, EndYear: end, College: college}, nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDependencyError translates upstream errors: a dataset load failure
// becomes 503 so the dashboard can show a retriable failure state.
func writeDependencyError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrLoad) || errors.Is(err, repository.ErrNoPath) {
		writeError(w, http.StatusServiceUnavailable, "load_failed", err)
		return
	}
	if errors.Is(err, ErrBadRequest) {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err)
}
