// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
)

// CitiesHandler handles city aggregate requests.
type CitiesHandler struct {
	deps Dependencies
}

// NewCitiesHandler creates a new cities handler.
func NewCitiesHandler(deps Dependencies) *CitiesHandler {
	return &CitiesHandler{deps: deps}
}

// HandleGetCities handles GET /cities?start_year&end_year&college.
func (h *CitiesHandler) HandleGetCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q, err := parseFilterQuery(r, h.deps)
	if err != nil {
		if errors.Is(err, ErrBadRequest) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeDependencyError(w, err)
		return
	}
	cities, err := h.deps.Cities(r.Context(), q.StartYear, q.EndYear, q.College)
	if err != nil {
		writeDependencyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}
