// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
)

// PathwaysHandler handles pathway aggregate requests.
type PathwaysHandler struct {
	deps Dependencies
}

// NewPathwaysHandler creates a new pathways handler.
func NewPathwaysHandler(deps Dependencies) *PathwaysHandler {
	return &PathwaysHandler{deps: deps}
}

// HandleGetPathways handles GET /pathways?start_year&end_year&college.
func (h *PathwaysHandler) HandleGetPathways(w http.ResponseWriter, r *http.Request) {
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
	pathways, err := h.deps.Pathways(r.Context(), q.StartYear, q.EndYear, q.College)
	if err != nil {
		writeDependencyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pathways)
}
