// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
)

// CommitsHandler handles per-college commit summaries.
type CommitsHandler struct {
	deps Dependencies
}

// NewCommitsHandler creates a new commits handler.
func NewCommitsHandler(deps Dependencies) *CommitsHandler {
	return &CommitsHandler{deps: deps}
}

// HandleGetCommits handles GET /commits?start_year&end_year&college.
// Summaries carry coordinates resolved from the college location lookup
// when one is configured; otherwise coordinates are null.
func (h *CommitsHandler) HandleGetCommits(w http.ResponseWriter, r *http.Request) {
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
	summaries, err := h.deps.CollegeSummaries(r.Context(), q.StartYear, q.EndYear, q.College)
	if err != nil {
		writeDependencyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
