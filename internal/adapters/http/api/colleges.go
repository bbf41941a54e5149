// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// CollegesDependencies defines the interface for the college list.
type CollegesDependencies interface {
	Colleges(ctx context.Context) ([]string, error)
}

// CollegesHandler handles college list requests.
type CollegesHandler struct {
	deps CollegesDependencies
}

// NewCollegesHandler creates a new colleges handler.
func NewCollegesHandler(deps CollegesDependencies) *CollegesHandler {
	return &CollegesHandler{deps: deps}
}

// HandleGetColleges handles GET /colleges requests.
func (h *CollegesHandler) HandleGetColleges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	colleges, err := h.deps.Colleges(r.Context())
	if err != nil {
		writeDependencyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, colleges)
}
