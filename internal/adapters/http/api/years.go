// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/gridpath/internal/domain/model"
)

// YearsDependencies defines the interface for year bounds.
type YearsDependencies interface {
	YearBounds(ctx context.Context) (model.YearRange, error)
}

// YearsHandler handles year bound requests.
type YearsHandler struct {
	deps YearsDependencies
}

// NewYearsHandler creates a new years handler.
func NewYearsHandler(deps YearsDependencies) *YearsHandler {
	return &YearsHandler{deps: deps}
}

// HandleGetYears handles GET /years requests.
func (h *YearsHandler) HandleGetYears(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	bounds, err := h.deps.YearBounds(r.Context())
	if err != nil {
		writeDependencyError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bounds)
}
