package api

import (
	"net/http"

	"github.com/mergington/activities/pkg/logger"
)

// ActivitiesHandler serves the full activity registry.
type ActivitiesHandler struct {
	deps Dependencies
	log  logger.Logger
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps Dependencies) *ActivitiesHandler {
	return &ActivitiesHandler{
		deps: deps,
		log:  logger.Named("api.activities"),
	}
}

// HandleGetActivities returns every activity keyed by name, each with its
// description, schedule, capacity, and current participant list.
func (h *ActivitiesHandler) HandleGetActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	registry, err := h.deps.List(r.Context())
	if err != nil {
		h.log.Error(r.Context(), "failed to list activities", logger.Error(err))
		writeDetail(w, http.StatusInternalServerError, "failed to list activities")
		return
	}

	writeJSON(w, http.StatusOK, registry)
}
