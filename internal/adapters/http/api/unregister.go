package api

import (
	"errors"
	"fmt"
	"net/http"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/pkg/logger"
)

// UnregisterHandler removes a student from an activity.
type UnregisterHandler struct {
	deps Dependencies
	log  logger.Logger
}

// NewUnregisterHandler creates a new unregister handler.
func NewUnregisterHandler(deps Dependencies) *UnregisterHandler {
	return &UnregisterHandler{
		deps: deps,
		log:  logger.Named("api.unregister"),
	}
}

// HandleUnregister processes DELETE /activities/{name}/unregister?email={email}.
func (h *UnregisterHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}

	name, ok := activityNameFromPath(r.URL.Path, "unregister")
	if !ok {
		http.NotFound(w, r)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, ErrMissingEmail.Error())
		return
	}

	err := h.deps.Unregister(r.Context(), name, email)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, fmt.Sprintf("Unregistered %s from %s", email, name))
	case errors.Is(err, repository.ErrActivityNotFound):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, repository.ErrNotRegistered):
		writeDetail(w, http.StatusBadRequest, "Student is not registered for this activity")
	default:
		h.log.Error(r.Context(), "unregister failed",
			logger.String("activity", name),
			logger.Error(err),
		)
		writeDetail(w, http.StatusInternalServerError, "unregister failed")
	}
}
