package api

import (
	"errors"
	"fmt"
	"net/http"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/pkg/logger"
)

// SignupHandler registers a student for an activity.
type SignupHandler struct {
	deps Dependencies
	log  logger.Logger
}

// NewSignupHandler creates a new signup handler.
func NewSignupHandler(deps Dependencies) *SignupHandler {
	return &SignupHandler{
		deps: deps,
		log:  logger.Named("api.signup"),
	}
}

// HandleSignup processes POST /activities/{name}/signup?email={email}.
// Existence is checked before membership, so an unknown activity always
// reports 404 regardless of the email.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	name, ok := activityNameFromPath(r.URL.Path, "signup")
	if !ok {
		http.NotFound(w, r)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, ErrMissingEmail.Error())
		return
	}

	err := h.deps.Signup(r.Context(), name, email)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, fmt.Sprintf("Signed up %s for %s", email, name))
	case errors.Is(err, repository.ErrActivityNotFound):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, repository.ErrAlreadyRegistered):
		writeDetail(w, http.StatusBadRequest, "Student is already registered for this activity")
	case errors.Is(err, repository.ErrActivityFull):
		writeDetail(w, http.StatusBadRequest, "Activity is already full")
	default:
		h.log.Error(r.Context(), "signup failed",
			logger.String("activity", name),
			logger.Error(err),
		)
		writeDetail(w, http.StatusInternalServerError, "signup failed")
	}
}
