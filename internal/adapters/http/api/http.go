// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// List returns the full registry keyed by activity name.
	List(ctx context.Context) (map[string]Activity, error)

	// Signup registers email for the named activity.
	Signup(ctx context.Context, activity, email string) error

	// Unregister removes email from the named activity.
	Unregister(ctx context.Context, activity, email string) error
}

// Activity mirrors the read shape returned by registry queries.
type Activity = model.Activity

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	activitiesHandler *ActivitiesHandler
	signupHandler     *SignupHandler
	unregisterHandler *UnregisterHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		activitiesHandler: NewActivitiesHandler(deps),
		signupHandler:     NewSignupHandler(deps),
		unregisterHandler: NewUnregisterHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/activities", RequestIDMiddleware(MetricsMiddleware(s.activitiesHandler.HandleGetActivities, "activities")))
	mux.HandleFunc("/activities/", RequestIDMiddleware(s.routeActivityAction))
}

// routeActivityAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister to their handlers. Anything else under the
// prefix is unknown.
func (s *Server) routeActivityAction(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasSuffix(r.URL.Path, "/signup"):
		MetricsMiddleware(s.signupHandler.HandleSignup, "signup")(w, r)
	case strings.HasSuffix(r.URL.Path, "/unregister"):
		MetricsMiddleware(s.unregisterHandler.HandleUnregister, "unregister")(w, r)
	default:
		http.NotFound(w, r)
	}
}

// activityNameFromPath extracts the activity name from paths shaped like
// /activities/{name}/{action}. The name comes back URL-decoded (the mux
// decodes percent escapes) and is matched exactly against registry keys.
func activityNameFromPath(path, action string) (string, bool) {
	name := strings.TrimPrefix(path, "/activities/")
	name = strings.TrimSuffix(name, "/"+action)
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}

// messageResponse is the confirmation payload for successful mutations.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse carries a user-visible failure detail.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
