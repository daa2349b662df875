// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/internal/domain/roster"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service implements the API dependencies for the activities registry.
type Service struct {
	mu sync.RWMutex

	// Core components
	registry repository.Store
	seed     roster.Roster

	// Configuration
	enforceCapacity bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore injects a registry store, replacing the default in-memory one.
// Tests use this to isolate state without snapshot/restore dances.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.registry = store
		}
	}
}

// WithRoster sets the seed catalog used at Start.
func WithRoster(r roster.Roster) Option {
	return func(s *Service) {
		if len(r) > 0 {
			s.seed = r
		}
	}
}

// WithCapacityEnforcement toggles rejection of signups at max_participants.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *Service) {
		s.enforceCapacity = enabled
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start seeds the registry and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.seed == nil {
		seed, err := roster.Default()
		if err != nil {
			return err
		}
		s.seed = seed
	}

	if s.registry == nil {
		s.registry = repository.NewMemStore(
			repository.WithCapacityEnforcement(s.enforceCapacity),
		)
	}

	if err := s.registry.Seed(ctx, s.seed); err != nil {
		return err
	}

	s.started = true
	s.logger.Info(ctx, "activities service started",
		logger.Int("activities", s.registry.Count(ctx)),
		logger.Int("participants", s.registry.ParticipantCount(ctx)),
		logger.Bool("enforceCapacity", s.enforceCapacity),
	)
	s.publishRegistryGauges(ctx)

	return nil
}

// Stop marks the service stopped. The registry is in-memory only, so there
// is nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "activities service stopped")
}

// List returns the full registry keyed by activity name.
func (s *Service) List(ctx context.Context) (map[string]model.Activity, error) {
	return s.registry.List(ctx), nil
}

// Signup registers email for the named activity.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	err := s.registry.Signup(ctx, activity, email)
	switch err {
	case nil:
		metrics.RecordSignup()
		s.logger.Debug(ctx, "signup recorded",
			logger.String("activity", activity),
			logger.String("email", email),
		)
	case repository.ErrActivityNotFound:
		metrics.RecordSignupRejected("activity_not_found")
	case repository.ErrAlreadyRegistered:
		metrics.RecordSignupRejected("already_registered")
	case repository.ErrActivityFull:
		metrics.RecordSignupRejected("activity_full")
	}
	if err == nil {
		s.publishRegistryGauges(ctx)
	}
	return err
}

// Unregister removes email from the named activity.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	err := s.registry.Unregister(ctx, activity, email)
	switch err {
	case nil:
		metrics.RecordUnregistration()
		s.logger.Debug(ctx, "unregistration recorded",
			logger.String("activity", activity),
			logger.String("email", email),
		)
	case repository.ErrActivityNotFound:
		metrics.RecordUnregistrationRejected("activity_not_found")
	case repository.ErrNotRegistered:
		metrics.RecordUnregistrationRejected("not_registered")
	}
	if err == nil {
		s.publishRegistryGauges(ctx)
	}
	return err
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":         s.started,
		"enforceCapacity": s.enforceCapacity,
	}

	if s.started {
		stats["totalActivities"] = s.registry.Count(ctx)
		stats["totalParticipants"] = s.registry.ParticipantCount(ctx)
	}

	return stats
}

// RefreshGauges republishes the registry size gauges. Called periodically
// from main so the gauges stay fresh even without traffic.
func (s *Service) RefreshGauges(ctx context.Context) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()

	if started {
		s.publishRegistryGauges(ctx)
	}
}

func (s *Service) publishRegistryGauges(ctx context.Context) {
	metrics.UpdateRegistryActivities(s.registry.Count(ctx))
	metrics.UpdateRegistryParticipants(s.registry.ParticipantCount(ctx))
}
