// Package repository defines the activity registry store interface and errors.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Store provides read/write access to the activity registry.
type Store interface {
	// Seed populates the registry. The set of activity names is fixed after
	// seeding; there are no create/delete-activity operations.
	Seed(ctx context.Context, activities map[string]model.Activity) error

	// List returns a deep copy of the full registry keyed by activity name.
	List(ctx context.Context) map[string]model.Activity

	// Get returns a deep copy of one activity.
	// Returns ErrActivityNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup registers email for the named activity.
	// Returns ErrActivityNotFound for an unknown activity,
	// ErrAlreadyRegistered if email is already a participant, and
	// ErrActivityFull when capacity enforcement is on and the activity
	// has no free slot.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the named activity.
	// Returns ErrActivityNotFound for an unknown activity and
	// ErrNotRegistered if email is not a participant.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities in the registry.
	Count(ctx context.Context) int

	// ParticipantCount returns the total number of registrations across
	// all activities.
	ParticipantCount(ctx context.Context) int
}
