// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Activity represents one extracurricular offering.
// Field names mirror the JSON shape served by GET /activities and the YAML
// shape of the roster file.
type Activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// Validation errors.
var (
	ErrEmptyDescription     = errors.New("description must not be empty")
	ErrEmptySchedule        = errors.New("schedule must not be empty")
	ErrInvalidCapacity      = errors.New("max_participants must be positive")
	ErrDuplicateParticipant = errors.New("duplicate participant")
)

// Validate checks the activity record invariants: non-empty description and
// schedule, positive capacity, and no duplicate participant emails.
func (a Activity) Validate() error {
	if strings.TrimSpace(a.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(a.Schedule) == "" {
		return ErrEmptySchedule
	}
	if a.MaxParticipants <= 0 {
		return ErrInvalidCapacity
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, email := range a.Participants {
		if _, ok := seen[email]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, email)
		}
		seen[email] = struct{}{}
	}
	return nil
}

// HasParticipant reports whether email is registered for the activity.
func (a Activity) HasParticipant(email string) bool {
	for _, e := range a.Participants {
		if e == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never alias the participant slice.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
