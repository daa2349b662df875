package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/mergington/activities/internal/domain/model"
)

// record is the mutable registry entry for one activity. The participants
// slice preserves insertion order; members gives O(1) membership checks so
// the check-then-mutate under the store lock stays cheap.
type record struct {
	activity model.Activity
	members  map[string]struct{}
}

// MemStore implements Store with a mutex-guarded in-memory map.
// net/http serves requests in parallel, so every read-check-then-write on a
// participant set happens under the lock to preserve the uniqueness
// invariant.
type MemStore struct {
	mu              sync.RWMutex
	records         map[string]*record
	enforceCapacity bool
}

// NewMemStore creates an empty in-memory registry store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		records: make(map[string]*record),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed populates the registry from the given activities. Each record is
// validated and deep-copied; a previous seed is replaced wholesale.
func (s *MemStore) Seed(_ context.Context, activities map[string]model.Activity) error {
	records := make(map[string]*record, len(activities))
	for name, activity := range activities {
		if err := activity.Validate(); err != nil {
			return fmt.Errorf("%w: activity %q: %w", ErrInvalidSeed, name, err)
		}
		rec := &record{
			activity: activity.Clone(),
			members:  make(map[string]struct{}, len(activity.Participants)),
		}
		for _, email := range activity.Participants {
			rec.members[email] = struct{}{}
		}
		records[name] = rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	return nil
}

// List returns a deep copy of the full registry.
func (s *MemStore) List(_ context.Context) map[string]model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity, len(s.records))
	for name, rec := range s.records {
		out[name] = rec.activity.Clone()
	}
	return out
}

// Get returns a deep copy of one activity.
func (s *MemStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return rec.activity.Clone(), nil
}

// Signup registers email for the named activity. The existence check, the
// membership check, and the insert happen under one lock acquisition so a
// concurrent duplicate cannot slip through.
func (s *MemStore) Signup(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		return ErrActivityNotFound
	}
	if _, registered := rec.members[email]; registered {
		return ErrAlreadyRegistered
	}
	if s.enforceCapacity && len(rec.activity.Participants) >= rec.activity.MaxParticipants {
		return ErrActivityFull
	}

	rec.activity.Participants = append(rec.activity.Participants, email)
	rec.members[email] = struct{}{}
	return nil
}

// Unregister removes email from the named activity.
func (s *MemStore) Unregister(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		return ErrActivityNotFound
	}
	if _, registered := rec.members[email]; !registered {
		return ErrNotRegistered
	}

	delete(rec.members, email)
	participants := rec.activity.Participants
	for i, e := range participants {
		if e == email {
			rec.activity.Participants = append(participants[:i], participants[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of activities in the registry.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ParticipantCount returns the total number of registrations.
func (s *MemStore) ParticipantCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, rec := range s.records {
		total += len(rec.activity.Participants)
	}
	return total
}
