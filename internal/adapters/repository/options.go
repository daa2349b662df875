// Package repository defines the activity registry store interface and errors.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithCapacityEnforcement toggles rejection of signups once an activity
// reaches max_participants. Off by default: the observed contract treats
// capacity as advisory.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *MemStore) {
		s.enforceCapacity = enabled
	}
}
