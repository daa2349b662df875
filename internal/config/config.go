// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer optional file and environment overrides in Load.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RosterPath optionally names a YAML roster file that replaces the
	// embedded seed catalog.
	RosterPath string `koanf:"roster_path"`

	// EnforceCapacity rejects signups once an activity reaches
	// max_participants. Off by default; capacity is advisory.
	EnforceCapacity bool `koanf:"enforce_capacity"`
}

// New creates a Config holding the defaults that Load layers file and
// environment values on top of.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		RosterPath:      "",
		EnforceCapacity: false,
	}
}
