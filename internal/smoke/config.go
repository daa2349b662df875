package smoke

import "time"

// Config holds configuration for the roster smoke test
type Config struct {
	BaseURL  string        // Base URL of the service
	Students int           // Number of synthetic students to sign up
	Workers  int           // Number of concurrent signup workers
	Timeout  time.Duration // HTTP request timeout
	LogFile  string        // Log file for test output
	Verbose  bool          // Enable verbose logging
}

// Activity mirrors the registry entry returned by the service
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse represents a successful mutation response
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse represents an error response
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Stats holds test statistics
type Stats struct {
	ActivitiesListed     int
	SignupsAttempted     int
	SignupsSucceeded     int
	SignupsRejected      int
	DuplicatesDetected   int
	UnregistersAttempted int
	UnregistersSucceeded int
	UnregistersFailed    int
	StartTime            time.Time
	EndTime              time.Time
	Duration             time.Duration
}
