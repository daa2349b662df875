package api

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrMissingEmail = errors.New("email query parameter is required")
)
