package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotRegistered     = errors.New("not registered")
	ErrActivityFull      = errors.New("activity full")
	ErrInvalidSeed       = errors.New("invalid seed data")
)
