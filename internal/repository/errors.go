package repository

import "errors"

// ErrNotFound is returned when a requested booking does not exist.
var ErrNotFound = errors.New("not found")
