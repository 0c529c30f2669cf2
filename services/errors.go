package services

import "errors"

// Sentinel errors shared by every service; controllers map them onto HTTP
// statuses (ErrNotFound -> 404, ErrValidation -> 400, ErrInUse -> 409).
// Wrap with fmt.Errorf("...: %w", Err...) so callers can errors.Is them.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	ErrInUse      = errors.New("still referenced")
)
