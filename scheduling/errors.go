package scheduling

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to callers. Handlers map these onto status codes;
// anything else is an internal store error and bubbles unchanged.
var (
	ErrNotFound     = errors.New("not found")
	ErrAmbiguous    = errors.New("ambiguous plan period configuration")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("duplicate active record")

	// ErrNoPlanPeriod means no active plan period covers the requested
	// date. It wraps ErrNotFound, so errors.Is(err, ErrNotFound) holds.
	ErrNoPlanPeriod = fmt.Errorf("no plan period for date: %w", ErrNotFound)
	// ErrNotEnrolled means the person has no active enrollment for the
	// period owning the requested date. Also wraps ErrNotFound.
	ErrNotEnrolled = fmt.Errorf("person not enrolled in plan period: %w", ErrNotFound)
)
