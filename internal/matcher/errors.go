package matcher

import "errors"

var (
	ErrNoPatterns        = errors.New("matcher: no patterns")
	ErrEmptyID           = errors.New("matcher: pattern id is empty")
	ErrDuplicateID       = errors.New("matcher: duplicate pattern id")
	ErrNoTriggers        = errors.New("matcher: pattern has no triggers")
	ErrEmptyTrigger      = errors.New("matcher: trigger phrase is empty")
	ErrNegativeWeight    = errors.New("matcher: trigger weight is negative")
	ErrInvalidSaturation = errors.New("matcher: saturation must be positive")
)
