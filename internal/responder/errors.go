package responder

import "errors"

var (
	ErrUnknownIntent        = errors.New("unknown intent")
	ErrDataUnavailable      = errors.New("data unavailable")
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	ErrEmptyIntentID    = errors.New("handler intent id is empty")
	ErrDuplicateHandler = errors.New("duplicate handler")
	ErrUnknownKind      = errors.New("unknown handler kind")
	ErrInvalidHandler   = errors.New("invalid handler")
)
