package catalog

import "errors"

var (
	ErrEmptyCatalog    = errors.New("catalog has no intents")
	ErrHandlerMismatch = errors.New("handler does not belong to intent")
	ErrIntentSetDiffer = errors.New("pattern and handler intent sets differ")
)
