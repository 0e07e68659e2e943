package responder

import "time"

// Kind tags the handler variant.
type Kind string

const (
	KindStatic    Kind = "static"
	KindLookup    Kind = "lookup"
	KindGenerator Kind = "generator"
)

const (
	DefaultGeneratorTimeout = 8 * time.Second
	DefaultLookupDay        = "today"
	DefaultMaxTokens        = 200
	DefaultTemperature      = 0.7
)
