package matcher

const (
	DefaultSaturation    = 2.0
	DefaultTriggerWeight = 1.0
)
