package matcher

// Trigger is a phrase that signals an intent. Weight defaults to 1 when zero.
type Trigger struct {
	Phrase string
	Weight float64
}

// Pattern is the set of triggers describing one intent.
type Pattern struct {
	ID       string
	Title    string
	Triggers []Trigger
}

// Match is a scored candidate intent for one message.
type Match struct {
	IntentID string
	Score    float64
	// Triggers lists the normalized trigger phrases found in the message.
	Triggers []string
	// Order is the declaration index of the pattern, used as the tie-break.
	Order int
}

// Config tunes scoring.
type Config struct {
	// Saturation is the summed trigger weight at which a pattern scores 1.0.
	Saturation float64
}

type compiledTrigger struct {
	phrase string
	weight float64
}

type compiledPattern struct {
	id       string
	triggers []compiledTrigger
}
