package dispatcher

import (
	"pneuma-faq-bot/internal/policy"
	"pneuma-faq-bot/internal/responder"
)

// Reply is the single answer for a message. Text is never empty.
type Reply struct {
	Text     string
	IntentID string
	Action   policy.Action
	Score    float64
	// Degraded is set when Text is an apology or a canned fallback
	// instead of the handler's normal output.
	Degraded bool
}

// Options configures the dispatcher. Titles and Topics feed clarification
// prompts; GeneralHandler serves delegate_to_generator.
type Options struct {
	ApologyText    string
	Titles         map[string]string
	Topics         []string
	GeneralHandler *responder.Handler
}
