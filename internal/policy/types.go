package policy

import "pneuma-faq-bot/internal/matcher"

// Action is what the dispatcher should do with a message.
type Action string

const (
	ActionUseBest             Action = "use_best"
	ActionAskClarification    Action = "ask_clarification"
	ActionDelegateToGenerator Action = "delegate_to_generator"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionUseBest, ActionAskClarification, ActionDelegateToGenerator:
		return true
	}
	return false
}

// Config holds the thresholds used by Decide.
type Config struct {
	// Threshold is the minimum top score for a confident match.
	Threshold float64
	// TieMargin is the score gap under which the top two matches are ambiguous.
	// Zero disables ambiguity detection.
	TieMargin float64
	// NoMatchAction applies when nothing scores at or above Threshold.
	NoMatchAction Action
}

// Decision is the outcome for one message.
type Decision struct {
	Action   Action
	IntentID string
	Score    float64
	// Candidates holds the ambiguous matches for clarification, best first.
	Candidates []matcher.Match
}
