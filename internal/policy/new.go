package policy

import (
	"fmt"

	"pneuma-faq-bot/internal/matcher"
)

// Decider turns ranked matches into an action.
type Decider interface {
	Decide(matches []matcher.Match) Decision
}

// Policy is the threshold and tie-margin fallback policy.
type Policy struct {
	cfg Config
}

var _ Decider = (*Policy)(nil)

// DefaultConfig returns threshold 0.5, tie margin 0.1 and clarification on no match.
func DefaultConfig() Config {
	return Config{
		Threshold:     DefaultThreshold,
		TieMargin:     DefaultTieMargin,
		NoMatchAction: DefaultNoMatchAction,
	}
}

// New validates cfg. An empty NoMatchAction falls back to clarification.
func New(cfg Config) (*Policy, error) {
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, cfg.Threshold)
	}
	if cfg.TieMargin < 0 || cfg.TieMargin > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTieMargin, cfg.TieMargin)
	}
	if cfg.NoMatchAction == "" {
		cfg.NoMatchAction = DefaultNoMatchAction
	}
	if !cfg.NoMatchAction.Valid() || cfg.NoMatchAction == ActionUseBest {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNoMatchAction, cfg.NoMatchAction)
	}
	return &Policy{cfg: cfg}, nil
}

// Config returns the validated configuration.
func (p *Policy) Config() Config {
	return p.cfg
}
