package matcher

import "fmt"

// Matcher scores a message against the loaded intent patterns.
// Implementations are pure and safe for concurrent use.
type Matcher interface {
	Match(text string) []Match
}

// KeywordMatcher scores by weighted trigger phrases found at word starts.
type KeywordMatcher struct {
	patterns   []compiledPattern
	saturation float64
}

var _ Matcher = (*KeywordMatcher)(nil)

// New compiles patterns. Patterns keep their declaration order, which is the
// tie-break between equal scores.
func New(patterns []Pattern, cfg Config) (*KeywordMatcher, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	saturation := cfg.Saturation
	if saturation == 0 {
		saturation = DefaultSaturation
	}
	if saturation < 0 {
		return nil, ErrInvalidSaturation
	}

	seen := make(map[string]bool, len(patterns))
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		if p.ID == "" {
			return nil, ErrEmptyID
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true

		if len(p.Triggers) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoTriggers, p.ID)
		}

		cp := compiledPattern{id: p.ID, triggers: make([]compiledTrigger, 0, len(p.Triggers))}
		for _, t := range p.Triggers {
			phrase := Normalize(t.Phrase)
			if phrase == "" {
				return nil, fmt.Errorf("%w: %s", ErrEmptyTrigger, p.ID)
			}
			if t.Weight < 0 {
				return nil, fmt.Errorf("%w: %s/%q", ErrNegativeWeight, p.ID, t.Phrase)
			}
			weight := t.Weight
			if weight == 0 {
				weight = DefaultTriggerWeight
			}
			cp.triggers = append(cp.triggers, compiledTrigger{phrase: phrase, weight: weight})
		}
		compiled = append(compiled, cp)
	}

	return &KeywordMatcher{patterns: compiled, saturation: saturation}, nil
}
