package catalog

import (
	"fmt"
	"slices"

	"pneuma-faq-bot/internal/matcher"
	"pneuma-faq-bot/internal/responder"
	"pneuma-faq-bot/pkg/log"
)

// Patterns returns the matcher view of the catalog, in declaration order.
func (c Catalog) Patterns() []matcher.Pattern {
	out := make([]matcher.Pattern, len(c.Intents))
	for i, in := range c.Intents {
		out[i] = matcher.Pattern{ID: in.ID, Title: in.Title, Triggers: in.Triggers}
	}
	return out
}

// Handlers returns the registry view of the catalog.
func (c Catalog) Handlers() []responder.Handler {
	out := make([]responder.Handler, len(c.Intents))
	for i, in := range c.Intents {
		out[i] = in.Handler
	}
	return out
}

// Titles maps intent ids to display titles. Intents without a title use their id.
func (c Catalog) Titles() map[string]string {
	out := make(map[string]string, len(c.Intents))
	for _, in := range c.Intents {
		out[in.ID] = title(in)
	}
	return out
}

// Topics lists display titles in declaration order.
func (c Catalog) Topics() []string {
	out := make([]string, len(c.Intents))
	for i, in := range c.Intents {
		out[i] = title(in)
	}
	return out
}

func title(in Intent) string {
	if in.Title != "" {
		return in.Title
	}
	return in.ID
}

// Validate checks that every intent carries its own handler.
func (c Catalog) Validate() error {
	if len(c.Intents) == 0 {
		return ErrEmptyCatalog
	}
	for _, in := range c.Intents {
		if in.Handler.IntentID != in.ID {
			return fmt.Errorf("%w: intent %q has handler for %q", ErrHandlerMismatch, in.ID, in.Handler.IntentID)
		}
	}
	return nil
}

// Build compiles the matcher and the registry and checks they cover the same
// intent ids.
func Build(c Catalog, mcfg matcher.Config, opts responder.Options, l log.Logger) (Router, error) {
	if err := c.Validate(); err != nil {
		return Router{}, err
	}

	m, err := matcher.New(c.Patterns(), mcfg)
	if err != nil {
		return Router{}, fmt.Errorf("matcher: %w", err)
	}

	reg, err := responder.NewRegistry(c.Handlers(), opts, l)
	if err != nil {
		return Router{}, fmt.Errorf("registry: %w", err)
	}

	patternIDs := make([]string, len(c.Intents))
	for i, in := range c.Intents {
		patternIDs[i] = in.ID
	}
	if !slices.Equal(patternIDs, reg.IntentIDs()) {
		return Router{}, fmt.Errorf("%w: %v vs %v", ErrIntentSetDiffer, patternIDs, reg.IntentIDs())
	}

	return Router{
		Matcher:  m,
		Registry: reg,
		Titles:   c.Titles(),
		Topics:   c.Topics(),
	}, nil
}
