package catalog

import (
	"pneuma-faq-bot/internal/matcher"
	"pneuma-faq-bot/internal/responder"
)

// Intent pairs a pattern with the handler that answers it.
type Intent struct {
	ID       string
	Title    string
	Triggers []matcher.Trigger
	Handler  responder.Handler
}

// Catalog is the ordered intent set. Order is the matcher tie-break.
type Catalog struct {
	Intents []Intent
}

// Router bundles the read-only routing components built from a catalog.
type Router struct {
	Matcher  *matcher.KeywordMatcher
	Registry responder.Registry
	Titles   map[string]string
	Topics   []string
}
