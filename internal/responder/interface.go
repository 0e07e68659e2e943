package responder

import (
	"context"
	"time"

	"pneuma-faq-bot/pkg/llmprovider"
)

// Registry maps intent ids to handlers and runs them.
type Registry interface {
	Resolve(intentID string) (Handler, error)
	Produce(ctx context.Context, h Handler, req Request) (string, error)
	IntentIDs() []string
}

// Source is a named data source for lookup handlers. ok is false when there
// is nothing to show for day.
type Source interface {
	Fetch(ctx context.Context, day time.Time) (data any, ok bool, err error)
}

// Generator is the LLM backend for generator handlers.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
