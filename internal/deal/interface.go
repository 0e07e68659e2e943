package deal

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Delete(ctx context.Context, id string) error

	// Fetch serves the "deals" lookup source: the deals running on day.
	// found is false when there are none.
	Fetch(ctx context.Context, day time.Time) (data any, found bool, err error)
}
