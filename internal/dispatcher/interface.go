package dispatcher

import (
	"context"

	"pneuma-faq-bot/internal/model"
)

// UseCase answers one inbound message. Handle never fails: every internal
// error becomes a safe reply.
type UseCase interface {
	Handle(ctx context.Context, msg model.InboundMessage) Reply
}
