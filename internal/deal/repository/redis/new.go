package redis

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"pneuma-faq-bot/internal/deal/repository"
	"pneuma-faq-bot/pkg/log"
)

const defaultKeyPrefix = "faqbot"

type implRepository struct {
	client redis.UniversalClient
	prefix string
	l      log.Logger
}

// New creates a Redis-backed deals store. Deals are stored as JSON under
// <prefix>:deal:<id> and indexed by day in <prefix>:deals:<day> sets.
func New(client redis.UniversalClient, prefix string, l log.Logger) repository.Repository {
	if client == nil {
		panic("deal/repository/redis: client is required")
	}
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &implRepository{client: client, prefix: prefix, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("deal/repository/redis.%s", method)
}

func (r *implRepository) dealKey(id string) string {
	return fmt.Sprintf("%s:deal:%s", r.prefix, id)
}

// dayKey returns the index set for day. Recurring deals live in the "daily" set.
func (r *implRepository) dayKey(day string) string {
	if day == "" {
		day = "daily"
	}
	return fmt.Sprintf("%s:deals:%s", r.prefix, day)
}
