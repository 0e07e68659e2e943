package memory

import (
	"sync"

	"pneuma-faq-bot/internal/deal/repository"
	"pneuma-faq-bot/internal/model"
	"pneuma-faq-bot/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	deals []model.Deal
	l     log.Logger
}

// New creates an in-process deals store preloaded with seed.
func New(l log.Logger, seed []model.Deal) repository.Repository {
	deals := make([]model.Deal, len(seed))
	copy(deals, seed)
	return &implRepository{deals: deals, l: l}
}
