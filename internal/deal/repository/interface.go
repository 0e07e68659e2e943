package repository

import (
	"context"

	"pneuma-faq-bot/internal/model"
)

// Repository is the deals data store.
type Repository interface {
	ListDeals(ctx context.Context, opt ListDealsOptions) ([]model.Deal, error)
	SaveDeal(ctx context.Context, opt SaveDealOptions) (model.Deal, error)
	DeleteDeal(ctx context.Context, id string) error
}
