package memory

import (
	"context"

	repo "pneuma-faq-bot/internal/deal/repository"
	"pneuma-faq-bot/internal/model"
)

// ListDeals returns deals for opt.Day in insertion order.
func (r *implRepository) ListDeals(ctx context.Context, opt repo.ListDealsOptions) ([]model.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Deal
	for _, d := range r.deals {
		if d.Day == opt.Day || (opt.IncludeRecurring && d.Recurring()) {
			out = append(out, d)
		}
	}
	return out, nil
}

// SaveDeal replaces the deal with the same ID or appends it.
func (r *implRepository) SaveDeal(ctx context.Context, opt repo.SaveDealOptions) (model.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.deals {
		if d.ID == opt.Deal.ID {
			r.deals[i] = opt.Deal
			return opt.Deal, nil
		}
	}
	r.deals = append(r.deals, opt.Deal)
	return opt.Deal, nil
}

// DeleteDeal removes a deal by ID.
func (r *implRepository) DeleteDeal(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.deals {
		if d.ID == id {
			r.deals = append(r.deals[:i], r.deals[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}
