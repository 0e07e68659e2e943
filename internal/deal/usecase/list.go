package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pneuma-faq-bot/internal/deal"
	repo "pneuma-faq-bot/internal/deal/repository"
	"pneuma-faq-bot/internal/model"
)

// List resolves the day expression and returns the deals running that day.
func (uc *implUseCase) List(ctx context.Context, input deal.ListInput) (deal.ListOutput, error) {
	day, err := uc.dates.Parse(input.Day, uc.now())
	if err != nil {
		return deal.ListOutput{}, fmt.Errorf("%w: %v", deal.ErrInvalidDay, err)
	}

	deals, err := uc.forDay(ctx, day)
	if err != nil {
		return deal.ListOutput{}, err
	}

	return deal.ListOutput{Day: uc.dates.DayKey(day), Deals: deals}, nil
}

// Fetch implements the lookup source contract used by the responder.
func (uc *implUseCase) Fetch(ctx context.Context, day time.Time) (any, bool, error) {
	deals, err := uc.forDay(ctx, day)
	if err != nil {
		return nil, false, err
	}
	return deals, len(deals) > 0, nil
}

// forDay lists dated deals first, then recurring ones, each by id.
func (uc *implUseCase) forDay(ctx context.Context, day time.Time) ([]model.Deal, error) {
	deals, err := uc.repo.ListDeals(ctx, repo.ListDealsOptions{
		Day:              uc.dates.DayKey(day),
		IncludeRecurring: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "deal.usecase.forDay ListDeals: %v", err)
		return nil, err
	}

	sort.SliceStable(deals, func(i, j int) bool {
		if deals[i].Recurring() != deals[j].Recurring() {
			return !deals[i].Recurring()
		}
		return deals[i].ID < deals[j].ID
	})
	return deals, nil
}
