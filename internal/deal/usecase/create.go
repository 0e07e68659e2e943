package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pneuma-faq-bot/internal/deal"
	repo "pneuma-faq-bot/internal/deal/repository"
	"pneuma-faq-bot/internal/model"
)

// Create stores a deal. A day expression is resolved to a YYYY-MM-DD key; an
// empty day makes the deal recurring. A missing id gets a fresh uuid.
func (uc *implUseCase) Create(ctx context.Context, input deal.CreateInput) (deal.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return deal.CreateOutput{}, fmt.Errorf("%w: title is required", deal.ErrInvalidPayload)
	}

	d := model.Deal{
		ID:          input.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Discount:    input.Discount,
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	if input.Day != "" {
		day, err := uc.dates.Parse(input.Day, uc.now())
		if err != nil {
			return deal.CreateOutput{}, fmt.Errorf("%w: %v", deal.ErrInvalidDay, err)
		}
		d.Day = uc.dates.DayKey(day)
	}

	saved, err := uc.repo.SaveDeal(ctx, repo.SaveDealOptions{Deal: d})
	if err != nil {
		uc.l.Errorf(ctx, "deal.usecase.Create SaveDeal: %v", err)
		return deal.CreateOutput{}, err
	}

	return deal.CreateOutput{Deal: saved}, nil
}

// Delete removes a deal by id.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteDeal(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return deal.ErrDealNotFound
		}
		uc.l.Errorf(ctx, "deal.usecase.Delete DeleteDeal: %v", err)
		return err
	}
	return nil
}
