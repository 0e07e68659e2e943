package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pneuma-faq-bot/internal/deal"
	"pneuma-faq-bot/internal/deal/repository/memory"
	"pneuma-faq-bot/internal/deal/usecase"
	"pneuma-faq-bot/internal/model"
	"pneuma-faq-bot/pkg/datemath"
	"pneuma-faq-bot/pkg/log"
)

var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

func newUseCase(t *testing.T, seed []model.Deal) deal.UseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := memory.New(log.NewNop(), seed)
	return usecase.New(repo, parser, log.NewNop()).WithClock(func() time.Time { return fixedNow })
}

func TestList(t *testing.T) {
	uc := newUseCase(t, []model.Deal{
		{ID: "z-daily", Title: "Double points on travel"},
		{ID: "b", Day: "2024-05-01", Title: "25% off dining"},
		{ID: "a", Day: "2024-05-01", Title: "Flash electronics sale"},
		{ID: "c", Day: "2024-05-02", Title: "Tomorrow only"},
	})

	out, err := uc.List(context.Background(), deal.ListInput{Day: "today"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Day != "2024-05-01" {
		t.Errorf("expected day 2024-05-01, got %s", out.Day)
	}
	want := []string{"a", "b", "z-daily"}
	if len(out.Deals) != len(want) {
		t.Fatalf("expected %d deals, got %+v", len(want), out.Deals)
	}
	for i, id := range want {
		if out.Deals[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, out.Deals[i].ID)
		}
	}

	out, err = uc.List(context.Background(), deal.ListInput{Day: "tomorrow"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Deals) != 2 || out.Deals[0].ID != "c" {
		t.Errorf("unexpected tomorrow deals: %+v", out.Deals)
	}
}

func TestList_InvalidDay(t *testing.T) {
	uc := newUseCase(t, nil)

	_, err := uc.List(context.Background(), deal.ListInput{Day: "someday"})
	if !errors.Is(err, deal.ErrInvalidDay) {
		t.Errorf("expected ErrInvalidDay, got %v", err)
	}
}

func TestFetch(t *testing.T) {
	uc := newUseCase(t, []model.Deal{{ID: "b", Day: "2024-05-01", Title: "25% off dining"}})

	data, found, err := uc.Fetch(context.Background(), fixedNow)
	if err != nil || !found {
		t.Fatalf("expected deals, got found=%v err=%v", found, err)
	}
	deals, ok := data.([]model.Deal)
	if !ok || len(deals) != 1 {
		t.Errorf("unexpected data: %#v", data)
	}

	_, found, err = uc.Fetch(context.Background(), fixedNow.AddDate(0, 0, 3))
	if err != nil || found {
		t.Errorf("expected no deals, got found=%v err=%v", found, err)
	}
}

func TestCreate(t *testing.T) {
	uc := newUseCase(t, nil)
	ctx := context.Background()

	out, err := uc.Create(ctx, deal.CreateInput{Title: "  Coffee 2-for-1 ", Day: "next monday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Deal.ID == "" {
		t.Errorf("expected generated id")
	}
	if out.Deal.Day != "2024-05-06" {
		t.Errorf("expected 2024-05-06, got %s", out.Deal.Day)
	}
	if out.Deal.Title != "Coffee 2-for-1" {
		t.Errorf("expected trimmed title, got %q", out.Deal.Title)
	}

	recurring, err := uc.Create(ctx, deal.CreateInput{ID: "daily", Title: "Every day"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recurring.Deal.Recurring() {
		t.Errorf("expected recurring deal, got day %q", recurring.Deal.Day)
	}

	if _, err := uc.Create(ctx, deal.CreateInput{Title: " "}); !errors.Is(err, deal.ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}
	if _, err := uc.Create(ctx, deal.CreateInput{Title: "x", Day: "whenever"}); !errors.Is(err, deal.ErrInvalidDay) {
		t.Errorf("expected ErrInvalidDay, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	uc := newUseCase(t, []model.Deal{{ID: "x", Title: "gone soon"}})

	if err := uc.Delete(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(context.Background(), "x"); !errors.Is(err, deal.ErrDealNotFound) {
		t.Errorf("expected ErrDealNotFound, got %v", err)
	}
}
