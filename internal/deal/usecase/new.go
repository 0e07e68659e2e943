package usecase

import (
	"time"

	"pneuma-faq-bot/internal/deal"
	"pneuma-faq-bot/internal/deal/repository"
	"pneuma-faq-bot/pkg/datemath"
	"pneuma-faq-bot/pkg/log"
)

// implUseCase is the private implementation of deal.UseCase.
type implUseCase struct {
	repo  repository.Repository
	dates *datemath.Parser
	now   func() time.Time
	l     log.Logger
}

var _ deal.UseCase = (*implUseCase)(nil)

// New creates a new deal UseCase implementation.
func New(repo repository.Repository, dates *datemath.Parser, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		dates: dates,
		now:   time.Now,
		l:     l,
	}
}

// WithClock overrides the clock used to resolve relative days.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
