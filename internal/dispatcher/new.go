package dispatcher

import (
	"pneuma-faq-bot/internal/matcher"
	"pneuma-faq-bot/internal/policy"
	"pneuma-faq-bot/internal/responder"
	"pneuma-faq-bot/pkg/log"
)

type implUseCase struct {
	matcher  matcher.Matcher
	policy   policy.Decider
	registry responder.Registry
	opts     Options
	l        log.Logger
}

var _ UseCase = (*implUseCase)(nil)

// New creates the dispatcher. An empty ApologyText uses DefaultApologyText.
func New(m matcher.Matcher, p policy.Decider, r responder.Registry, opts Options, l log.Logger) *implUseCase {
	if opts.ApologyText == "" {
		opts.ApologyText = DefaultApologyText
	}
	return &implUseCase{
		matcher:  m,
		policy:   p,
		registry: r,
		opts:     opts,
		l:        l,
	}
}
