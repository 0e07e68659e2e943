package responder

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"pneuma-faq-bot/pkg/datemath"
	"pneuma-faq-bot/pkg/log"
)

type implRegistry struct {
	handlers  map[string]Handler
	order     []string
	sources   map[string]Source
	generator Generator
	timeout   time.Duration
	dates     *datemath.Parser
	now       func() time.Time
	l         log.Logger
}

var _ Registry = (*implRegistry)(nil)

// NewRegistry validates every handler and pre-parses lookup templates.
func NewRegistry(handlers []Handler, opts Options, l log.Logger) (*implRegistry, error) {
	tz := opts.Timezone
	if tz == "" {
		tz = "UTC"
	}
	dates, err := datemath.NewParser(tz)
	if err != nil {
		return nil, err
	}

	r := &implRegistry{
		handlers:  make(map[string]Handler, len(handlers)),
		sources:   opts.Sources,
		generator: opts.Generator,
		timeout:   opts.Timeout,
		dates:     dates,
		now:       opts.Now,
		l:         l,
	}
	if r.timeout <= 0 {
		r.timeout = DefaultGeneratorTimeout
	}
	if r.now == nil {
		r.now = time.Now
	}

	for _, h := range handlers {
		if strings.TrimSpace(h.IntentID) == "" {
			return nil, ErrEmptyIntentID
		}
		if _, dup := r.handlers[h.IntentID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateHandler, h.IntentID)
		}
		if err := prepare(&h); err != nil {
			return nil, fmt.Errorf("handler %q: %w", h.IntentID, err)
		}
		r.handlers[h.IntentID] = h
		r.order = append(r.order, h.IntentID)
	}

	return r, nil
}

// prepare checks the fields its kind needs and fills defaults.
func prepare(h *Handler) error {
	for _, rp := range h.Replies {
		if strings.TrimSpace(rp.Keyword) == "" || strings.TrimSpace(rp.Text) == "" {
			return fmt.Errorf("%w: keyword reply needs keyword and text", ErrInvalidHandler)
		}
	}

	switch h.Kind {
	case KindStatic:
		if strings.TrimSpace(h.Text) == "" {
			return fmt.Errorf("%w: static text is empty", ErrInvalidHandler)
		}

	case KindLookup:
		if h.Lookup.Source == "" {
			return fmt.Errorf("%w: lookup source is empty", ErrInvalidHandler)
		}
		if h.Lookup.Day == "" {
			h.Lookup.Day = DefaultLookupDay
		}
		if strings.TrimSpace(h.Lookup.Template) == "" {
			return fmt.Errorf("%w: lookup template is empty", ErrInvalidHandler)
		}
		tmpl, err := template.New(h.IntentID).Option("missingkey=error").Parse(h.Lookup.Template)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidHandler, err)
		}
		h.tmpl = tmpl

	case KindGenerator:
		if strings.TrimSpace(h.Generator.SystemPrompt) == "" {
			return fmt.Errorf("%w: system prompt is empty", ErrInvalidHandler)
		}
		if h.Generator.MaxTokens < 0 || h.Generator.Temperature < 0 || h.Generator.Temperature > 2 {
			return fmt.Errorf("%w: max tokens or temperature out of range", ErrInvalidHandler)
		}
		if h.Generator.MaxTokens == 0 {
			h.Generator.MaxTokens = DefaultMaxTokens
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, h.Kind)
	}
	return nil
}

// Resolve returns the handler registered for intentID.
func (r *implRegistry) Resolve(intentID string) (Handler, error) {
	h, ok := r.handlers[intentID]
	if !ok {
		return Handler{}, fmt.Errorf("%w: %q", ErrUnknownIntent, intentID)
	}
	return h, nil
}

// IntentIDs lists registered intents in registration order.
func (r *implRegistry) IntentIDs() []string {
	return append([]string(nil), r.order...)
}
