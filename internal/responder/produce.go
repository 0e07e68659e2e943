package responder

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"pneuma-faq-bot/internal/matcher"
	"pneuma-faq-bot/pkg/llmprovider"
)

// Produce runs h for req. Lookup failures wrap ErrDataUnavailable and
// generator failures wrap ErrGeneratorUnavailable.
func (r *implRegistry) Produce(ctx context.Context, h Handler, req Request) (string, error) {
	switch h.Kind {
	case KindStatic:
		return r.produceStatic(h, req), nil
	case KindLookup:
		return r.produceLookup(ctx, h)
	case KindGenerator:
		return r.produceGenerator(ctx, h, req)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, h.Kind)
	}
}

func (r *implRegistry) produceStatic(h Handler, req Request) string {
	return pickReply(h.Replies, req.Text, h.Text)
}

// Fallback is the canned answer for a generator handler whose call failed.
// A keyword reply found in text wins over FallbackText. Empty means none.
func (h Handler) Fallback(text string) string {
	return pickReply(h.Replies, text, h.Generator.FallbackText)
}

func pickReply(replies []Reply, text, def string) string {
	for _, rp := range replies {
		if matcher.ContainsPhrase(text, rp.Keyword) {
			return rp.Text
		}
	}
	return def
}

func (r *implRegistry) produceLookup(ctx context.Context, h Handler) (string, error) {
	src, ok := r.sources[h.Lookup.Source]
	if !ok || src == nil {
		return "", fmt.Errorf("%w: no source %q", ErrDataUnavailable, h.Lookup.Source)
	}

	day, err := r.dates.Parse(h.Lookup.Day, r.now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	data, found, err := src.Fetch(ctx, day)
	if err != nil {
		r.l.Warnf(ctx, "responder.produceLookup Fetch %s: %v", h.Lookup.Source, err)
		return "", fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if !found {
		return "", fmt.Errorf("%w: nothing for %s", ErrDataUnavailable, r.dates.DayKey(day))
	}

	tmpl := h.tmpl
	if tmpl == nil {
		if tmpl, err = template.New(h.IntentID).Option("missingkey=error").Parse(h.Lookup.Template); err != nil {
			return "", fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, TemplateData{Day: r.dates.DayKey(day), Date: day, Items: data}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", fmt.Errorf("%w: template rendered nothing", ErrDataUnavailable)
	}
	return text, nil
}

type generation struct {
	resp *llmprovider.Response
	err  error
}

// produceGenerator bounds the call with the registry timeout even when the
// backend ignores ctx.
func (r *implRegistry) produceGenerator(ctx context.Context, h Handler, req Request) (string, error) {
	if r.generator == nil {
		return "", fmt.Errorf("%w: no generator configured", ErrGeneratorUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan generation, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- generation{err: fmt.Errorf("generator panic: %v", p)}
			}
		}()
		resp, err := r.generator.GenerateContent(ctx, &llmprovider.Request{
			SystemInstruction: &llmprovider.Message{
				Role:  "system",
				Parts: []llmprovider.Part{{Text: h.Generator.SystemPrompt}},
			},
			Messages:    []llmprovider.Message{llmprovider.NewTextMessage("user", req.Text)},
			MaxTokens:   h.Generator.MaxTokens,
			Temperature: h.Generator.Temperature,
		})
		done <- generation{resp: resp, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("%w: %v", ErrGeneratorUnavailable, res.err)
		}
		if res.resp == nil {
			return "", fmt.Errorf("%w: empty response", ErrGeneratorUnavailable)
		}
		text := strings.TrimSpace(res.resp.Content.Text())
		if text == "" {
			return "", fmt.Errorf("%w: empty response", ErrGeneratorUnavailable)
		}
		return text, nil
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrGeneratorUnavailable, ctx.Err())
	}
}
