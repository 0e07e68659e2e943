package catalog

import (
	"pneuma-faq-bot/config"
	"pneuma-faq-bot/internal/matcher"
	"pneuma-faq-bot/internal/responder"
)

// FromConfig builds a catalog from configured intents. Without any it falls
// back to Default.
func FromConfig(intents []config.IntentConfig, generative bool) Catalog {
	if len(intents) == 0 {
		return Default(generative)
	}

	c := Catalog{Intents: make([]Intent, 0, len(intents))}
	for _, ic := range intents {
		in := Intent{ID: ic.ID, Title: ic.Title}
		for _, t := range ic.Triggers {
			in.Triggers = append(in.Triggers, matcher.Trigger{Phrase: t.Phrase, Weight: t.Weight})
		}

		h := ic.Handler
		in.Handler = responder.Handler{
			IntentID: ic.ID,
			Kind:     responder.Kind(h.Kind),
			Text:     h.Text,
			Lookup: responder.LookupSpec{
				Source:   h.Source,
				Day:      h.Day,
				Template: h.Template,
			},
			Generator: responder.GeneratorSpec{
				SystemPrompt: h.SystemPrompt,
				MaxTokens:    h.MaxTokens,
				Temperature:  h.Temperature,
				FallbackText: h.FallbackText,
			},
		}
		for _, r := range h.Replies {
			in.Handler.Replies = append(in.Handler.Replies, responder.Reply{Keyword: r.Keyword, Text: r.Text})
		}
		c.Intents = append(c.Intents, in)
	}
	return c
}
