package catalog

import (
	"pneuma-faq-bot/internal/matcher"
	"pneuma-faq-bot/internal/responder"
)

// Default returns the built-in Pneuma catalog. With generative set every
// intent is answered by the LLM and its canned texts, keyword replies
// included, become the fallback.
func Default(generative bool) Catalog {
	c := Catalog{Intents: []Intent{
		{
			ID:       IntentDeals,
			Title:    "Deals & Offers",
			Triggers: triggers("deal", "offer", "discount", "save", "sweet", "special", "promo", "coupon"),
			Handler: responder.Handler{
				Kind:   responder.KindLookup,
				Lookup: responder.LookupSpec{Source: SourceDeals, Day: "today", Template: DealsTemplate},
			},
		},
		{
			ID:       IntentMileage,
			Title:    "Mileage & Rewards",
			Triggers: triggers("mile", "point", "transfer", "redeem", "reward", "loyalty", "earn", "accumulate"),
			Handler: responder.Handler{
				Kind: responder.KindStatic,
				Text: mileageText,
				Replies: []responder.Reply{
					{Keyword: "limit", Text: mileageLimitText},
					{Keyword: "delta", Text: mileageDeltaText},
				},
			},
		},
		{
			ID:       IntentAccount,
			Title:    "Account & Setup",
			Triggers: triggers("account", "setup", "sign up", "register", "login", "getting started", "how to", "begin"),
			Handler: responder.Handler{
				Kind: responder.KindStatic,
				Text: accountText,
				Replies: []responder.Reply{
					{Keyword: "sign up", Text: accountSignUpText},
					{Keyword: "pneuma", Text: accountPneumaText},
					{Keyword: "login", Text: accountLoginText},
				},
			},
		},
	}}

	if generative {
		prompts := map[string]string{
			IntentDeals:   DealsPrompt,
			IntentMileage: RewardsPrompt,
			IntentAccount: OnboardingPrompt,
		}
		fallbacks := map[string]string{
			IntentDeals:   dealsFallbackText,
			IntentMileage: mileageText,
			IntentAccount: accountText,
		}
		dealsReplies := []responder.Reply{
			{Keyword: "today", Text: dealsTodayText},
			{Keyword: "dining", Text: dealsDiningText},
			{Keyword: "best", Text: dealsBestText},
		}
		for i := range c.Intents {
			id := c.Intents[i].ID
			replies := c.Intents[i].Handler.Replies
			if id == IntentDeals {
				replies = dealsReplies
			}
			c.Intents[i].Handler = responder.Handler{
				Kind:    responder.KindGenerator,
				Replies: replies,
				Generator: responder.GeneratorSpec{
					SystemPrompt: prompts[id],
					MaxTokens:    responder.DefaultMaxTokens,
					Temperature:  responder.DefaultTemperature,
					FallbackText: fallbacks[id],
				},
			}
		}
	}

	for i := range c.Intents {
		c.Intents[i].Handler.IntentID = c.Intents[i].ID
	}
	return c
}

// GeneralHandler answers messages no intent claims when the policy delegates
// to the generator. An empty prompt uses OnboardingPrompt.
func GeneralHandler(prompt string) responder.Handler {
	if prompt == "" {
		prompt = OnboardingPrompt
	}
	return responder.Handler{
		IntentID: "general",
		Kind:     responder.KindGenerator,
		Generator: responder.GeneratorSpec{
			SystemPrompt: prompt,
			MaxTokens:    responder.DefaultMaxTokens,
			Temperature:  responder.DefaultTemperature,
			FallbackText: accountText,
		},
	}
}

func triggers(phrases ...string) []matcher.Trigger {
	out := make([]matcher.Trigger, len(phrases))
	for i, p := range phrases {
		out[i] = matcher.Trigger{Phrase: p, Weight: matcher.DefaultTriggerWeight}
	}
	return out
}
