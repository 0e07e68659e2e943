package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pneuma-faq-bot/config"
	"pneuma-faq-bot/internal/catalog"
	"pneuma-faq-bot/internal/matcher"
	"pneuma-faq-bot/internal/responder"
	"pneuma-faq-bot/pkg/log"
)

func TestBuild_Default(t *testing.T) {
	router, err := catalog.Build(catalog.Default(false), matcher.Config{}, responder.Options{}, log.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"Deals & Offers", "Mileage & Rewards", "Account & Setup"}, router.Topics)
	assert.Equal(t, "Mileage & Rewards", router.Titles[catalog.IntentMileage])

	matches := router.Matcher.Match("how do I transfer miles")
	require.NotEmpty(t, matches)
	assert.Equal(t, catalog.IntentMileage, matches[0].IntentID)
	assert.Equal(t, 1.0, matches[0].Score)

	h, err := router.Registry.Resolve(catalog.IntentMileage)
	require.NoError(t, err)
	text, err := router.Registry.Produce(context.Background(), h, responder.Request{Text: "how do I transfer miles"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "✈️ Transferring miles with Pneuma is simple:"))
	assert.Contains(t, text, "4. Enter amount and confirm")

	matches = router.Matcher.Match("what deals do you have today")
	require.NotEmpty(t, matches)
	assert.Equal(t, catalog.IntentDeals, matches[0].IntentID)
	assert.GreaterOrEqual(t, matches[0].Score, 0.5)

	assert.Empty(t, router.Matcher.Match("asdkjasd"))
}

func TestDefault_Generative(t *testing.T) {
	c := catalog.Default(true)
	for _, in := range c.Intents {
		assert.Equal(t, responder.KindGenerator, in.Handler.Kind, in.ID)
		assert.NotEmpty(t, in.Handler.Generator.SystemPrompt, in.ID)
		assert.NotEmpty(t, in.Handler.Generator.FallbackText, in.ID)
		assert.NotEmpty(t, in.Handler.Replies, in.ID)
		assert.Equal(t, in.ID, in.Handler.IntentID)
	}

	_, err := catalog.Build(c, matcher.Config{}, responder.Options{}, log.NewNop())
	require.NoError(t, err)
}

func TestGeneralHandler(t *testing.T) {
	h := catalog.GeneralHandler("")
	assert.Equal(t, catalog.OnboardingPrompt, h.Generator.SystemPrompt)
	assert.NotEmpty(t, h.Generator.FallbackText)

	assert.Equal(t, "custom", catalog.GeneralHandler("custom").Generator.SystemPrompt)
}

func TestValidate(t *testing.T) {
	assert.True(t, errors.Is(catalog.Catalog{}.Validate(), catalog.ErrEmptyCatalog))

	c := catalog.Default(false)
	c.Intents[1].Handler.IntentID = catalog.IntentDeals
	assert.True(t, errors.Is(c.Validate(), catalog.ErrHandlerMismatch))

	_, err := catalog.Build(c, matcher.Config{}, responder.Options{}, log.NewNop())
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	assert.Len(t, catalog.FromConfig(nil, false).Intents, 3)

	c := catalog.FromConfig([]config.IntentConfig{
		{
			ID:       "opening_hours",
			Title:    "Opening Hours",
			Triggers: []config.TriggerConfig{{Phrase: "open"}, {Phrase: "hours", Weight: 2}},
			Handler: config.HandlerConfig{
				Kind:    "static",
				Text:    "We are open 9-5.",
				Replies: []config.ReplyConfig{{Keyword: "sunday", Text: "Closed on Sundays."}},
			},
		},
	}, false)

	router, err := catalog.Build(c, matcher.Config{}, responder.Options{}, log.NewNop())
	require.NoError(t, err)

	matches := router.Matcher.Match("what are your hours")
	require.Len(t, matches, 1)
	assert.Equal(t, 1.0, matches[0].Score)

	h, _ := router.Registry.Resolve("opening_hours")
	text, err := router.Registry.Produce(context.Background(), h, responder.Request{Text: "open on sunday?"})
	require.NoError(t, err)
	assert.Equal(t, "Closed on Sundays.", text)
}

func TestFromConfig_InvalidHandlerFailsBuild(t *testing.T) {
	c := catalog.FromConfig([]config.IntentConfig{
		{ID: "x", Triggers: []config.TriggerConfig{{Phrase: "x"}}, Handler: config.HandlerConfig{Kind: "carrier_pigeon"}},
	}, false)

	_, err := catalog.Build(c, matcher.Config{}, responder.Options{}, log.NewNop())
	assert.True(t, errors.Is(err, responder.ErrUnknownKind))
}
