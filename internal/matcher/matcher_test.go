package matcher_test

import (
	"errors"
	"testing"

	"pneuma-faq-bot/internal/matcher"
)

func faqPatterns() []matcher.Pattern {
	return []matcher.Pattern{
		{
			ID:    "deals_and_offers",
			Title: "Deals & Offers",
			Triggers: []matcher.Trigger{
				{Phrase: "deal"}, {Phrase: "offer"}, {Phrase: "discount"}, {Phrase: "promo"},
			},
		},
		{
			ID:    "mileage_and_rewards",
			Title: "Mileage & Rewards",
			Triggers: []matcher.Trigger{
				{Phrase: "mile"}, {Phrase: "point"}, {Phrase: "transfer"}, {Phrase: "earn"},
			},
		},
		{
			ID:    "account_and_setup",
			Title: "Account & Setup",
			Triggers: []matcher.Trigger{
				{Phrase: "account"}, {Phrase: "sign up"}, {Phrase: "login"},
			},
		},
	}
}

func newMatcher(t *testing.T) *matcher.KeywordMatcher {
	t.Helper()
	m, err := matcher.New(faqPatterns(), matcher.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Lowercase and trim", in: "  What DEALS  ", want: "what deals"},
		{name: "Collapse whitespace", in: "how\tdo   I\n transfer", want: "how do i transfer"},
		{name: "Punctuation becomes space", in: "sign-up? now!", want: "sign up now"},
		{name: "Empty", in: "   ", want: ""},
		{name: "Only punctuation", in: "?!...", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	m := newMatcher(t)

	tests := []struct {
		name       string
		text       string
		wantFirst  string
		wantScore  float64
		wantLength int
	}{
		{name: "Single trigger", text: "What deals do you have today", wantFirst: "deals_and_offers", wantScore: 0.5, wantLength: 1},
		{name: "Two triggers saturate", text: "How do I transfer miles?", wantFirst: "mileage_and_rewards", wantScore: 1.0, wantLength: 1},
		{name: "Multi-word trigger", text: "I want to SIGN UP", wantFirst: "account_and_setup", wantScore: 0.5, wantLength: 1},
		{name: "Punctuated multi-word trigger", text: "sign-up please", wantFirst: "account_and_setup", wantScore: 0.5, wantLength: 1},
		{name: "Higher score ranks first", text: "transfer points from my account", wantFirst: "mileage_and_rewards", wantScore: 1.0, wantLength: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.text)
			if len(got) != tt.wantLength {
				t.Fatalf("expected %d matches, got %d: %+v", tt.wantLength, len(got), got)
			}
			if got[0].IntentID != tt.wantFirst {
				t.Errorf("expected first %s, got %s", tt.wantFirst, got[0].IntentID)
			}
			if got[0].Score != tt.wantScore {
				t.Errorf("expected score %v, got %v", tt.wantScore, got[0].Score)
			}
		})
	}
}

func TestMatch_NoTrigger(t *testing.T) {
	m := newMatcher(t)

	for _, text := range []string{"asdkjasd", "", "   ", "hello there"} {
		got := m.Match(text)
		if got == nil {
			t.Errorf("Match(%q) returned nil, want empty slice", text)
		}
		if len(got) != 0 {
			t.Errorf("Match(%q) = %+v, want empty", text, got)
		}
	}
}

func TestMatch_WordStartBoundary(t *testing.T) {
	m := newMatcher(t)

	// "earn" must not be found inside "learn".
	if got := m.Match("I want to learn"); len(got) != 0 {
		t.Errorf("expected no match, got %+v", got)
	}
	// Prefix of a longer word still counts: "deal" in "deals".
	if got := m.Match("deals?"); len(got) != 1 {
		t.Errorf("expected a match on plural, got %+v", got)
	}
}

func TestMatch_ScoresWithinUnitRange(t *testing.T) {
	m := newMatcher(t)

	got := m.Match("deal offer discount promo deal")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Score != 1.0 {
		t.Errorf("expected score clamped to 1, got %v", got[0].Score)
	}
	// A trigger repeated in the message counts once.
	if len(got[0].Triggers) != 4 {
		t.Errorf("expected 4 distinct triggers, got %v", got[0].Triggers)
	}
}

func TestMatch_TieBreakByDeclarationOrder(t *testing.T) {
	m := newMatcher(t)

	got := m.Match("any deal on miles")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Score != got[1].Score {
		t.Fatalf("expected equal scores, got %v and %v", got[0].Score, got[1].Score)
	}
	if got[0].IntentID != "deals_and_offers" || got[1].IntentID != "mileage_and_rewards" {
		t.Errorf("expected declaration order, got %s then %s", got[0].IntentID, got[1].IntentID)
	}
	if got[0].Order >= got[1].Order {
		t.Errorf("expected ascending order index, got %d and %d", got[0].Order, got[1].Order)
	}
}

func TestMatch_Weights(t *testing.T) {
	m, err := matcher.New([]matcher.Pattern{
		{ID: "low", Triggers: []matcher.Trigger{{Phrase: "miles", Weight: 0.5}}},
		{ID: "high", Triggers: []matcher.Trigger{{Phrase: "miles", Weight: 2}}},
	}, matcher.Config{Saturation: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := m.Match("miles")
	if got[0].IntentID != "high" || got[0].Score != 0.5 {
		t.Errorf("expected high first with 0.5, got %+v", got[0])
	}
	if got[1].Score != 0.125 {
		t.Errorf("expected 0.125, got %v", got[1].Score)
	}
}

func TestMatch_DoesNotMutateInput(t *testing.T) {
	m := newMatcher(t)

	text := "  How do I TRANSFER miles?  "
	original := text
	_ = m.Match(text)
	if text != original {
		t.Errorf("input mutated: %q", text)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		patterns []matcher.Pattern
		cfg      matcher.Config
		wantErr  error
	}{
		{name: "No patterns", patterns: nil, wantErr: matcher.ErrNoPatterns},
		{name: "Empty id", patterns: []matcher.Pattern{{Triggers: []matcher.Trigger{{Phrase: "x"}}}}, wantErr: matcher.ErrEmptyID},
		{
			name: "Duplicate id",
			patterns: []matcher.Pattern{
				{ID: "a", Triggers: []matcher.Trigger{{Phrase: "x"}}},
				{ID: "a", Triggers: []matcher.Trigger{{Phrase: "y"}}},
			},
			wantErr: matcher.ErrDuplicateID,
		},
		{name: "No triggers", patterns: []matcher.Pattern{{ID: "a"}}, wantErr: matcher.ErrNoTriggers},
		{name: "Blank trigger", patterns: []matcher.Pattern{{ID: "a", Triggers: []matcher.Trigger{{Phrase: " ?! "}}}}, wantErr: matcher.ErrEmptyTrigger},
		{name: "Negative weight", patterns: []matcher.Pattern{{ID: "a", Triggers: []matcher.Trigger{{Phrase: "x", Weight: -1}}}}, wantErr: matcher.ErrNegativeWeight},
		{name: "Negative saturation", patterns: []matcher.Pattern{{ID: "a", Triggers: []matcher.Trigger{{Phrase: "x"}}}}, cfg: matcher.Config{Saturation: -1}, wantErr: matcher.ErrInvalidSaturation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := matcher.New(tt.patterns, tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestContainsPhrase(t *testing.T) {
	tests := []struct {
		text, phrase string
		want         bool
	}{
		{text: "What's my transfer LIMIT?", phrase: "limit", want: true},
		{text: "how to sign-up", phrase: "sign up", want: true},
		{text: "I want to learn", phrase: "earn", want: false},
		{text: "anything", phrase: "  ", want: false},
	}

	for _, tt := range tests {
		if got := matcher.ContainsPhrase(tt.text, tt.phrase); got != tt.want {
			t.Errorf("ContainsPhrase(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
		}
	}
}
