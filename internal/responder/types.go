package responder

import (
	"text/template"
	"time"
)

// Handler produces the reply for one intent. Kind selects which of the
// variant fields apply. Replies serve static handlers and the fallback of
// generator handlers.
type Handler struct {
	IntentID  string
	Kind      Kind
	Text      string
	Replies   []Reply
	Lookup    LookupSpec
	Generator GeneratorSpec

	tmpl *template.Template
}

// Reply is a static answer chosen when Keyword occurs in the message.
type Reply struct {
	Keyword string
	Text    string
}

// LookupSpec renders Template over the data a named source returns for Day.
type LookupSpec struct {
	Source   string
	Day      string
	Template string
}

// GeneratorSpec asks the LLM for a reply. FallbackText is returned by the
// dispatcher when the generator fails and no keyword reply applies.
type GeneratorSpec struct {
	SystemPrompt string
	MaxTokens    int
	Temperature  float64
	FallbackText string
}

// Request carries the message a handler answers.
type Request struct {
	Text string
	From string
}

// Options configures a Registry. Sources and Generator may be nil when no
// handler needs them.
type Options struct {
	Sources   map[string]Source
	Generator Generator
	Timeout   time.Duration
	Timezone  string
	Now       func() time.Time
}

// TemplateData is what lookup templates see.
type TemplateData struct {
	Day   string
	Date  time.Time
	Items any
}
