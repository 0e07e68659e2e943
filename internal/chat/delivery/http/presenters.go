package http

import (
	"encoding/json"
	"strings"
	"time"

	"pneuma-faq-bot/internal/dispatcher"
	"pneuma-faq-bot/pkg/response"
)

// webhookReq accepts the simple webhook shapes:
//
//	Twilio:  {"Body": "...", "From": "..."}
//	generic: {"message": {"text": "..."}, "from": "..."}
//	direct:  {"message": "...", "from": "..."}
//
// Object is set by Meta WhatsApp Cloud notifications.
type webhookReq struct {
	Object    string          `json:"object"`
	Body      string          `json:"Body"`
	FromUpper string          `json:"From"`
	Message   json.RawMessage `json:"message"`
	From      string          `json:"from"`
}

// text returns the message text and sender, following the shape precedence
// Twilio, generic, direct.
func (r webhookReq) text() (string, string) {
	if r.Body != "" {
		return r.Body, orDefault(r.FromUpper, defaultSender)
	}

	raw := strings.TrimSpace(string(r.Message))
	if raw == "" || raw == "null" {
		return "", ""
	}

	if strings.HasPrefix(raw, "{") {
		var generic struct {
			Text string `json:"text"`
		}
		if json.Unmarshal(r.Message, &generic) == nil {
			return generic.Text, orDefault(r.From, defaultSender)
		}
		return "", ""
	}

	var direct string
	if json.Unmarshal(r.Message, &direct) == nil {
		return direct, orDefault(r.From, defaultTestSender)
	}
	return "", ""
}

type webhookResp struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
	Intent  string `json:"intent"`
	From    string `json:"from"`
}

type webhookErrResp struct {
	Error string `json:"error"`
}

type chatReq struct {
	Message string `json:"message" binding:"required"`
	From    string `json:"from"`
}

type chatResp struct {
	Reply     string            `json:"reply"`
	Intent    string            `json:"intent,omitempty"`
	Action    string            `json:"action"`
	Score     float64           `json:"score"`
	Degraded  bool              `json:"degraded"`
	RepliedAt response.DateTime `json:"replied_at"`
}

func (h *handler) newWebhookResp(reply dispatcher.Reply, from string) webhookResp {
	return webhookResp{
		Success: true,
		Reply:   reply.Text,
		Intent:  reply.IntentID,
		From:    from,
	}
}

func (h *handler) newChatResp(reply dispatcher.Reply, at time.Time) chatResp {
	return chatResp{
		Reply:     reply.Text,
		Intent:    reply.IntentID,
		Action:    string(reply.Action),
		Score:     reply.Score,
		Degraded:  reply.Degraded,
		RepliedAt: response.DateTime(at),
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
