package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pneuma-faq-bot/internal/matcher"
	"pneuma-faq-bot/internal/metrics"
	"pneuma-faq-bot/internal/model"
	"pneuma-faq-bot/internal/policy"
	"pneuma-faq-bot/internal/responder"
	"pneuma-faq-bot/pkg/log"
)

// Handle routes msg through matcher, policy and registry and returns exactly
// one reply. Panics in any stage are recovered into the apology.
func (uc *implUseCase) Handle(ctx context.Context, msg model.InboundMessage) (reply Reply) {
	start := time.Now()
	if log.TraceID(ctx) == "" {
		ctx = log.WithTraceID(ctx, msg.ID.String())
	}

	defer func() {
		if p := recover(); p != nil {
			uc.l.Errorf(ctx, "dispatcher.Handle panic: %v", p)
			reply = uc.degrade(reply, reasonPanic)
		}
		if strings.TrimSpace(reply.Text) == "" {
			reply = uc.degrade(reply, reasonEmptyReply)
		}

		intent := reply.IntentID
		if intent == "" {
			intent = noIntentLabel
		}
		metrics.DispatchTotal.WithLabelValues(intent, string(reply.Action)).Inc()
		metrics.DispatchDuration.WithLabelValues(string(reply.Action)).Observe(time.Since(start).Seconds())
	}()

	matches := uc.matcher.Match(msg.Text)
	d := uc.policy.Decide(matches)
	reply = Reply{Action: d.Action, IntentID: d.IntentID, Score: d.Score}

	uc.l.Debugf(ctx, "dispatcher.Handle channel=%s matches=%d action=%s intent=%s score=%.2f",
		msg.Channel, len(matches), d.Action, d.IntentID, d.Score)

	switch d.Action {
	case policy.ActionUseBest:
		h, err := uc.registry.Resolve(d.IntentID)
		if err != nil {
			uc.l.Errorf(ctx, "dispatcher.Handle Resolve: %v", err)
			return uc.degrade(reply, reasonUnknownIntent)
		}
		return uc.produce(ctx, reply, h, msg)

	case policy.ActionDelegateToGenerator:
		if uc.opts.GeneralHandler == nil {
			reply.Action = policy.ActionAskClarification
			reply.Text = uc.clarify(nil)
			return reply
		}
		return uc.produce(ctx, reply, *uc.opts.GeneralHandler, msg)

	case policy.ActionAskClarification:
		reply.Text = uc.clarify(d.Candidates)
		return reply
	}

	uc.l.Errorf(ctx, "dispatcher.Handle unknown action %q", d.Action)
	return uc.degrade(reply, reasonProduce)
}

// produce runs h. Generator failures use the handler's canned fallback when
// it has one. Every other failure becomes the apology.
func (uc *implUseCase) produce(ctx context.Context, reply Reply, h responder.Handler, msg model.InboundMessage) Reply {
	text, err := uc.registry.Produce(ctx, h, responder.Request{Text: msg.Text, From: msg.From})
	if err == nil {
		reply.Text = text
		return reply
	}

	switch {
	case errors.Is(err, responder.ErrGeneratorUnavailable):
		uc.l.Warnf(ctx, "dispatcher.produce %s: %v", h.IntentID, err)
		if text := h.Fallback(msg.Text); text != "" {
			metrics.DispatchFailures.WithLabelValues(reasonGeneratorUnavailable).Inc()
			reply.Text = text
			reply.Degraded = true
			return reply
		}
		return uc.degrade(reply, reasonGeneratorUnavailable)

	case errors.Is(err, responder.ErrDataUnavailable):
		uc.l.Warnf(ctx, "dispatcher.produce %s: %v", h.IntentID, err)
		return uc.degrade(reply, reasonDataUnavailable)

	case errors.Is(err, responder.ErrUnknownIntent):
		uc.l.Errorf(ctx, "dispatcher.produce %s: %v", h.IntentID, err)
		return uc.degrade(reply, reasonUnknownIntent)
	}

	uc.l.Errorf(ctx, "dispatcher.produce %s: %v", h.IntentID, err)
	return uc.degrade(reply, reasonProduce)
}

func (uc *implUseCase) degrade(reply Reply, reason string) Reply {
	metrics.DispatchFailures.WithLabelValues(reason).Inc()
	reply.Text = uc.opts.ApologyText
	reply.Degraded = true
	return reply
}

// clarify asks between the candidates, or lists every topic when there are none.
func (uc *implUseCase) clarify(candidates []matcher.Match) string {
	if len(candidates) > 0 {
		titles := make([]string, 0, len(candidates))
		for _, c := range candidates {
			titles = append(titles, uc.title(c.IntentID))
		}
		return fmt.Sprintf(clarifyCandidatesFormat, joinOr(titles))
	}
	if len(uc.opts.Topics) > 0 {
		return fmt.Sprintf(clarifyTopicsFormat, joinOr(uc.opts.Topics))
	}
	return clarifyFallbackText
}

func (uc *implUseCase) title(intentID string) string {
	if t, ok := uc.opts.Titles[intentID]; ok && t != "" {
		return t
	}
	return intentID
}

// joinOr renders "a", "a or b", "a, b or c".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
