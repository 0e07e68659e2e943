package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faqbot_dispatch_total",
			Help: "Total number of messages answered, by intent and action",
		},
		[]string{"intent", "action"},
	)

	DispatchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faqbot_dispatch_failures_total",
			Help: "Total number of degraded replies, by failure reason",
		},
		[]string{"reason"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "faqbot_dispatch_duration_seconds",
			Help:    "Duration of message dispatch in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 2, 4, 8, 16},
		},
		[]string{"action"},
	)

	InboundMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faqbot_inbound_messages_total",
			Help: "Total number of inbound messages, by channel",
		},
		[]string{"channel"},
	)

	WebhookRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faqbot_webhook_rejected_total",
			Help: "Total number of webhook requests rejected, by reason",
		},
		[]string{"reason"},
	)
)
