package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cosmic_reports_generated_total",
		Help: "Report generation attempts by outcome.",
	}, []string{"outcome"})

	llmLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cosmic_llm_request_duration_seconds",
		Help:    "Latency of completion calls.",
		Buckets: []float64{1, 2.5, 5, 10, 20, 40, 80, 120},
	})

	creditsGranted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cosmic_credits_granted_total",
		Help: "Report credits added by verified payments.",
	})

	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cosmic_stripe_webhook_events_total",
		Help: "Stripe webhook deliveries by event type and outcome.",
	}, []string{"type", "outcome"})

	emailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cosmic_report_emails_total",
		Help: "Report emails by outcome.",
	}, []string{"outcome"})
)
