// Package metrics 集中定義 prometheus 指標，由 InitPrometheus 註冊一次。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	TicketsIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_issued_total",
			Help: "Tickets added to ledgers, by kind and source",
		},
		[]string{"kind", "source"},
	)
	TicketsConsumed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_consumed_total",
			Help: "Tickets marked used",
		},
	)
	AdRewardsDeclined = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_rewards_declined_total",
			Help: "Ad rewards that did not produce a ticket",
		},
		[]string{"reason"},
	)
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_generations_total",
			Help: "Image generation attempts by tier and result",
		},
		[]string{"tier", "result"},
	)
	Interviews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dream_interviews_total",
			Help: "AI interviews started and completed",
		},
		[]string{"event"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "generation_rate_limited_total",
			Help: "Generation requests rejected by the per-user limiter",
		},
	)
)

var registerOnce sync.Once

// InitPrometheus 在 main 呼叫；重複呼叫不會重複註冊
func InitPrometheus() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(TicketsIssued)
		prometheus.MustRegister(TicketsConsumed)
		prometheus.MustRegister(AdRewardsDeclined)
		prometheus.MustRegister(Generations)
		prometheus.MustRegister(Interviews)
		prometheus.MustRegister(RateLimited)
	})
}
