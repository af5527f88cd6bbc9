package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "charityevents"

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// EventsByStatus is refreshed periodically by the scheduler.
	EventsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_by_status",
		Help:      "Visible events per lifecycle status.",
	}, []string{"status"})

	CategoriesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "categories_total",
		Help:      "Distinct categories across visible events.",
	})

	EventsHidden = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_hidden_total",
		Help:      "Events hidden by moderation since process start.",
	})
)
