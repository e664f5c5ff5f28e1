// Package observability provides metrics and tracing plumbing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hugin_api_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// ReplyLookupDuration records how long one reply-list resolution takes.
	ReplyLookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hugin_api_reply_lookup_duration_seconds",
		Help:    "Latency of a single reply-list lookup during enrichment",
		Buckets: prometheus.DefBuckets,
	})

	// PopularityQueryDuration records aggregate ranking query latency by view.
	PopularityQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hugin_api_popularity_query_duration_seconds",
		Help:    "Latency of popularity ranking queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})
)
