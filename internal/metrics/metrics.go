// Package metrics holds the prometheus collectors for the matchmaking service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "matchmaking"

// Metrics groups every collector the service records into.
type Metrics struct {
	Registry *prometheus.Registry

	LikesSent       prometheus.Counter
	LikesRejected   prometheus.Counter
	MatchesFormed   prometheus.Counter
	MatchRaceLost   prometheus.Counter
	QuotaCacheReads *prometheus.CounterVec
	RPCDuration     *prometheus.HistogramVec
}

// New creates the collectors and registers them on a fresh registry, along
// with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		LikesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "likes_sent_total",
			Help:      "Likes persisted.",
		}),
		LikesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "likes_rejected_total",
			Help:      "Like submissions refused because the daily quota was used up.",
		}),
		MatchesFormed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_formed_total",
			Help:      "Match records inserted.",
		}),
		MatchRaceLost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_race_lost_total",
			Help:      "Match formations that found the match already written by a concurrent request.",
		}),
		QuotaCacheReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_cache_reads_total",
			Help:      "Daily like counter reads by cache outcome.",
		}, []string{"result"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Unary RPC latency by method and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}

	reg.MustRegister(
		m.LikesSent,
		m.LikesRejected,
		m.MatchesFormed,
		m.MatchRaceLost,
		m.QuotaCacheReads,
		m.RPCDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}
