// Package observability exposes Prometheus instruments for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobport_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheOutcomes counts cache-aside hits and misses.
	CacheOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobport_cache_outcomes_total",
		Help: "Cache-aside lookups by outcome (hit/miss)",
	}, []string{"outcome"})

	// JobsCreated counts job postings by resulting status.
	JobsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobport_jobs_created_total",
		Help: "Total number of jobs posted by status",
	}, []string{"status"})

	// ApplicationsSubmitted counts successful application submissions.
	ApplicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobport_applications_submitted_total",
		Help: "Total number of applications submitted",
	})

	// ModerationActions counts bulk moderation decisions by entity and action.
	ModerationActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobport_moderation_actions_total",
		Help: "Total moderation decisions by entity and action",
	}, []string{"entity", "action"})
)
