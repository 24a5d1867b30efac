package main

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// searchTotal counts searches by how they ended
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_search_total",
		Help: "Total searches by result",
	}, []string{"result"}) // found, exhausted, blocked, unreachable, error

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
	})

	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_nodes",
		Help:    "Nodes expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 14),
	})

	pathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_path_length",
		Help:    "Cells per returned path",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 200, 500},
	})
)

// tracedSearch runs SearchWithStats inside a span and records metrics
func tracedSearch(ctx context.Context, grid *Grid, start, target Position, options ...SearchOption) (SearchResult, error) {
	_, span := otel.Tracer("grid-path-planner").Start(ctx, "Search",
		trace.WithAttributes(
			attribute.Int("start.row", start.Row),
			attribute.Int("start.col", start.Col),
			attribute.Int("target.row", target.Row),
			attribute.Int("target.col", target.Col),
		),
	)
	defer span.End()

	began := time.Now()
	result, err := SearchWithStats(grid, start, target, options...)
	searchDuration.Observe(time.Since(began).Seconds())

	outcome := searchOutcome(result, err)
	searchTotal.WithLabelValues(outcome).Inc()
	span.SetAttributes(
		attribute.String("result", outcome),
		attribute.Int("expanded", result.Expanded),
		attribute.Int("path.length", len(result.Path)),
	)

	if err != nil && !errors.Is(err, ErrUnreachable) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	searchExpanded.Observe(float64(result.Expanded))
	pathLength.Observe(float64(len(result.Path)))
	return result, err
}

func searchOutcome(result SearchResult, err error) string {
	switch {
	case errors.Is(err, ErrUnreachable):
		return "unreachable"
	case err != nil:
		return "error"
	case result.State == StateIdle:
		return "blocked"
	}
	return result.State.String()
}
