// SPDX-License-Identifier: MIT

package social

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/friendgraph/social"

// Query kinds used as span names and metric attributes.
const (
	queryFriends     = "friends"
	queryPath        = "shortest_path"
	queryReachable   = "reachable_from"
	queryComponents  = "components"
	queryConnections = "connections"
)

// Query outcomes used as metric attributes.
const (
	outcomeOK           = "ok"
	outcomeNoConnection = "no_connection"
	outcomeInvalidID    = "invalid_id"
	outcomeSamePerson   = "same_person"
	outcomeError        = "error"
)

// instruments bundles the tracer and metric instruments of one Network.
type instruments struct {
	tracer  trace.Tracer
	total   metric.Int64Counter
	latency metric.Float64Histogram
	visited metric.Int64Histogram
}

func newInstruments(mp metric.MeterProvider, tp trace.TracerProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)
	inst := &instruments{tracer: tp.Tracer(instrumentationName)}

	var err error
	inst.total, err = meter.Int64Counter(
		"friendgraph_queries_total",
		metric.WithDescription("Total number of graph queries by kind and outcome"),
	)
	if err != nil {
		return nil, err
	}

	inst.latency, err = meter.Float64Histogram(
		"friendgraph_query_duration_seconds",
		metric.WithDescription("Duration of graph queries"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	inst.visited, err = meter.Int64Histogram(
		"friendgraph_query_visited_nodes",
		metric.WithDescription("Vertices dequeued by the traversal behind a query"),
	)
	if err != nil {
		return nil, err
	}

	return inst, nil
}

// startQuery opens a span for one query.
func (i *instruments) startQuery(ctx context.Context, kind string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("friendgraph.query", kind))
	return i.tracer.Start(ctx, "Network."+kind, trace.WithAttributes(attrs...))
}

// record ends span and records the query metrics.
func (i *instruments) record(ctx context.Context, span trace.Span, kind, outcome string, start time.Time, visited int) {
	attrs := metric.WithAttributes(
		attribute.String("query", kind),
		attribute.String("outcome", outcome),
	)
	i.total.Add(ctx, 1, attrs)
	i.latency.Record(ctx, time.Since(start).Seconds(), attrs)
	if visited > 0 {
		i.visited.Record(ctx, int64(visited), metric.WithAttributes(attribute.String("query", kind)))
	}

	span.SetAttributes(
		attribute.String("friendgraph.outcome", outcome),
		attribute.Int("friendgraph.visited", visited),
	)
	span.End()
}
