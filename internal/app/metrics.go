package app

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

type movieMetrics struct {
	created metric.Int64Counter
	updated metric.Int64Counter
	deleted metric.Int64Counter
}

func newMovieMetrics(meter metric.Meter) (*movieMetrics, error) {
	created, err := meter.Int64Counter("movies.created",
		metric.WithDescription("Number of movies added to the catalog"))
	if err != nil {
		return nil, err
	}

	updated, err := meter.Int64Counter("movies.updated",
		metric.WithDescription("Number of movie updates applied"))
	if err != nil {
		return nil, err
	}

	deleted, err := meter.Int64Counter("movies.deleted",
		metric.WithDescription("Number of movies removed from the catalog"))
	if err != nil {
		return nil, err
	}

	return &movieMetrics{
		created: created,
		updated: updated,
		deleted: deleted,
	}, nil
}

func (m *movieMetrics) recordCreated(ctx context.Context) {
	m.created.Add(ctx, 1)
}

func (m *movieMetrics) recordUpdated(ctx context.Context) {
	m.updated.Add(ctx, 1)
}

func (m *movieMetrics) recordDeleted(ctx context.Context) {
	m.deleted.Add(ctx, 1)
}
