package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	DBName          string
	SlowQueryThresh time.Duration
	// WithVariables includes bound values in span statements. Profiles hold
	// personal data, so this stays off outside development.
	WithVariables bool
}

type queryStartKey struct{}

// RegisterDBTracing installs otelgorm on db plus callbacks that flag slow
// statements on the query span.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.WithVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	thresh := cfg.SlowQueryThresh
	if thresh <= 0 {
		thresh = 200 * time.Millisecond
	}
	before := func(tx *gorm.DB) {
		if tx.Statement.Context != nil {
			tx.Statement.Context = context.WithValue(tx.Statement.Context, queryStartKey{}, time.Now())
		}
	}
	after := func(tx *gorm.DB) {
		markSlowQuery(tx, thresh)
	}

	cb := db.Callback()
	for _, err := range []error{
		cb.Create().Before("gorm:create").Register("rentflow:timing_before_create", before),
		cb.Query().Before("gorm:query").Register("rentflow:timing_before_query", before),
		cb.Update().Before("gorm:update").Register("rentflow:timing_before_update", before),
		cb.Delete().Before("gorm:delete").Register("rentflow:timing_before_delete", before),
		cb.Row().Before("gorm:row").Register("rentflow:timing_before_row", before),
		cb.Raw().Before("gorm:raw").Register("rentflow:timing_before_raw", before),
		cb.Create().After("gorm:create").Register("rentflow:slow_query_create", after),
		cb.Query().After("gorm:query").Register("rentflow:slow_query_query", after),
		cb.Update().After("gorm:update").Register("rentflow:slow_query_update", after),
		cb.Delete().After("gorm:delete").Register("rentflow:slow_query_delete", after),
		cb.Row().After("gorm:row").Register("rentflow:slow_query_row", after),
		cb.Raw().After("gorm:raw").Register("rentflow:slow_query_raw", after),
	} {
		if err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled", zap.Duration("slow_query_threshold", thresh))
	return nil
}

func markSlowQuery(tx *gorm.DB, thresh time.Duration) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	if tx.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", tx.Statement.Table))
	}
	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		RecordError(span, tx.Error)
	}

	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}
	if elapsed := time.Since(start); elapsed > thresh {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
	}
}
