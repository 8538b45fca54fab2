package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orgs/config"
	"orgs/internal/errors"
	"orgs/internal/infra/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultGormSlowThreshold = 200 * time.Millisecond
	minGormSlowThreshold     = 50 * time.Millisecond
	// A statement is slow once it consumes this share of the query budget.
	slowThresholdDivisor = 10
)

// gormSlogLogger routes GORM output to slog and records statement latency.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowThreshold(cfg),
	}
}

// slowThreshold scales with query.timeout so slow-query warnings fire well
// before requests start failing with QUERY_TIMEOUT.
func slowThreshold(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.Query.Timeout <= 0 {
		return defaultGormSlowThreshold
	}

	return max(cfg.Query.Timeout/slowThresholdDivisor, minGormSlowThreshold)
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM "+level.String(),
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

// Trace is called after every statement. Metrics are recorded even when the
// logger is silent.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := sqlAndRowsFn()
	outcome := queryOutcome(err)
	metrics.RecordDBQuery(statementVerb(sql), outcome, elapsed)

	if l.logger == nil || l.level == logger.Silent {
		return
	}

	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}

	switch {
	case outcome == metrics.QueryCanceled && l.level >= logger.Warn:
		// Deadlines surface to callers as QUERY_TIMEOUT; not a database fault.
		attrs = append(attrs, slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "GORM query canceled", attrs...)
	case outcome == metrics.QueryError && l.level >= logger.Error:
		attrs = append(attrs, slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs = append(attrs, slog.Duration("slow_threshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "GORM query", attrs...)
	}
}

func queryOutcome(err error) string {
	switch {
	case err == nil, errors.Is(err, gorm.ErrRecordNotFound):
		return metrics.QueryOK
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return metrics.QueryCanceled
	default:
		return metrics.QueryError
	}
}

// statementVerb returns the upper-cased first keyword of sql.
func statementVerb(sql string) string {
	verb, _, _ := strings.Cut(strings.TrimSpace(sql), " ")
	if verb == "" {
		return "UNKNOWN"
	}

	return strings.ToUpper(verb)
}
