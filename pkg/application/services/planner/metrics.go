package planner

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// Metric names exported by the planner
const (
	MetricEvaluations    = "bbqplan.evaluations.total"
	MetricErrors         = "bbqplan.evaluation.errors"
	MetricDuration       = "bbqplan.evaluation.duration"
	MetricBudgetAdjusted = "bbqplan.budget.adjusted"
)

// Metrics records RED metrics for plan evaluations
type Metrics struct {
	evaluations    metric.Int64Counter
	errors         metric.Int64Counter
	duration       metric.Float64Histogram
	budgetAdjusted metric.Int64Counter
}

// NewMetrics creates the planner instruments on the given meter
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.evaluations, err = meter.Int64Counter(MetricEvaluations,
		metric.WithDescription("Plan evaluations attempted"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, err
	}

	m.errors, err = meter.Int64Counter(MetricErrors,
		metric.WithDescription("Plan evaluations that failed, by error kind"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	m.duration, err = meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Plan evaluation latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5),
	)
	if err != nil {
		return nil, err
	}

	m.budgetAdjusted, err = meter.Int64Counter(MetricBudgetAdjusted,
		metric.WithDescription("Plans scaled down to fit a budget"),
		metric.WithUnit("{plan}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) record(ctx context.Context, plan *entities.Plan, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.evaluations.Add(ctx, 1)
	m.duration.Record(ctx, elapsed.Seconds())

	if err != nil {
		m.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("error.kind", ErrorKind(err))))
		return
	}
	if plan.BudgetAdjusted {
		m.budgetAdjusted.Add(ctx, 1)
	}
}

// ErrorKind classifies an evaluation error for metrics and logs
func ErrorKind(err error) string {
	var unknown *entities.UnknownCategoryError
	var infeasible *entities.BudgetInfeasibleError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, entities.ErrMissingRequiredInput):
		return "missing_input"
	case errors.As(err, &unknown):
		return "unknown_category"
	case errors.As(err, &infeasible):
		return "budget_infeasible"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
