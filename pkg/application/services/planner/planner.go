package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
	"github.com/vsinha/bbqplan/pkg/domain/repositories"
	"github.com/vsinha/bbqplan/pkg/domain/services"
)

const instrumentationName = "github.com/vsinha/bbqplan/planner"

// ErrNoRates is returned when the repository holds no rate table
var ErrNoRates = errors.New("no rate table loaded")

// Option configures a Planner
type Option func(*Planner)

// WithLogger sets the planner logger
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) { p.logger = logger }
}

// WithMetrics sets the planner instruments
func WithMetrics(metrics *Metrics) Option {
	return func(p *Planner) { p.metrics = metrics }
}

// WithTracer sets the tracer used for evaluation spans
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Planner) { p.tracer = tracer }
}

// Planner evaluates plan requests against the current rate snapshot. It is
// safe for concurrent use; each evaluation loads the snapshot once and keeps
// it even if the rates are swapped mid-flight.
type Planner struct {
	rates   repositories.RateRepository
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// NewPlanner creates a planner. Without options it logs to slog.Default and
// reports to the global OpenTelemetry providers.
func NewPlanner(rates repositories.RateRepository, opts ...Option) *Planner {
	p := &Planner{
		rates:  rates,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.tracer == nil {
		p.tracer = otel.Tracer(instrumentationName)
	}
	if p.metrics == nil {
		metrics, err := NewMetrics(otel.Meter(instrumentationName))
		if err != nil {
			p.logger.Warn("planner metrics disabled", "error", err)
		}
		p.metrics = metrics
	}
	p.logger = p.logger.With("component", "planner")
	return p
}

// Plan validates a raw request and builds its plan
func (p *Planner) Plan(ctx context.Context, raw services.RawRequest) (*entities.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rates := p.rates.Current()
	if rates == nil {
		return nil, ErrNoRates
	}

	ctx, span := p.tracer.Start(ctx, "planner.Plan")
	defer span.End()

	start := time.Now()
	plan, err := services.Evaluate(raw, rates)
	elapsed := time.Since(start)
	p.metrics.record(ctx, plan, err, elapsed)

	if err != nil {
		kind := ErrorKind(err)
		span.SetAttributes(attribute.String("error.kind", kind))
		span.SetStatus(codes.Error, kind)

		var infeasible *entities.BudgetInfeasibleError
		if errors.As(err, &infeasible) {
			p.logger.WarnContext(ctx, "budget cannot cover minimum servings",
				"budget", infeasible.Budget.StringFixed(2),
				"minimum_cost", infeasible.MinimumCost.StringFixed(2))
		} else {
			p.logger.DebugContext(ctx, "plan request rejected", "error", err, "kind", kind)
		}
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("bbqplan.meats", len(plan.MeatAllocation)),
		attribute.Int("bbqplan.sides", len(plan.SideAllocation)),
		attribute.Bool("bbqplan.budget_adjusted", plan.BudgetAdjusted),
	)
	p.logger.DebugContext(ctx, "plan evaluated",
		"meats", len(plan.MeatAllocation),
		"sides", len(plan.SideAllocation),
		"total_cost", plan.TotalCost.StringFixed(2),
		"budget_adjusted", plan.BudgetAdjusted,
		"duration", elapsed,
	)
	return plan, nil
}

// Category describes one selectable meat or side
type Category struct {
	Kind       entities.CategoryKind `json:"kind"`
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	PricePerKg string                `json:"price_per_kg"`
}

// Catalog lists what a client can select under the current rates
type Catalog struct {
	Currency string     `json:"currency"`
	Meats    []Category `json:"meats"`
	Sides    []Category `json:"sides"`
}

// Catalog returns the selectable categories in id order
func (p *Planner) Catalog() (*Catalog, error) {
	rates := p.rates.Current()
	if rates == nil {
		return nil, ErrNoRates
	}

	catalog := &Catalog{Currency: rates.Currency}
	for _, id := range rates.MeatIDs() {
		rate := rates.Meats[id]
		catalog.Meats = append(catalog.Meats, Category{
			Kind: entities.MeatKind, ID: string(id), Name: rate.Name, PricePerKg: rate.PricePerKg.StringFixed(2),
		})
	}
	for _, id := range rates.SideIDs() {
		rate := rates.Sides[id]
		catalog.Sides = append(catalog.Sides, Category{
			Kind: entities.SideKind, ID: string(id), Name: rate.Name, PricePerKg: rate.PricePerKg.StringFixed(2),
		})
	}
	return catalog, nil
}

// Reload validates and installs a new rate table. The previous snapshot
// stays in place when validation fails.
func (p *Planner) Reload(rates *entities.RateTable) error {
	if err := services.ValidateRateTable(rates).Err(); err != nil {
		return fmt.Errorf("rejecting rate table: %w", err)
	}
	p.rates.Swap(rates)
	p.logger.Info("rate table installed", "meats", len(rates.Meats), "sides", len(rates.Sides))
	return nil
}
