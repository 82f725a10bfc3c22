package planner_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/vsinha/bbqplan/pkg/application/services/planner"
	"github.com/vsinha/bbqplan/pkg/domain/services"
	"github.com/vsinha/bbqplan/pkg/infrastructure/repositories/memory"
	testhelpers "github.com/vsinha/bbqplan/pkg/infrastructure/testing"
)

func benchmarkPlanner() *planner.Planner {
	return planner.NewPlanner(memory.NewRateStore(testhelpers.BuildTestRates()),
		planner.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

// BenchmarkPlanner_Unconstrained measures a full party with no budget
func BenchmarkPlanner_Unconstrained(b *testing.B) {
	p := benchmarkPlanner()
	raw := services.RawRequest{Adults: 40, Children: 12, Mode: "full", PartyMode: true}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.Plan(ctx, raw); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}

// BenchmarkPlanner_BudgetFit measures a plan that pins several lines at their floors
func BenchmarkPlanner_BudgetFit(b *testing.B) {
	p := benchmarkPlanner()
	raw := services.RawRequest{Adults: 40, Children: 12, Mode: "full", PartyMode: true, Budget: "300"}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.Plan(ctx, raw); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}

// BenchmarkPlanner_Parallel measures concurrent evaluations against one snapshot
func BenchmarkPlanner_Parallel(b *testing.B) {
	p := benchmarkPlanner()
	raw := testhelpers.TenAdultsBeefAndChicken()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		for pb.Next() {
			if _, err := p.Plan(ctx, raw); err != nil {
				b.Errorf("Plan failed: %v", err)
				return
			}
		}
	})
}
