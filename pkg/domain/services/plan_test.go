package services_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
	"github.com/vsinha/bbqplan/pkg/domain/services"
	testhelpers "github.com/vsinha/bbqplan/pkg/infrastructure/testing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("want %s, got %s", want, got), msgAndArgs...)
	}
}

func TestEstimate_ChildrenAndPartyMode(t *testing.T) {
	rates := testhelpers.BuildTestRates()
	req := testhelpers.BuildRequest(10, 4, []entities.MeatCategory{"beef"}, nil, true)

	demand := services.Estimate(req, rates)

	assertDecimal(t, "7.2", demand.MeatKg)
	assertDecimal(t, "30", demand.BeerCans)
	assertDecimal(t, "10.2", demand.SodaLiters)
	assertDecimal(t, "8.16", demand.WaterLiters)
	assertDecimal(t, "4.14", demand.SideKg)
}

func TestEstimate_NoPartyMode(t *testing.T) {
	rates := testhelpers.BuildTestRates()
	req := testhelpers.BuildRequest(10, 0, []entities.MeatCategory{"beef"}, nil, false)

	demand := services.Estimate(req, rates)

	assertDecimal(t, "4", demand.MeatKg)
	assertDecimal(t, "20", demand.BeerCans)
	assertDecimal(t, "5", demand.SodaLiters)
	assertDecimal(t, "4", demand.WaterLiters)
}

func TestAllocate_EqualShares(t *testing.T) {
	demand := entities.AggregateDemand{
		MeatKg:   dec("6"),
		SideKg:   dec("1.5"),
		BeerCans: dec("12"),
	}
	q := services.Allocate(demand,
		[]entities.MeatCategory{"beef", "chicken", "ribs"},
		[]entities.SideCategory{"rice", "farofa"})

	require.Len(t, q.Meats, 3)
	for id, kg := range q.Meats {
		assertDecimal(t, "2", kg, "meat %s", id)
	}
	require.Len(t, q.Sides, 2)
	for id, kg := range q.Sides {
		assertDecimal(t, "0.75", kg, "side %s", id)
	}
	assertDecimal(t, "12", q.BeerCans)
}

func TestAllocate_NoSides(t *testing.T) {
	q := services.Allocate(entities.AggregateDemand{MeatKg: dec("4"), SideKg: dec("2")},
		[]entities.MeatCategory{"beef"}, nil)
	assert.Empty(t, q.Sides)
	assertDecimal(t, "0", q.SideKgTotal())
}

func TestBuildPlan_TenAdultsScenario(t *testing.T) {
	rates := testhelpers.BuildTestRates()

	plan, err := services.Evaluate(testhelpers.TenAdultsBeefAndChicken(), rates)
	require.NoError(t, err)

	require.Len(t, plan.MeatAllocation, 2)
	assertDecimal(t, "2", plan.MeatAllocation["beef"])
	assertDecimal(t, "2", plan.MeatAllocation["chicken"])
	assert.Empty(t, plan.SideAllocation)

	assertDecimal(t, "200", plan.MeatCost)
	assertDecimal(t, "0", plan.SideCost)
	assertDecimal(t, "4.8", plan.CharcoalKg)
	assertDecimal(t, "24", plan.CharcoalCost)
	assertDecimal(t, "20", plan.Beverages.BeerCans)
	assertDecimal(t, "5", plan.Beverages.SodaLiters)
	assertDecimal(t, "4", plan.Beverages.WaterLiters)
	assertDecimal(t, "93", plan.Beverages.Cost)
	assertDecimal(t, "317", plan.TotalCost)
	assertDecimal(t, "31.7", plan.CostPerPayer)
	assert.Equal(t, 60, plan.PrepTimeMinutes)
	assert.False(t, plan.BudgetAdjusted)
}

func TestBuildPlan_PrepTimeClampedToMinimum(t *testing.T) {
	rates := testhelpers.BuildTestRates()
	req := testhelpers.BuildRequest(2, 0, []entities.MeatCategory{"chicken"}, nil, false)

	plan, err := services.BuildPlan(req, rates)
	require.NoError(t, err)
	// 0.8 kg * 15 min = 12 min, below the 40 minute minimum
	assert.Equal(t, 40, plan.PrepTimeMinutes)
}

func TestBuildPlan_CostPerPayer(t *testing.T) {
	rates := testhelpers.BuildTestRates()
	raw := testhelpers.TenAdultsBeefAndChicken()
	raw.Payers = 4

	plan, err := services.Evaluate(raw, rates)
	require.NoError(t, err)
	assertDecimal(t, "79.25", plan.CostPerPayer)
}

func TestBuildPlan_FullModeMatchesExplicitSelection(t *testing.T) {
	rates := testhelpers.BuildTestRates()

	full, err := services.Evaluate(services.RawRequest{
		Adults: 8, Children: 3, Mode: "full", Meats: []string{"chicken"}, Sides: []string{"rice"},
	}, rates)
	require.NoError(t, err)

	explicit, err := services.Evaluate(services.RawRequest{
		Adults:   8,
		Children: 3,
		Meats:    []string{"beef", "chicken", "ribs", "sausage"},
		Sides:    []string{"farofa", "garlic_bread", "rice", "vinaigrette"},
	}, rates)
	require.NoError(t, err)

	assert.Equal(t, explicit, full)
}
