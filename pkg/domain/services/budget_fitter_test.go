package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
	"github.com/vsinha/bbqplan/pkg/domain/services"
	testhelpers "github.com/vsinha/bbqplan/pkg/infrastructure/testing"
)

func TestFitToBudget_NoBudgetIsIdentity(t *testing.T) {
	rates := testhelpers.BuildTestRates()
	plan, err := services.Evaluate(testhelpers.TenAdultsBeefAndChicken(), rates)
	require.NoError(t, err)

	fitted, err := services.FitToBudget(plan, nil, rates)
	require.NoError(t, err)
	assert.Same(t, plan, fitted)
}

func TestFitToBudget_BudgetEqualToTotalIsNotAdjusted(t *testing.T) {
	rates := testhelpers.BuildTestRates()

	plan, err := services.Evaluate(testhelpers.WithBudget(testhelpers.TenAdultsBeefAndChicken(), "317"), rates)
	require.NoError(t, err)
	assert.False(t, plan.BudgetAdjusted)
	assertDecimal(t, "317", plan.TotalCost)
}

func TestFitToBudget_HalfBudgetHalvesEverything(t *testing.T) {
	rates := testhelpers.BuildTestRates()

	unscaled, err := services.Evaluate(testhelpers.TenAdultsBeefAndChicken(), rates)
	require.NoError(t, err)
	half := unscaled.TotalCost.Div(dec("2"))

	fitted, err := services.FitToBudget(unscaled, &half, rates)
	require.NoError(t, err)

	assert.True(t, fitted.BudgetAdjusted)
	assertDecimal(t, "158.5", fitted.TotalCost)
	for id, kg := range unscaled.MeatAllocation {
		assertDecimal(t, kg.Div(dec("2")).String(), fitted.MeatAllocation[id], "meat %s", id)
	}
	assertDecimal(t, "10", fitted.Beverages.BeerCans)
	assertDecimal(t, "2.5", fitted.Beverages.SodaLiters)
	assertDecimal(t, "2", fitted.Beverages.WaterLiters)
	assertDecimal(t, "2.4", fitted.CharcoalKg)
	assertDecimal(t, "100", fitted.MeatCost)
	assertDecimal(t, "12", fitted.CharcoalCost)
	assertDecimal(t, "46.5", fitted.Beverages.Cost)
	// 2 kg * 15 min = 30 min, recomputed and clamped rather than halved
	assert.Equal(t, 40, fitted.PrepTimeMinutes)
	assert.False(t, unscaled.BudgetAdjusted, "input plan must not be mutated")
}

func TestFitToBudget_PinsLinesAtFloor(t *testing.T) {
	rates := testhelpers.BuildTestRates()

	plan, err := services.Evaluate(testhelpers.WithBudget(testhelpers.TenAdultsBeefAndChicken(), "90"), rates)
	require.NoError(t, err)

	assert.True(t, plan.BudgetAdjusted)
	assertDecimal(t, "6", plan.Beverages.BeerCans, "beer pinned at its floor")
	assert.True(t, plan.TotalCost.LessThanOrEqual(dec("90")), "total %s", plan.TotalCost)
	assert.True(t, plan.TotalCost.GreaterThan(dec("89.99")), "total %s", plan.TotalCost)
	assert.True(t, plan.TotalCost.Equal(plan.CostComponentsSum()))

	// unpinned lines keep their relative proportions
	assert.True(t, plan.MeatAllocation["beef"].Equal(plan.MeatAllocation["chicken"]))
	for id, kg := range plan.MeatAllocation {
		assert.True(t, kg.GreaterThanOrEqual(rates.Meats[id].FloorKg), "meat %s at %s", id, kg)
	}
	assert.True(t, plan.Beverages.SodaLiters.GreaterThanOrEqual(dec("1")))
	assert.True(t, plan.Beverages.WaterLiters.GreaterThanOrEqual(dec("1")))
}

func TestFitToBudget_EveryLineAtFloor(t *testing.T) {
	rates := testhelpers.BuildTestRates()

	// floors: beef 0.5*86 + chicken 0.5*26 + beer 6*3 + soda 1*5 + water 1*2 = 81
	plan, err := services.Evaluate(testhelpers.WithBudget(testhelpers.TenAdultsBeefAndChicken(), "81"), rates)
	require.NoError(t, err)

	assert.True(t, plan.BudgetAdjusted)
	assertDecimal(t, "0.5", plan.MeatAllocation["beef"])
	assertDecimal(t, "0.5", plan.MeatAllocation["chicken"])
	assertDecimal(t, "6", plan.Beverages.BeerCans)
	assertDecimal(t, "1", plan.Beverages.SodaLiters)
	assertDecimal(t, "1", plan.Beverages.WaterLiters)
	assertDecimal(t, "81", plan.TotalCost)
}

func TestFitToBudget_Infeasible(t *testing.T) {
	rates := testhelpers.BuildTestRates()

	plan, err := services.Evaluate(testhelpers.WithBudget(testhelpers.TenAdultsBeefAndChicken(), "80"), rates)
	assert.Nil(t, plan)

	var infeasible *entities.BudgetInfeasibleError
	require.ErrorAs(t, err, &infeasible)
	assertDecimal(t, "80", infeasible.Budget)
	assertDecimal(t, "81", infeasible.MinimumCost)
	assert.Equal(t, "budget 80.00 cannot cover minimum servings costing 81.00", err.Error())
}

func TestFitToBudget_FloorAboveQuantityUsesQuantity(t *testing.T) {
	rates := testhelpers.BuildTestRates()

	// two adults drink 4 cans, below the 6 can floor: beer cannot shrink at all
	plan, err := services.Evaluate(services.RawRequest{
		Adults: 2,
		Meats:  []string{"chicken"},
		Budget: "35",
	}, rates)
	require.NoError(t, err)
	assert.True(t, plan.BudgetAdjusted)
	assertDecimal(t, "4", plan.Beverages.BeerCans)
	assert.True(t, plan.TotalCost.LessThanOrEqual(dec("35")), "total %s", plan.TotalCost)
}

func TestFitToBudget_FreeLinesKeepTheirQuantity(t *testing.T) {
	rates := testhelpers.BuildTestRates()
	rates.Beverages.Water.UnitPrice = dec("0")

	// priced floors: beef 43 + chicken 13 + beer 18 + soda 5 = 79
	plan, err := services.Evaluate(testhelpers.WithBudget(testhelpers.TenAdultsBeefAndChicken(), "79"), rates)
	require.NoError(t, err)

	assert.True(t, plan.BudgetAdjusted)
	assertDecimal(t, "4", plan.Beverages.WaterLiters)
	assertDecimal(t, "1", plan.Beverages.SodaLiters)
	assertDecimal(t, "6", plan.Beverages.BeerCans)
	assertDecimal(t, "79", plan.TotalCost)
}
