package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPlan_QuantitiesIsACopy(t *testing.T) {
	plan := &Plan{
		MeatAllocation: map[MeatCategory]decimal.Decimal{"beef": d("2"), "chicken": d("1.5")},
		SideAllocation: map[SideCategory]decimal.Decimal{"rice": d("0.75")},
		Beverages:      Beverages{BeerCans: d("20"), SodaLiters: d("5"), WaterLiters: d("4")},
	}

	q := plan.Quantities()
	q.Meats["beef"] = d("0")

	if !plan.MeatAllocation["beef"].Equal(d("2")) {
		t.Error("Mutating the quantities changed the plan")
	}
	if !q.BeerCans.Equal(d("20")) {
		t.Errorf("Expected 20 cans, got %s", q.BeerCans)
	}
	if !plan.MeatKgTotal().Equal(d("3.5")) {
		t.Errorf("Expected 3.5 kg of meat, got %s", plan.MeatKgTotal())
	}
	if !plan.SideKgTotal().Equal(d("0.75")) {
		t.Errorf("Expected 0.75 kg of sides, got %s", plan.SideKgTotal())
	}
}

func TestPlan_CostComponentsSum(t *testing.T) {
	plan := &Plan{
		MeatCost:     d("200"),
		SideCost:     d("12.5"),
		CharcoalCost: d("24"),
		Beverages:    Beverages{Cost: d("93")},
	}
	if got := plan.CostComponentsSum(); !got.Equal(d("329.5")) {
		t.Errorf("Expected 329.5, got %s", got)
	}
}
