package services

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// Allocate splits the aggregate meat and side demand evenly across the
// selected categories. The rate table carries no per-category shares, so an
// equal share is the only defensible split.
func Allocate(demand entities.AggregateDemand, meats []entities.MeatCategory, sides []entities.SideCategory) entities.Quantities {
	q := entities.Quantities{
		Meats:       make(map[entities.MeatCategory]decimal.Decimal, len(meats)),
		Sides:       make(map[entities.SideCategory]decimal.Decimal, len(sides)),
		BeerCans:    demand.BeerCans,
		SodaLiters:  demand.SodaLiters,
		WaterLiters: demand.WaterLiters,
	}

	if len(meats) > 0 {
		share := demand.MeatKg.Div(decimal.NewFromInt(int64(len(meats))))
		for _, id := range meats {
			q.Meats[id] = share
		}
	}
	if len(sides) > 0 {
		share := demand.SideKg.Div(decimal.NewFromInt(int64(len(sides))))
		for _, id := range sides {
			q.Sides[id] = share
		}
	}

	return q
}

// Price turns a shopping list into a plan. Every cost is derived from the
// quantities, and TotalCost is the exact sum of the four components.
func Price(q entities.Quantities, payers int, rates *entities.RateTable) *entities.Plan {
	plan := &entities.Plan{
		MeatAllocation: make(map[entities.MeatCategory]decimal.Decimal, len(q.Meats)),
		SideAllocation: make(map[entities.SideCategory]decimal.Decimal, len(q.Sides)),
		MeatCost:       decimal.Zero,
		SideCost:       decimal.Zero,
		Payers:         payers,
	}

	meatTotal := decimal.Zero
	for id, kg := range q.Meats {
		plan.MeatAllocation[id] = kg
		plan.MeatCost = plan.MeatCost.Add(kg.Mul(rates.Meats[id].PricePerKg))
		meatTotal = meatTotal.Add(kg)
	}
	for id, kg := range q.Sides {
		plan.SideAllocation[id] = kg
		plan.SideCost = plan.SideCost.Add(kg.Mul(rates.Sides[id].PricePerKg))
	}

	bev := rates.Beverages
	plan.Beverages = entities.Beverages{
		BeerCans:    q.BeerCans,
		SodaLiters:  q.SodaLiters,
		WaterLiters: q.WaterLiters,
		Cost: q.BeerCans.Mul(bev.Beer.UnitPrice).
			Add(q.SodaLiters.Mul(bev.Soda.UnitPrice)).
			Add(q.WaterLiters.Mul(bev.Water.UnitPrice)),
	}

	plan.CharcoalKg = meatTotal.Mul(rates.Charcoal.KgPerKgMeat)
	plan.CharcoalCost = plan.CharcoalKg.Mul(rates.Charcoal.PricePerKg)
	plan.PrepTimeMinutes = PrepMinutes(meatTotal, rates.Prep)

	plan.TotalCost = plan.CostComponentsSum()
	if payers > 0 {
		plan.CostPerPayer = plan.TotalCost.Div(decimal.NewFromInt(int64(payers)))
	}

	return plan
}

// PrepMinutes estimates grill time for the given amount of meat, never less
// than the configured minimum
func PrepMinutes(meatKg decimal.Decimal, prep entities.Prep) int {
	minutes := int(meatKg.Mul(prep.MinutesPerKg).Round(0).IntPart())
	if minutes < prep.MinimumMinutes {
		return prep.MinimumMinutes
	}
	return minutes
}
