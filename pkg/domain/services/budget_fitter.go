package services

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// scalePrecision is the number of decimal places kept in the scale factor.
// The factor is truncated so a refitted plan never costs more than the budget.
const scalePrecision = 16

// fitLine is one scalable quantity of the shopping list
type fitLine struct {
	quantity decimal.Decimal
	unitCost decimal.Decimal
	floor    decimal.Decimal
	pinned   bool
	set      func(q *entities.Quantities, v decimal.Decimal)
}

func (l *fitLine) cost(v decimal.Decimal) decimal.Decimal {
	return v.Mul(l.unitCost)
}

// FitToBudget scales an over-budget plan down so that it fits the budget.
// The plan is returned unchanged when there is no budget or it already fits.
//
// Quantities are scaled by a common factor. Any line that would drop below
// its floor is pinned at the floor and the factor is recomputed over the
// rest, until no new line is pinned. Costs and prep time are then recomputed
// from the scaled quantities. When the floors alone cost more than the
// budget a *BudgetInfeasibleError is returned.
func FitToBudget(plan *entities.Plan, budget *decimal.Decimal, rates *entities.RateTable) (*entities.Plan, error) {
	if budget == nil || plan.TotalCost.LessThanOrEqual(*budget) {
		return plan, nil
	}

	lines := fitLines(plan.Quantities(), rates)

	minimum := decimal.Zero
	for _, l := range lines {
		minimum = minimum.Add(l.cost(l.floor))
	}
	if minimum.GreaterThan(*budget) {
		return nil, &entities.BudgetInfeasibleError{Budget: *budget, MinimumCost: minimum}
	}

	scale := waterFill(lines, *budget)

	q := entities.Quantities{
		Meats: make(map[entities.MeatCategory]decimal.Decimal, len(plan.MeatAllocation)),
		Sides: make(map[entities.SideCategory]decimal.Decimal, len(plan.SideAllocation)),
	}
	for _, l := range lines {
		switch {
		case l.unitCost.IsZero():
			// free lines cost nothing to keep
			l.set(&q, l.quantity)
		case l.pinned:
			l.set(&q, l.floor)
		default:
			l.set(&q, l.quantity.Mul(scale))
		}
	}

	fitted := Price(q, plan.Payers, rates)
	fitted.BudgetAdjusted = true
	return fitted, nil
}

// waterFill pins lines at their floors until the common scale factor keeps
// every unpinned line above its floor. Each pass pins at least one line, so
// it runs at most len(lines) passes.
func waterFill(lines []*fitLine, budget decimal.Decimal) decimal.Decimal {
	scale := decimal.Zero
	for pass := 0; pass <= len(lines); pass++ {
		pinnedCost, freeCost := decimal.Zero, decimal.Zero
		for _, l := range lines {
			if l.pinned {
				pinnedCost = pinnedCost.Add(l.cost(l.floor))
			} else {
				freeCost = freeCost.Add(l.cost(l.quantity))
			}
		}
		if freeCost.IsZero() {
			return decimal.Zero
		}

		scale, _ = budget.Sub(pinnedCost).QuoRem(freeCost, scalePrecision)

		pinned := false
		for _, l := range lines {
			if !l.pinned && l.quantity.Mul(scale).LessThan(l.floor) {
				l.pinned = true
				pinned = true
			}
		}
		if !pinned {
			break
		}
	}
	return scale
}

// fitLines lists every scalable quantity in a fixed order. Charcoal follows
// the meat, so each kilogram of meat carries the cost of its charcoal.
func fitLines(q entities.Quantities, rates *entities.RateTable) []*fitLine {
	lines := make([]*fitLine, 0, len(q.Meats)+len(q.Sides)+3)

	meats := make([]entities.MeatCategory, 0, len(q.Meats))
	for id := range q.Meats {
		meats = append(meats, id)
	}
	for _, id := range entities.SortMeats(meats) {
		id := id
		lines = append(lines, &fitLine{
			quantity: q.Meats[id],
			unitCost: rates.MeatUnitCost(id),
			floor:    decimal.Min(rates.Meats[id].FloorKg, q.Meats[id]),
			set:      func(q *entities.Quantities, v decimal.Decimal) { q.Meats[id] = v },
		})
	}

	sides := make([]entities.SideCategory, 0, len(q.Sides))
	for id := range q.Sides {
		sides = append(sides, id)
	}
	for _, id := range entities.SortSides(sides) {
		id := id
		lines = append(lines, &fitLine{
			quantity: q.Sides[id],
			unitCost: rates.Sides[id].PricePerKg,
			floor:    decimal.Min(rates.Sides[id].FloorKg, q.Sides[id]),
			set:      func(q *entities.Quantities, v decimal.Decimal) { q.Sides[id] = v },
		})
	}

	bev := rates.Beverages
	lines = append(lines,
		&fitLine{
			quantity: q.BeerCans,
			unitCost: bev.Beer.UnitPrice,
			floor:    decimal.Min(bev.Beer.Floor, q.BeerCans),
			set:      func(q *entities.Quantities, v decimal.Decimal) { q.BeerCans = v },
		},
		&fitLine{
			quantity: q.SodaLiters,
			unitCost: bev.Soda.UnitPrice,
			floor:    decimal.Min(bev.Soda.Floor, q.SodaLiters),
			set:      func(q *entities.Quantities, v decimal.Decimal) { q.SodaLiters = v },
		},
		&fitLine{
			quantity: q.WaterLiters,
			unitCost: bev.Water.UnitPrice,
			floor:    decimal.Min(bev.Water.Floor, q.WaterLiters),
			set:      func(q *entities.Quantities, v decimal.Decimal) { q.WaterLiters = v },
		},
	)

	return lines
}
