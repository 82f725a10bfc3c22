package entities

import "github.com/shopspring/decimal"

// AggregateDemand is the total consumption of a party before it is split
// across categories
type AggregateDemand struct {
	MeatKg      decimal.Decimal
	BeerCans    decimal.Decimal
	SodaLiters  decimal.Decimal
	WaterLiters decimal.Decimal
	SideKg      decimal.Decimal
}

// Quantities is the shopping list before pricing
type Quantities struct {
	Meats       map[MeatCategory]decimal.Decimal
	Sides       map[SideCategory]decimal.Decimal
	BeerCans    decimal.Decimal
	SodaLiters  decimal.Decimal
	WaterLiters decimal.Decimal
}

// MeatKgTotal sums the meat allocation
func (q Quantities) MeatKgTotal() decimal.Decimal {
	total := decimal.Zero
	for _, kg := range q.Meats {
		total = total.Add(kg)
	}
	return total
}

// SideKgTotal sums the side allocation
func (q Quantities) SideKgTotal() decimal.Decimal {
	total := decimal.Zero
	for _, kg := range q.Sides {
		total = total.Add(kg)
	}
	return total
}

// Beverages holds beverage quantities and their combined cost
type Beverages struct {
	BeerCans    decimal.Decimal
	SodaLiters  decimal.Decimal
	WaterLiters decimal.Decimal
	Cost        decimal.Decimal
}

// Plan is the priced result of one evaluation. Values are exact; rounding
// happens when the plan is presented.
type Plan struct {
	MeatAllocation  map[MeatCategory]decimal.Decimal
	SideAllocation  map[SideCategory]decimal.Decimal
	Beverages       Beverages
	CharcoalKg      decimal.Decimal
	CharcoalCost    decimal.Decimal
	MeatCost        decimal.Decimal
	SideCost        decimal.Decimal
	TotalCost       decimal.Decimal
	PrepTimeMinutes int
	Payers          int
	CostPerPayer    decimal.Decimal
	BudgetAdjusted  bool
}

// Quantities extracts the unpriced shopping list from the plan
func (p *Plan) Quantities() Quantities {
	q := Quantities{
		Meats:       make(map[MeatCategory]decimal.Decimal, len(p.MeatAllocation)),
		Sides:       make(map[SideCategory]decimal.Decimal, len(p.SideAllocation)),
		BeerCans:    p.Beverages.BeerCans,
		SodaLiters:  p.Beverages.SodaLiters,
		WaterLiters: p.Beverages.WaterLiters,
	}
	for id, kg := range p.MeatAllocation {
		q.Meats[id] = kg
	}
	for id, kg := range p.SideAllocation {
		q.Sides[id] = kg
	}
	return q
}

// MeatKgTotal sums the meat allocation
func (p *Plan) MeatKgTotal() decimal.Decimal {
	return p.Quantities().MeatKgTotal()
}

// SideKgTotal sums the side allocation
func (p *Plan) SideKgTotal() decimal.Decimal {
	return p.Quantities().SideKgTotal()
}

// CostComponentsSum adds the four cost components. It always equals TotalCost.
func (p *Plan) CostComponentsSum() decimal.Decimal {
	return p.MeatCost.Add(p.SideCost).Add(p.Beverages.Cost).Add(p.CharcoalCost)
}
