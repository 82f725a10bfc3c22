package entities

import (
	"github.com/shopspring/decimal"
)

// ConsumptionRate is what one adult consumes of a quantity. A child consumes
// ChildWeight of an adult's amount.
type ConsumptionRate struct {
	PerAdult    decimal.Decimal
	ChildWeight decimal.Decimal
}

// For returns the aggregate amount for the given guests, before party scaling
func (c ConsumptionRate) For(adults, children int) decimal.Decimal {
	a := c.PerAdult.Mul(decimal.NewFromInt(int64(adults)))
	k := c.PerAdult.Mul(c.ChildWeight).Mul(decimal.NewFromInt(int64(children)))
	return a.Add(k)
}

// Consumption holds per-person rates for every planned quantity
type Consumption struct {
	MeatKg      ConsumptionRate
	BeerCans    ConsumptionRate
	SodaLiters  ConsumptionRate
	WaterLiters ConsumptionRate
	SideKg      ConsumptionRate
}

// CategoryRate prices a meat or side category
type CategoryRate struct {
	Name       string
	PricePerKg decimal.Decimal
	// FloorKg is the smallest serving the budget fitter may scale the category down to
	FloorKg decimal.Decimal
}

// BeverageRate prices one unit (can or liter) of a beverage
type BeverageRate struct {
	UnitPrice decimal.Decimal
	Floor     decimal.Decimal
}

// BeverageRates holds beverage prices
type BeverageRates struct {
	Beer  BeverageRate
	Soda  BeverageRate
	Water BeverageRate
}

// Charcoal configures charcoal demand and price
type Charcoal struct {
	KgPerKgMeat decimal.Decimal
	PricePerKg  decimal.Decimal
}

// Prep configures grill time estimation
type Prep struct {
	MinutesPerKg   decimal.Decimal
	MinimumMinutes int
}

// RateTable is the frozen pricing and consumption configuration for one evaluation
type RateTable struct {
	Currency    string
	PartyFactor decimal.Decimal
	Consumption Consumption
	Charcoal    Charcoal
	Prep        Prep
	Beverages   BeverageRates
	Meats       map[MeatCategory]CategoryRate
	Sides       map[SideCategory]CategoryRate
}

// MeatIDs returns every known meat category, sorted
func (r *RateTable) MeatIDs() []MeatCategory {
	ids := make([]MeatCategory, 0, len(r.Meats))
	for id := range r.Meats {
		ids = append(ids, id)
	}
	return SortMeats(ids)
}

// SideIDs returns every known side category, sorted
func (r *RateTable) SideIDs() []SideCategory {
	ids := make([]SideCategory, 0, len(r.Sides))
	for id := range r.Sides {
		ids = append(ids, id)
	}
	return SortSides(ids)
}

// MeatUnitCost is the cost of one kilogram of a meat including the charcoal it needs
func (r *RateTable) MeatUnitCost(id MeatCategory) decimal.Decimal {
	return r.Meats[id].PricePerKg.Add(r.Charcoal.KgPerKgMeat.Mul(r.Charcoal.PricePerKg))
}

// PriceOverride replaces the price of a single category
type PriceOverride struct {
	Kind       CategoryKind
	ID         string
	PricePerKg decimal.Decimal
}

// WithPrices returns a copy of the table with the overrides applied. The
// receiver is left untouched.
func (r *RateTable) WithPrices(overrides []PriceOverride) (*RateTable, error) {
	next := *r
	next.Meats = make(map[MeatCategory]CategoryRate, len(r.Meats))
	for id, rate := range r.Meats {
		next.Meats[id] = rate
	}
	next.Sides = make(map[SideCategory]CategoryRate, len(r.Sides))
	for id, rate := range r.Sides {
		next.Sides[id] = rate
	}

	for _, o := range overrides {
		switch o.Kind {
		case MeatKind:
			rate, ok := next.Meats[MeatCategory(o.ID)]
			if !ok {
				return nil, &UnknownCategoryError{Kind: o.Kind, ID: o.ID}
			}
			rate.PricePerKg = o.PricePerKg
			next.Meats[MeatCategory(o.ID)] = rate
		case SideKind:
			rate, ok := next.Sides[SideCategory(o.ID)]
			if !ok {
				return nil, &UnknownCategoryError{Kind: o.Kind, ID: o.ID}
			}
			rate.PricePerKg = o.PricePerKg
			next.Sides[SideCategory(o.ID)] = rate
		default:
			return nil, &UnknownCategoryError{Kind: o.Kind, ID: o.ID}
		}
	}
	return &next, nil
}
