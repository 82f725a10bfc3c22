package services

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// Estimate derives the party's aggregate consumption. Children count as a
// per-quantity fraction of an adult, and party mode multiplies every
// per-person amount by the same factor. Nothing is rounded here.
func Estimate(req entities.PlanRequest, rates *entities.RateTable) entities.AggregateDemand {
	factor := decimal.NewFromInt(1)
	if req.PartyMode {
		factor = rates.PartyFactor
	}

	c := rates.Consumption
	return entities.AggregateDemand{
		MeatKg:      c.MeatKg.For(req.Adults, req.Children).Mul(factor),
		BeerCans:    c.BeerCans.For(req.Adults, req.Children).Mul(factor),
		SodaLiters:  c.SodaLiters.For(req.Adults, req.Children).Mul(factor),
		WaterLiters: c.WaterLiters.For(req.Adults, req.Children).Mul(factor),
		SideKg:      c.SideKg.For(req.Adults, req.Children).Mul(factor),
	}
}
