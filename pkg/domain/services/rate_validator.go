package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// RateValidationResult contains the results of rate table validation
type RateValidationResult struct {
	MissingPrices []string
	Errors        []string
}

// Valid reports whether no problems were found
func (r *RateValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err folds the problems into a single error, or nil
func (r *RateValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return fmt.Errorf("invalid rate table: %s", strings.Join(r.Errors, "; "))
}

// ValidateRateTable checks that a rate table can drive the planner. Every
// problem is collected rather than stopping at the first.
func ValidateRateTable(rates *entities.RateTable) *RateValidationResult {
	result := &RateValidationResult{
		MissingPrices: make([]string, 0),
		Errors:        make([]string, 0),
	}
	if rates == nil {
		result.Errors = append(result.Errors, "rate table is nil")
		return result
	}

	if len(rates.Meats) == 0 {
		result.Errors = append(result.Errors, "at least one meat category is required")
	}
	if !rates.PartyFactor.GreaterThan(decimal.NewFromInt(1)) {
		result.Errors = append(result.Errors, fmt.Sprintf("party factor must be greater than 1, got %s", rates.PartyFactor))
	}

	checkConsumption(result, "meat_kg", rates.Consumption.MeatKg)
	checkConsumption(result, "beer_cans", rates.Consumption.BeerCans)
	checkConsumption(result, "soda_liters", rates.Consumption.SodaLiters)
	checkConsumption(result, "water_liters", rates.Consumption.WaterLiters)
	checkConsumption(result, "side_kg", rates.Consumption.SideKg)
	if !rates.Consumption.MeatKg.PerAdult.IsPositive() {
		result.Errors = append(result.Errors, "meat_kg per adult must be positive")
	}
	if len(rates.Sides) > 0 && !rates.Consumption.SideKg.PerAdult.IsPositive() {
		result.Errors = append(result.Errors, "side_kg per adult must be positive")
	}

	checkNonNegative(result, "charcoal kg per kg meat", rates.Charcoal.KgPerKgMeat)
	checkNonNegative(result, "charcoal price", rates.Charcoal.PricePerKg)
	checkNonNegative(result, "minutes per kg", rates.Prep.MinutesPerKg)
	if rates.Prep.MinimumMinutes <= 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("minimum prep minutes must be positive, got %d", rates.Prep.MinimumMinutes))
	}

	checkBeverage(result, "beer", rates.Beverages.Beer)
	checkBeverage(result, "soda", rates.Beverages.Soda)
	checkBeverage(result, "water", rates.Beverages.Water)

	for _, id := range rates.MeatIDs() {
		checkCategory(result, entities.MeatKind, string(id), rates.Meats[id])
	}
	for _, id := range rates.SideIDs() {
		checkCategory(result, entities.SideKind, string(id), rates.Sides[id])
	}

	if len(result.MissingPrices) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("categories without a price: %v", result.MissingPrices))
	}

	return result
}

func checkConsumption(result *RateValidationResult, name string, c entities.ConsumptionRate) {
	checkNonNegative(result, name+" per adult", c.PerAdult)
	if c.ChildWeight.IsNegative() || c.ChildWeight.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		result.Errors = append(result.Errors, fmt.Sprintf("%s child weight must be in [0, 1), got %s", name, c.ChildWeight))
	}
}

func checkBeverage(result *RateValidationResult, name string, b entities.BeverageRate) {
	checkNonNegative(result, name+" price", b.UnitPrice)
	checkNonNegative(result, name+" floor", b.Floor)
}

func checkCategory(result *RateValidationResult, kind entities.CategoryKind, id string, rate entities.CategoryRate) {
	if id == "" || id != entities.NormalizeCategoryID(id) {
		result.Errors = append(result.Errors, fmt.Sprintf("%s category id %q must be lower-case and non-empty", kind, id))
	}
	if !rate.PricePerKg.IsPositive() {
		result.MissingPrices = append(result.MissingPrices, string(kind)+":"+id)
	}
	checkNonNegative(result, fmt.Sprintf("%s %s floor", kind, id), rate.FloorKg)
}

func checkNonNegative(result *RateValidationResult, name string, d decimal.Decimal) {
	if d.IsNegative() {
		result.Errors = append(result.Errors, fmt.Sprintf("%s cannot be negative, got %s", name, d))
	}
}
