package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// RawRequest is a party description as a client sent it. Numeric fields may
// hold numbers, numeric strings or junk; junk falls back to the field default.
type RawRequest struct {
	Adults    any
	Children  any
	Payers    any
	Budget    any
	Mode      string
	Meats     []string
	Sides     []string
	PartyMode any
}

// Validate turns a raw request into a PlanRequest. It fails with
// ErrMissingRequiredInput when there are no adults or no meat, and with
// *UnknownCategoryError when a selected category is not in the rate table.
func Validate(raw RawRequest, rates *entities.RateTable) (entities.PlanRequest, error) {
	req := entities.PlanRequest{
		Adults:    coerceCount(raw.Adults),
		Children:  coerceCount(raw.Children),
		Payers:    coerceCount(raw.Payers),
		Budget:    coerceBudget(raw.Budget),
		Mode:      entities.ParseMode(raw.Mode),
		PartyMode: coerceBool(raw.PartyMode),
	}

	if req.Adults <= 0 {
		return entities.PlanRequest{}, entities.MissingInput("at least one adult is required")
	}
	if req.Payers <= 0 {
		req.Payers = req.Adults
	}

	if req.Mode == entities.Full {
		req.Meats = rates.MeatIDs()
		req.Sides = rates.SideIDs()
	} else {
		meats, err := resolveMeats(raw.Meats, rates)
		if err != nil {
			return entities.PlanRequest{}, err
		}
		sides, err := resolveSides(raw.Sides, rates)
		if err != nil {
			return entities.PlanRequest{}, err
		}
		req.Meats = meats
		req.Sides = sides
	}

	if len(req.Meats) == 0 {
		return entities.PlanRequest{}, entities.MissingInput("at least one meat category is required")
	}

	return req, nil
}

func resolveMeats(ids []string, rates *entities.RateTable) ([]entities.MeatCategory, error) {
	seen := make(map[entities.MeatCategory]bool, len(ids))
	meats := make([]entities.MeatCategory, 0, len(ids))
	for _, raw := range ids {
		id := entities.NormalizeCategoryID(raw)
		if id == "" {
			continue
		}
		meat := entities.MeatCategory(id)
		if _, ok := rates.Meats[meat]; !ok {
			return nil, &entities.UnknownCategoryError{Kind: entities.MeatKind, ID: raw}
		}
		if !seen[meat] {
			seen[meat] = true
			meats = append(meats, meat)
		}
	}
	return entities.SortMeats(meats), nil
}

func resolveSides(ids []string, rates *entities.RateTable) ([]entities.SideCategory, error) {
	seen := make(map[entities.SideCategory]bool, len(ids))
	sides := make([]entities.SideCategory, 0, len(ids))
	for _, raw := range ids {
		id := entities.NormalizeCategoryID(raw)
		if id == "" {
			continue
		}
		side := entities.SideCategory(id)
		if _, ok := rates.Sides[side]; !ok {
			return nil, &entities.UnknownCategoryError{Kind: entities.SideKind, ID: raw}
		}
		if !seen[side] {
			seen[side] = true
			sides = append(sides, side)
		}
	}
	return entities.SortSides(sides), nil
}

// coerceNumber reads a loose value as a finite non-negative number
func coerceNumber(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

// coerceCount truncates toward zero; uncoercible values become 0
func coerceCount(v any) int {
	f, ok := coerceNumber(v)
	if !ok || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// Budgets outside these bounds are treated as uncoercible. Comparing a
// decimal with an extreme exponent against a plan total rescales both to a
// common exponent, which is unbounded work.
const (
	minBudgetExponent = -10
	maxBudgetExponent = 15
	maxBudgetDigits   = 30 // integer digits
)

func coerceBudget(v any) *decimal.Decimal {
	var d decimal.Decimal
	switch x := v.(type) {
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return nil
		}
		d = parsed
	case json.Number:
		parsed, err := decimal.NewFromString(x.String())
		if err != nil {
			return nil
		}
		d = parsed
	case decimal.Decimal:
		d = x
	default:
		f, ok := coerceNumber(v)
		if !ok {
			return nil
		}
		d = decimal.NewFromFloat(f)
	}
	if !d.IsPositive() {
		return nil
	}
	d, ok := boundBudget(d)
	if !ok {
		return nil
	}
	return &d
}

// boundBudget rounds a budget to minBudgetExponent places and rejects values
// with too many integer digits. Fractional digits past the bound are only
// dropped when the coefficient is short enough to rescale cheaply.
func boundBudget(d decimal.Decimal) (decimal.Decimal, bool) {
	exp := int64(d.Exponent())
	digits := int64(d.NumDigits())
	if exp > maxBudgetExponent || digits+exp > maxBudgetDigits {
		return decimal.Decimal{}, false
	}
	if exp < minBudgetExponent {
		shift := minBudgetExponent - exp
		if digits <= shift {
			return decimal.Decimal{}, false
		}
		d = d.Round(-minBudgetExponent)
	}
	return d, d.IsPositive()
}

func coerceBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "on", "1", "yes":
			return true
		}
	case float64:
		return x == 1
	case json.Number:
		return x.String() == "1"
	}
	return false
}
