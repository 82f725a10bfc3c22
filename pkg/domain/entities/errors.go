package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMissingRequiredInput is returned when a request has no adults or no meat
var ErrMissingRequiredInput = errors.New("missing required input")

// CategoryKind tells meat and side categories apart in error messages
type CategoryKind string

const (
	MeatKind CategoryKind = "meat"
	SideKind CategoryKind = "side"
)

// UnknownCategoryError reports a selected category that the rate table does not price
type UnknownCategoryError struct {
	Kind CategoryKind
	ID   string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category: %q", e.Kind, e.ID)
}

// BudgetInfeasibleError is returned when even the minimum servings cost more than the budget
type BudgetInfeasibleError struct {
	Budget      decimal.Decimal
	MinimumCost decimal.Decimal
}

func (e *BudgetInfeasibleError) Error() string {
	return fmt.Sprintf("budget %s cannot cover minimum servings costing %s",
		e.Budget.StringFixed(2), e.MinimumCost.StringFixed(2))
}

// MissingInput wraps ErrMissingRequiredInput with the field that is missing
func MissingInput(detail string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredInput, detail)
}
