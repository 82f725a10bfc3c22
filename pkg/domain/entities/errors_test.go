package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMissingInput(t *testing.T) {
	err := MissingInput("at least one adult is required")
	if !errors.Is(err, ErrMissingRequiredInput) {
		t.Fatalf("Expected error to wrap ErrMissingRequiredInput, got %v", err)
	}
	if err.Error() != "missing required input: at least one adult is required" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}

func TestUnknownCategoryError(t *testing.T) {
	var err error = &UnknownCategoryError{Kind: SideKind, ID: "fries"}
	if err.Error() != `unknown side category: "fries"` {
		t.Errorf("Unexpected message: %s", err.Error())
	}

	var unknown *UnknownCategoryError
	if !errors.As(err, &unknown) || unknown.ID != "fries" {
		t.Error("Expected errors.As to recover the category")
	}
}

func TestBudgetInfeasibleError(t *testing.T) {
	err := &BudgetInfeasibleError{
		Budget:      decimal.RequireFromString("50"),
		MinimumCost: decimal.RequireFromString("81.456"),
	}
	if err.Error() != "budget 50.00 cannot cover minimum servings costing 81.46" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}
