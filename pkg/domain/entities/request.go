package entities

import "github.com/shopspring/decimal"

// PlanRequest is a validated party description. Meats and Sides are already
// expanded for full parties, de-duplicated and sorted.
type PlanRequest struct {
	Adults    int
	Children  int
	Payers    int
	Budget    *decimal.Decimal // nil = unconstrained
	Mode      Mode
	Meats     []MeatCategory
	Sides     []SideCategory
	PartyMode bool
}

// HasBudget reports whether a budget ceiling was supplied
func (r PlanRequest) HasBudget() bool {
	return r.Budget != nil
}
