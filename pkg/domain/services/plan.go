package services

import (
	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// BuildPlan runs estimation, allocation, pricing and budget fitting for a
// validated request. It has no side effects and may run concurrently with
// any other evaluation against the same rate table.
func BuildPlan(req entities.PlanRequest, rates *entities.RateTable) (*entities.Plan, error) {
	demand := Estimate(req, rates)
	quantities := Allocate(demand, req.Meats, req.Sides)
	plan := Price(quantities, req.Payers, rates)
	return FitToBudget(plan, req.Budget, rates)
}

// Evaluate validates a raw request and builds its plan
func Evaluate(raw RawRequest, rates *entities.RateTable) (*entities.Plan, error) {
	req, err := Validate(raw, rates)
	if err != nil {
		return nil, err
	}
	return BuildPlan(req, rates)
}
