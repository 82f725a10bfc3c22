package dto

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// Presentation precision. The engine keeps exact values; rounding only
// happens here.
const (
	KgPlaces     = 3
	VolumePlaces = 2
	MoneyPlaces  = 2
)

// PlanResponse is the wire form of a plan
type PlanResponse struct {
	MeatAllocation  map[string]json.Number `json:"meat_allocation"`
	SideAllocation  map[string]json.Number `json:"side_allocation"`
	Beverages       BeveragesResponse      `json:"beverages"`
	CharcoalKg      json.Number            `json:"charcoal_kg"`
	CharcoalCost    json.Number            `json:"charcoal_cost"`
	MeatCost        json.Number            `json:"meat_cost"`
	SideCost        json.Number            `json:"side_cost"`
	TotalCost       json.Number            `json:"total_cost"`
	PrepTimeMinutes int                    `json:"prep_time_minutes"`
	CostPerPayer    json.Number            `json:"cost_per_payer"`
	BudgetAdjusted  bool                   `json:"budget_adjusted"`
	MeatKgTotal     json.Number            `json:"meat_kg_total"`
	SideKgTotal     json.Number            `json:"side_kg_total"`
	ShoppingList    ShoppingList           `json:"shopping_list"`
}

// BeveragesResponse is the beverage block of a plan response
type BeveragesResponse struct {
	BeerCans    json.Number `json:"beer_cans"`
	SodaLiters  json.Number `json:"soda_liters"`
	WaterLiters json.Number `json:"water_liters"`
	Cost        json.Number `json:"cost"`
}

// ShoppingList holds human-readable quantities for each line to buy
type ShoppingList struct {
	Meats     map[string]string `json:"meats"`
	Sides     map[string]string `json:"sides"`
	Beverages map[string]string `json:"beverages"`
	Charcoal  string            `json:"charcoal"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromPlan renders a plan for the wire. The rounded total is the sum of the
// rounded cost components, and the cost per payer divides that displayed
// total, so that the figures a client sees add up.
func FromPlan(plan *entities.Plan) *PlanResponse {
	meatCost := plan.MeatCost.Round(MoneyPlaces)
	sideCost := plan.SideCost.Round(MoneyPlaces)
	beverageCost := plan.Beverages.Cost.Round(MoneyPlaces)
	charcoalCost := plan.CharcoalCost.Round(MoneyPlaces)

	totalCost := meatCost.Add(sideCost).Add(beverageCost).Add(charcoalCost)
	costPerPayer := number(plan.CostPerPayer, MoneyPlaces)
	if plan.Payers > 0 {
		costPerPayer = number(totalCost.Div(decimal.NewFromInt(int64(plan.Payers))), MoneyPlaces)
	}

	resp := &PlanResponse{
		MeatAllocation: make(map[string]json.Number, len(plan.MeatAllocation)),
		SideAllocation: make(map[string]json.Number, len(plan.SideAllocation)),
		Beverages: BeveragesResponse{
			BeerCans:    number(plan.Beverages.BeerCans, VolumePlaces),
			SodaLiters:  number(plan.Beverages.SodaLiters, VolumePlaces),
			WaterLiters: number(plan.Beverages.WaterLiters, VolumePlaces),
			Cost:        json.Number(beverageCost.String()),
		},
		CharcoalKg:      number(plan.CharcoalKg, KgPlaces),
		CharcoalCost:    json.Number(charcoalCost.String()),
		MeatCost:        json.Number(meatCost.String()),
		SideCost:        json.Number(sideCost.String()),
		TotalCost:       json.Number(totalCost.String()),
		PrepTimeMinutes: plan.PrepTimeMinutes,
		CostPerPayer:    costPerPayer,
		BudgetAdjusted:  plan.BudgetAdjusted,
		MeatKgTotal:     number(plan.MeatKgTotal(), KgPlaces),
		SideKgTotal:     number(plan.SideKgTotal(), KgPlaces),
		ShoppingList:    NewShoppingList(plan),
	}

	for id, kg := range plan.MeatAllocation {
		resp.MeatAllocation[string(id)] = number(kg, KgPlaces)
	}
	for id, kg := range plan.SideAllocation {
		resp.SideAllocation[string(id)] = number(kg, KgPlaces)
	}

	return resp
}

// NewShoppingList formats every purchasable line of a plan
func NewShoppingList(plan *entities.Plan) ShoppingList {
	list := ShoppingList{
		Meats: make(map[string]string, len(plan.MeatAllocation)),
		Sides: make(map[string]string, len(plan.SideAllocation)),
		Beverages: map[string]string{
			"beer":  fmt.Sprintf("%s cans", plan.Beverages.BeerCans.StringFixed(1)),
			"soda":  fmt.Sprintf("%s L", plan.Beverages.SodaLiters.StringFixed(1)),
			"water": fmt.Sprintf("%s L", plan.Beverages.WaterLiters.StringFixed(1)),
		},
		Charcoal: Kilograms(plan.CharcoalKg),
	}
	for id, kg := range plan.MeatAllocation {
		list.Meats[string(id)] = Kilograms(kg)
	}
	for id, kg := range plan.SideAllocation {
		list.Sides[string(id)] = Kilograms(kg)
	}
	return list
}

// Kilograms formats a weight the way the shopping list shows it
func Kilograms(kg decimal.Decimal) string {
	return kg.StringFixed(2) + " kg"
}

func number(d decimal.Decimal, places int32) json.Number {
	return json.Number(d.Round(places).String())
}
