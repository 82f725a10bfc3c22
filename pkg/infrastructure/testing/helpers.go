package testing

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
	"github.com/vsinha/bbqplan/pkg/domain/services"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// BuildTestRates builds the reference rate table used across tests. It mirrors
// the embedded default rates file.
//
//	meat 0.4 kg per adult, children half; party factor 1.5
//	beef 80/kg, chicken 20/kg, sausage 30/kg, ribs 50/kg, floor 0.5 kg
//	charcoal 1.2 kg per kg of meat at 5/kg; 15 minutes per kg, minimum 40
func BuildTestRates() *entities.RateTable {
	return &entities.RateTable{
		Currency:    "BRL",
		PartyFactor: d("1.5"),
		Consumption: entities.Consumption{
			MeatKg:      entities.ConsumptionRate{PerAdult: d("0.4"), ChildWeight: d("0.5")},
			BeerCans:    entities.ConsumptionRate{PerAdult: d("2"), ChildWeight: d("0")},
			SodaLiters:  entities.ConsumptionRate{PerAdult: d("0.5"), ChildWeight: d("0.9")},
			WaterLiters: entities.ConsumptionRate{PerAdult: d("0.4"), ChildWeight: d("0.9")},
			SideKg:      entities.ConsumptionRate{PerAdult: d("0.23"), ChildWeight: d("0.5")},
		},
		Charcoal: entities.Charcoal{KgPerKgMeat: d("1.2"), PricePerKg: d("5")},
		Prep:     entities.Prep{MinutesPerKg: d("15"), MinimumMinutes: 40},
		Beverages: entities.BeverageRates{
			Beer:  entities.BeverageRate{UnitPrice: d("3"), Floor: d("6")},
			Soda:  entities.BeverageRate{UnitPrice: d("5"), Floor: d("1")},
			Water: entities.BeverageRate{UnitPrice: d("2"), Floor: d("1")},
		},
		Meats: map[entities.MeatCategory]entities.CategoryRate{
			"beef":    {Name: "Beef (picanha)", PricePerKg: d("80"), FloorKg: d("0.5")},
			"chicken": {Name: "Chicken", PricePerKg: d("20"), FloorKg: d("0.5")},
			"sausage": {Name: "Sausage", PricePerKg: d("30"), FloorKg: d("0.5")},
			"ribs":    {Name: "Ribs", PricePerKg: d("50"), FloorKg: d("0.5")},
		},
		Sides: map[entities.SideCategory]entities.CategoryRate{
			"rice":         {Name: "Rice", PricePerKg: d("8"), FloorKg: d("0.2")},
			"farofa":       {Name: "Farofa", PricePerKg: d("10"), FloorKg: d("0.2")},
			"vinaigrette":  {Name: "Vinaigrette", PricePerKg: d("5"), FloorKg: d("0.2")},
			"garlic_bread": {Name: "Garlic bread", PricePerKg: d("3"), FloorKg: d("0.2")},
		},
	}
}

// TenAdultsBeefAndChicken is the reference scenario: ten adults, beef and
// chicken, no sides, no party mode, no budget. Its unscaled total is 317.
func TenAdultsBeefAndChicken() services.RawRequest {
	return services.RawRequest{
		Adults: 10,
		Meats:  []string{"beef", "chicken"},
	}
}

// WithBudget returns a copy of the request with the budget set
func WithBudget(raw services.RawRequest, budget string) services.RawRequest {
	raw.Budget = budget
	return raw
}

// BuildRequest builds a validated request directly, bypassing coercion
func BuildRequest(adults, children int, meats []entities.MeatCategory, sides []entities.SideCategory, party bool) entities.PlanRequest {
	return entities.PlanRequest{
		Adults:    adults,
		Children:  children,
		Payers:    adults,
		Mode:      entities.Standard,
		Meats:     entities.SortMeats(append([]entities.MeatCategory(nil), meats...)),
		Sides:     entities.SortSides(append([]entities.SideCategory(nil), sides...)),
		PartyMode: party,
	}
}
