package output

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/vsinha/bbqplan/pkg/application/dto"
	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var planTemplate = template.Must(template.ParseFS(templateFS, "templates/plan.html"))

// Line is one row of the shopping table
type Line struct {
	Section  string
	Item     string
	Quantity string
}

// TemplateData contains all data for rendering the HTML template
type TemplateData struct {
	*dto.PlanResponse
	Currency    string
	Lines       []Line
	GeneratedAt string
}

func buildTemplateData(plan *entities.Plan, config Config) TemplateData {
	resp := dto.FromPlan(plan)
	data := TemplateData{
		PlanResponse: resp,
		Currency:     config.Currency,
		GeneratedAt:  time.Now().Format("2006-01-02 15:04:05"),
	}

	for _, id := range slices.Sorted(maps.Keys(resp.ShoppingList.Meats)) {
		data.Lines = append(data.Lines, Line{"Meat", id, resp.ShoppingList.Meats[id]})
	}
	for _, id := range slices.Sorted(maps.Keys(resp.ShoppingList.Sides)) {
		data.Lines = append(data.Lines, Line{"Side", id, resp.ShoppingList.Sides[id]})
	}
	for _, id := range []string{"beer", "soda", "water"} {
		data.Lines = append(data.Lines, Line{"Beverage", id, resp.ShoppingList.Beverages[id]})
	}
	data.Lines = append(data.Lines, Line{"Charcoal", "charcoal", resp.ShoppingList.Charcoal})
	return data
}

func writeHTML(w io.Writer, plan *entities.Plan, config Config) error {
	data := buildTemplateData(plan, config)
	if config.Verbose {
		fmt.Printf("    📊 Rendering %d shopping lines...\n", len(data.Lines))
	}
	if err := planTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
