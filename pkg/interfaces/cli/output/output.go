package output

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/vsinha/bbqplan/pkg/application/dto"
	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format         string
	OutputDir      string
	Verbose        bool
	Currency       string
	EvaluationTime time.Duration

	// Writer receives the rendered plan when no OutputDir is set. Defaults
	// to stdout.
	Writer io.Writer
}

// File names used when writing into OutputDir
const (
	TextFile = "bbq_plan.txt"
	JSONFile = "bbq_plan.json"
	HTMLFile = "bbq_plan.html"
)

// Generate renders the plan in the configured format
func Generate(plan *entities.Plan, config Config) error {
	if plan == nil {
		return fmt.Errorf("no plan to render")
	}
	switch config.Format {
	case "", "text":
		return emit(config, TextFile, func(w io.Writer) error { return writeText(w, plan, config) })
	case "json":
		return emit(config, JSONFile, func(w io.Writer) error { return writeJSON(w, plan) })
	case "html":
		return emit(config, HTMLFile, func(w io.Writer) error { return writeHTML(w, plan, config) })
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// emit sends the rendering to OutputDir/name when a directory is set and to
// the configured writer otherwise
func emit(config Config, name string, render func(io.Writer) error) error {
	if config.OutputDir == "" {
		w := config.Writer
		if w == nil {
			w = os.Stdout
		}
		return render(w)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(config.OutputDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if config.Verbose {
		fmt.Printf("📄 Plan written to: %s\n", path)
	}
	return nil
}

func writeText(w io.Writer, plan *entities.Plan, config Config) error {
	resp := dto.FromPlan(plan)
	currency := config.Currency

	fmt.Fprintf(w, "🔥 BBQ Plan Summary\n")
	fmt.Fprintf(w, "===================\n\n")

	fmt.Fprintf(w, "Total Cost:     %s %s\n", currency, resp.TotalCost)
	fmt.Fprintf(w, "Cost per Payer: %s %s\n", currency, resp.CostPerPayer)
	fmt.Fprintf(w, "Prep Time:      %d min\n", resp.PrepTimeMinutes)
	if resp.BudgetAdjusted {
		fmt.Fprintf(w, "Budget:         quantities scaled down to fit\n")
	}
	if config.EvaluationTime > 0 {
		fmt.Fprintf(w, "Evaluation:     %v\n", config.EvaluationTime)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "🥩 Meats\tQuantity\t\n")
	for _, id := range slices.Sorted(maps.Keys(resp.ShoppingList.Meats)) {
		fmt.Fprintf(tw, "  %s\t%s\t\n", id, resp.ShoppingList.Meats[id])
	}
	if len(resp.ShoppingList.Sides) > 0 {
		fmt.Fprintf(tw, "🥗 Sides\t\t\n")
		for _, id := range slices.Sorted(maps.Keys(resp.ShoppingList.Sides)) {
			fmt.Fprintf(tw, "  %s\t%s\t\n", id, resp.ShoppingList.Sides[id])
		}
	}
	fmt.Fprintf(tw, "🍺 Beverages\t\t\n")
	for _, id := range []string{"beer", "soda", "water"} {
		fmt.Fprintf(tw, "  %s\t%s\t\n", id, resp.ShoppingList.Beverages[id])
	}
	fmt.Fprintf(tw, "🪵 Charcoal\t%s\t\n", resp.ShoppingList.Charcoal)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Cost breakdown\t\t\n")
	fmt.Fprintf(tw, "meat\t%s\t\n", resp.MeatCost)
	fmt.Fprintf(tw, "sides\t%s\t\n", resp.SideCost)
	fmt.Fprintf(tw, "beverages\t%s\t\n", resp.Beverages.Cost)
	fmt.Fprintf(tw, "charcoal\t%s\t\n", resp.CharcoalCost)
	fmt.Fprintf(tw, "total\t%s\t\n", resp.TotalCost)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, plan *entities.Plan) error {
	data, err := json.MarshalIndent(dto.FromPlan(plan), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}
