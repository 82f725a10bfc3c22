package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vsinha/bbqplan/pkg/application/dto"
	"github.com/vsinha/bbqplan/pkg/application/services/planner"
	"github.com/vsinha/bbqplan/pkg/domain/entities"
	"github.com/vsinha/bbqplan/pkg/domain/services"
	"github.com/vsinha/bbqplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/bbqplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/bbqplan/pkg/infrastructure/repositories/ratefile"
	"github.com/vsinha/bbqplan/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	Adults      int
	Children    int
	Payers      int
	Budget      string
	Mode        string
	Meats       string
	Sides       string
	Party       bool
	RequestFile string
	RatesFile   string
	PricesFile  string
	OutputDir   string
	Format      string
	Verbose     bool
	Help        bool

	// Stdout receives the rendered plan. Defaults to os.Stdout.
	Stdout io.Writer
}

// PlanCommand evaluates one party plan from flags or a request file
type PlanCommand struct {
	config Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{
		config: config,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.Verbose {
		c.printHeader()
	}

	rates, err := c.loadRates()
	if err != nil {
		return err
	}

	raw, err := c.buildRequest()
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🔄 Evaluating plan...")
	}

	p := planner.NewPlanner(memory.NewRateStore(rates))

	startTime := time.Now()
	plan, err := p.Plan(ctx, raw)
	evaluationTime := time.Since(startTime)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("✅ Plan evaluated in %v\n", evaluationTime)
		if plan.BudgetAdjusted {
			fmt.Println("💸 Quantities scaled down to fit the budget")
		}
		fmt.Println()
	}

	outputConfig := output.Config{
		Format:         c.config.Format,
		OutputDir:      c.config.OutputDir,
		Verbose:        c.config.Verbose,
		Currency:       rates.Currency,
		EvaluationTime: evaluationTime,
		Writer:         c.config.Stdout,
	}
	if err := output.Generate(plan, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Planning complete!")
	}
	return nil
}

// loadRates reads the rate table and applies the optional price sheet
func (c *PlanCommand) loadRates() (*entities.RateTable, error) {
	if c.config.Verbose {
		fmt.Println("📂 Loading rate table...")
	}

	rates, err := ratefile.Load(c.config.RatesFile)
	if err != nil {
		return nil, fmt.Errorf("error loading rates: %w", err)
	}

	if c.config.PricesFile != "" {
		rates, err = csv.NewLoader().ApplyPrices(c.config.PricesFile, rates)
		if err != nil {
			return nil, fmt.Errorf("error loading prices: %w", err)
		}
	}

	if c.config.Verbose {
		fmt.Printf("✅ Rates loaded successfully:\n")
		fmt.Printf("  Meats: %d\n", len(rates.Meats))
		fmt.Printf("  Sides: %d\n", len(rates.Sides))
		fmt.Printf("  Currency: %s\n", rates.Currency)
		fmt.Println()
	}
	return rates, nil
}

// buildRequest reads the request file when one is given and the flags
// otherwise
func (c *PlanCommand) buildRequest() (services.RawRequest, error) {
	if c.config.RequestFile == "" {
		raw := services.RawRequest{
			Adults:    c.config.Adults,
			Children:  c.config.Children,
			Payers:    c.config.Payers,
			Mode:      c.config.Mode,
			Meats:     dto.SplitList(c.config.Meats),
			Sides:     dto.SplitList(c.config.Sides),
			PartyMode: c.config.Party,
		}
		if c.config.Budget != "" {
			raw.Budget = c.config.Budget
		}
		return raw, nil
	}

	data, err := os.ReadFile(c.config.RequestFile)
	if err != nil {
		return services.RawRequest{}, err
	}
	doc, err := dto.DecodeDocument(data)
	if err != nil {
		return services.RawRequest{}, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return services.RawRequest{}, fmt.Errorf("%s: request must be a JSON object", c.config.RequestFile)
	}
	return dto.FromDocument(obj).ToRaw(), nil
}

// printHeader prints the command header information
func (c *PlanCommand) printHeader() {
	fmt.Printf("🚀 BBQ Planner CLI\n")
	if c.config.RequestFile != "" {
		fmt.Printf("Request file: %s\n", c.config.RequestFile)
	} else {
		fmt.Printf("Guests: %d adults, %d children\n", c.config.Adults, c.config.Children)
	}
	if c.config.RatesFile != "" {
		fmt.Printf("Rates file: %s\n", c.config.RatesFile)
	} else {
		fmt.Printf("Rates file: (embedded defaults)\n")
	}
	if c.config.PricesFile != "" {
		fmt.Printf("Price sheet: %s\n", c.config.PricesFile)
	}
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *PlanCommand) showHelp() {
	fmt.Printf(`BBQ Planner CLI - Shopping list and cost estimate for a barbecue

USAGE:
    bbqplan -adults <n> -meats <ids> [options]   # Plan from flags
    bbqplan -request <file>                      # Plan from a JSON request

OPTIONS:
    -adults <n>         Number of adults (required)
    -children <n>       Number of children (default: 0)
    -payers <n>         Number of people splitting the bill (default: adults)
    -budget <amount>    Spending cap; quantities scale down to fit it
    -mode <mode>        standard or full; full selects every meat and side
    -meats <ids>        Comma separated meat ids, e.g. beef,chicken
    -sides <ids>        Comma separated side ids, e.g. rice,farofa
    -party              Party mode: heavier eating and drinking
    -request <file>     JSON request file, same body as POST /api/plan
    -rates <file>       YAML rate table (default: embedded rates)
    -prices <file>      CSV price sheet overriding per-kg prices
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, html (default: text)
    -verbose            Enable verbose output
    -help               Show this help message

PRICE SHEET FORMAT:

prices.csv:
    kind,category,price_per_kg
    meat,beef,92.50
    side,rice,7.90

EXAMPLES:
    # Ten adults, beef and chicken
    bbqplan -adults 10 -meats beef,chicken

    # Everything on the menu for a party, capped at 500
    bbqplan -adults 20 -children 6 -mode full -party -budget 500

    # Use this week's prices and write an HTML report
    bbqplan -request party.json -prices prices.csv -format html -output out/
`)
}
