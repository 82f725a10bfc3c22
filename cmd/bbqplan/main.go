package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/bbqplan/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		adults      = flag.Int("adults", 0, "Number of adults")
		children    = flag.Int("children", 0, "Number of children")
		payers      = flag.Int("payers", 0, "Number of people splitting the bill (default: adults)")
		budget      = flag.String("budget", "", "Spending cap (optional)")
		mode        = flag.String("mode", "standard", "Menu mode: standard, full")
		meats       = flag.String("meats", "", "Comma separated meat ids")
		sides       = flag.String("sides", "", "Comma separated side ids")
		party       = flag.Bool("party", false, "Party mode")
		requestFile = flag.String("request", "", "Path to JSON request file")
		ratesFile   = flag.String("rates", "", "Path to YAML rate table (default: embedded)")
		pricesFile  = flag.String("prices", "", "Path to CSV price sheet")
		outputDir   = flag.String("output", "", "Output directory for results (optional)")
		format      = flag.String("format", "text", "Output format: text, json, html")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		Adults:      *adults,
		Children:    *children,
		Payers:      *payers,
		Budget:      *budget,
		Mode:        *mode,
		Meats:       *meats,
		Sides:       *sides,
		Party:       *party,
		RequestFile: *requestFile,
		RatesFile:   *ratesFile,
		PricesFile:  *pricesFile,
		OutputDir:   *outputDir,
		Format:      *format,
		Verbose:     *verbose,
		Help:        *help,
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
