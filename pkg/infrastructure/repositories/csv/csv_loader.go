package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// priceSheetHeader is the required first row of a price sheet
var priceSheetHeader = []string{"kind", "category", "price_per_kg"}

// Loader handles loading price sheets from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadPrices loads price overrides from a CSV file
func (l *Loader) LoadPrices(filename string) ([]entities.PriceOverride, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open price sheet %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadPrices(file)
}

// ReadPrices parses a price sheet with the header kind,category,price_per_kg
func (l *Loader) ReadPrices(r io.Reader) ([]entities.PriceOverride, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read price sheet CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("price sheet CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, priceSheetHeader) {
		return nil, fmt.Errorf("price sheet CSV header mismatch. Expected: %v, Got: %v", priceSheetHeader, header)
	}

	seen := make(map[string]int, len(records)-1)
	var overrides []entities.PriceOverride
	for i, record := range records[1:] {
		row := i + 2
		if len(record) != len(priceSheetHeader) {
			return nil, fmt.Errorf("price sheet CSV row %d: expected %d columns, got %d", row, len(priceSheetHeader), len(record))
		}

		override, err := parsePriceOverride(record)
		if err != nil {
			return nil, fmt.Errorf("price sheet CSV row %d: %w", row, err)
		}

		key := string(override.Kind) + ":" + override.ID
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("price sheet CSV row %d: %s %s already priced on row %d", row, override.Kind, override.ID, first)
		}
		seen[key] = row

		overrides = append(overrides, override)
	}

	return overrides, nil
}

// ApplyPrices loads a price sheet and returns a copy of rates with it applied
func (l *Loader) ApplyPrices(filename string, rates *entities.RateTable) (*entities.RateTable, error) {
	overrides, err := l.LoadPrices(filename)
	if err != nil {
		return nil, err
	}
	updated, err := rates.WithPrices(overrides)
	if err != nil {
		return nil, fmt.Errorf("price sheet %s: %w", filename, err)
	}
	return updated, nil
}

func parsePriceOverride(record []string) (entities.PriceOverride, error) {
	kind, err := parseCategoryKind(record[0])
	if err != nil {
		return entities.PriceOverride{}, err
	}

	id := entities.NormalizeCategoryID(record[1])
	if id == "" {
		return entities.PriceOverride{}, fmt.Errorf("category cannot be empty")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	if err != nil {
		return entities.PriceOverride{}, fmt.Errorf("invalid price_per_kg: %s", record[2])
	}
	if !price.IsPositive() {
		return entities.PriceOverride{}, fmt.Errorf("price_per_kg must be positive, got %s", price)
	}

	return entities.PriceOverride{Kind: kind, ID: id, PricePerKg: price}, nil
}

func parseCategoryKind(s string) (entities.CategoryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "meat":
		return entities.MeatKind, nil
	case "side":
		return entities.SideKind, nil
	default:
		return "", fmt.Errorf("invalid kind: %s (expected: meat or side)", s)
	}
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(actual[i])) != col {
			return false
		}
	}
	return true
}
