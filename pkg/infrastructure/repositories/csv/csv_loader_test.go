package csv

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
	testhelpers "github.com/vsinha/bbqplan/pkg/infrastructure/testing"
)

func TestLoader_ReadPrices(t *testing.T) {
	sheet := "kind,category,price_per_kg\n" +
		"meat,beef,92.50\n" +
		"side, Rice ,7\n"

	overrides, err := NewLoader().ReadPrices(strings.NewReader(sheet))
	if err != nil {
		t.Fatalf("Failed to read price sheet: %v", err)
	}

	if len(overrides) != 2 {
		t.Fatalf("Expected 2 overrides, got %d", len(overrides))
	}
	if overrides[0].Kind != entities.MeatKind || overrides[0].ID != "beef" {
		t.Errorf("Unexpected first override: %+v", overrides[0])
	}
	if !overrides[0].PricePerKg.Equal(decimal.RequireFromString("92.5")) {
		t.Errorf("Expected 92.5, got %s", overrides[0].PricePerKg)
	}
	if overrides[1].Kind != entities.SideKind || overrides[1].ID != "rice" {
		t.Errorf("Expected normalized side rice, got %+v", overrides[1])
	}
}

func TestLoader_ReadPricesErrors(t *testing.T) {
	testCases := []struct {
		name        string
		sheet       string
		expectError string
	}{
		{"header only", "kind,category,price_per_kg\n", "at least one data row"},
		{"wrong header", "type,name,price\nmeat,beef,80\n", "header mismatch"},
		{"bad kind", "kind,category,price_per_kg\ndrink,beer,3\n", "row 2: invalid kind"},
		{"bad price", "kind,category,price_per_kg\nmeat,beef,cheap\n", "row 2: invalid price_per_kg"},
		{"zero price", "kind,category,price_per_kg\nmeat,beef,0\n", "must be positive"},
		{"empty category", "kind,category,price_per_kg\nmeat, ,10\n", "category cannot be empty"},
		{"duplicate", "kind,category,price_per_kg\nmeat,beef,80\nmeat,BEEF,90\n", "row 3: meat beef already priced on row 2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().ReadPrices(strings.NewReader(tc.sheet))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Errorf("Expected error containing %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestLoader_ApplyPrices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	if err := os.WriteFile(path, []byte("kind,category,price_per_kg\nmeat,chicken,25\n"), 0o644); err != nil {
		t.Fatalf("Failed to write price sheet: %v", err)
	}

	rates := testhelpers.BuildTestRates()
	updated, err := NewLoader().ApplyPrices(path, rates)
	if err != nil {
		t.Fatalf("Failed to apply prices: %v", err)
	}

	if !updated.Meats["chicken"].PricePerKg.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected chicken at 25, got %s", updated.Meats["chicken"].PricePerKg)
	}
	if !rates.Meats["chicken"].PricePerKg.Equal(decimal.NewFromInt(20)) {
		t.Error("Original rates were mutated")
	}
}

func TestLoader_ApplyPricesUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.csv")
	if err := os.WriteFile(path, []byte("kind,category,price_per_kg\nmeat,tofu,25\n"), 0o644); err != nil {
		t.Fatalf("Failed to write price sheet: %v", err)
	}

	_, err := NewLoader().ApplyPrices(path, testhelpers.BuildTestRates())
	var unknown *entities.UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownCategoryError, got %v", err)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadPrices(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil || !strings.Contains(err.Error(), "failed to open price sheet") {
		t.Errorf("Expected open error, got %v", err)
	}
}
