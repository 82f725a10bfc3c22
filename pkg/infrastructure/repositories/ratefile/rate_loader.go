// Package ratefile loads rate tables from YAML.
package ratefile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vsinha/bbqplan/pkg/domain/entities"
	"github.com/vsinha/bbqplan/pkg/domain/services"
)

//go:embed default_rates.yaml
var defaultRates []byte

// amount decodes a YAML scalar straight into a decimal so that 0.4 stays 0.4
type amount struct {
	decimal.Decimal
	set bool
}

func (a *amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid number %q", node.Line, node.Value)
	}
	a.Decimal, a.set = d, true
	return nil
}

type consumptionDoc struct {
	PerAdult    amount `yaml:"per_adult"`
	ChildWeight amount `yaml:"child_weight"`
}

type categoryDoc struct {
	Name       string `yaml:"name"`
	PricePerKg amount `yaml:"price_per_kg"`
	FloorKg    amount `yaml:"floor_kg"`
}

type beverageDoc struct {
	UnitPrice amount `yaml:"unit_price"`
	Floor     amount `yaml:"floor"`
}

type rateDoc struct {
	Currency    string `yaml:"currency"`
	PartyFactor amount `yaml:"party_factor"`
	Consumption struct {
		MeatKg      consumptionDoc `yaml:"meat_kg"`
		BeerCans    consumptionDoc `yaml:"beer_cans"`
		SodaLiters  consumptionDoc `yaml:"soda_liters"`
		WaterLiters consumptionDoc `yaml:"water_liters"`
		SideKg      consumptionDoc `yaml:"side_kg"`
	} `yaml:"consumption"`
	Charcoal struct {
		KgPerKgMeat amount `yaml:"kg_per_kg_meat"`
		PricePerKg  amount `yaml:"price_per_kg"`
	} `yaml:"charcoal"`
	Prep struct {
		MinutesPerKg   amount `yaml:"minutes_per_kg"`
		MinimumMinutes int    `yaml:"minimum_minutes"`
	} `yaml:"prep"`
	Beverages struct {
		Beer  beverageDoc `yaml:"beer"`
		Soda  beverageDoc `yaml:"soda"`
		Water beverageDoc `yaml:"water"`
	} `yaml:"beverages"`
	Meats map[string]categoryDoc `yaml:"meats"`
	Sides map[string]categoryDoc `yaml:"sides"`
}

// Default returns the embedded rate table
func Default() (*entities.RateTable, error) {
	rates, err := Parse(defaultRates)
	if err != nil {
		return nil, fmt.Errorf("embedded rates: %w", err)
	}
	return rates, nil
}

// DefaultYAML returns the embedded rate file, for writing a starting point to disk
func DefaultYAML() []byte {
	return bytes.Clone(defaultRates)
}

// LoadFile reads a rate table from a YAML file
func LoadFile(path string) (*entities.RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates file %s: %w", path, err)
	}
	rates, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rates file %s: %w", path, err)
	}
	return rates, nil
}

// Load reads the rate file at path, or the embedded defaults when path is empty
func Load(path string) (*entities.RateTable, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a YAML rate table. Unknown keys are rejected.
func Parse(data []byte) (*entities.RateTable, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc rateDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("rate table is empty")
		}
		return nil, fmt.Errorf("failed to decode rate table: %w", err)
	}

	rates, err := doc.toEntity()
	if err != nil {
		return nil, err
	}
	if err := services.ValidateRateTable(rates).Err(); err != nil {
		return nil, err
	}
	return rates, nil
}

func (doc *rateDoc) toEntity() (*entities.RateTable, error) {
	if !doc.PartyFactor.set {
		return nil, fmt.Errorf("party_factor is required")
	}
	if !doc.Consumption.MeatKg.PerAdult.set {
		return nil, fmt.Errorf("consumption.meat_kg.per_adult is required")
	}

	rates := &entities.RateTable{
		Currency:    doc.Currency,
		PartyFactor: doc.PartyFactor.Decimal,
		Consumption: entities.Consumption{
			MeatKg:      doc.Consumption.MeatKg.toEntity(),
			BeerCans:    doc.Consumption.BeerCans.toEntity(),
			SodaLiters:  doc.Consumption.SodaLiters.toEntity(),
			WaterLiters: doc.Consumption.WaterLiters.toEntity(),
			SideKg:      doc.Consumption.SideKg.toEntity(),
		},
		Charcoal: entities.Charcoal{
			KgPerKgMeat: doc.Charcoal.KgPerKgMeat.Decimal,
			PricePerKg:  doc.Charcoal.PricePerKg.Decimal,
		},
		Prep: entities.Prep{
			MinutesPerKg:   doc.Prep.MinutesPerKg.Decimal,
			MinimumMinutes: doc.Prep.MinimumMinutes,
		},
		Beverages: entities.BeverageRates{
			Beer:  doc.Beverages.Beer.toEntity(),
			Soda:  doc.Beverages.Soda.toEntity(),
			Water: doc.Beverages.Water.toEntity(),
		},
		Meats: make(map[entities.MeatCategory]entities.CategoryRate, len(doc.Meats)),
		Sides: make(map[entities.SideCategory]entities.CategoryRate, len(doc.Sides)),
	}

	for id, c := range doc.Meats {
		rates.Meats[entities.MeatCategory(id)] = c.toEntity(id)
	}
	for id, c := range doc.Sides {
		rates.Sides[entities.SideCategory(id)] = c.toEntity(id)
	}
	return rates, nil
}

func (c consumptionDoc) toEntity() entities.ConsumptionRate {
	return entities.ConsumptionRate{PerAdult: c.PerAdult.Decimal, ChildWeight: c.ChildWeight.Decimal}
}

func (b beverageDoc) toEntity() entities.BeverageRate {
	return entities.BeverageRate{UnitPrice: b.UnitPrice.Decimal, Floor: b.Floor.Decimal}
}

func (c categoryDoc) toEntity(id string) entities.CategoryRate {
	name := c.Name
	if name == "" {
		name = id
	}
	return entities.CategoryRate{Name: name, PricePerKg: c.PricePerKg.Decimal, FloorKg: c.FloorKg.Decimal}
}
