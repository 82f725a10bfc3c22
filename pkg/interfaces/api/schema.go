package api

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const planRequestSchemaURL = "https://bbqplan.local/schemas/plan_request.schema.json"

//go:embed plan_request.schema.json
var planRequestSchema []byte

// compilePlanRequestSchema compiles the embedded request schema
func compilePlanRequestSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(planRequestSchemaURL, bytes.NewReader(planRequestSchema)); err != nil {
		return nil, fmt.Errorf("plan request schema load failed: %w", err)
	}
	schema, err := c.Compile(planRequestSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("plan request schema compile failed: %w", err)
	}
	return schema, nil
}
