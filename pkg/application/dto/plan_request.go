package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vsinha/bbqplan/pkg/domain/services"
)

// requestKeys lists the accepted JSON keys per field, English first. The
// Portuguese keys are what the legacy web form posts.
var requestKeys = struct {
	Adults, Children, Payers, Budget, Mode, Meats, Sides, PartyMode []string
}{
	Adults:    []string{"adults", "adultos"},
	Children:  []string{"children", "criancas"},
	Payers:    []string{"payers", "pagantes"},
	Budget:    []string{"budget", "orcamento"},
	Mode:      []string{"mode", "tipo"},
	Meats:     []string{"meats", "carnes"},
	Sides:     []string{"sides", "acompanhamentos"},
	PartyMode: []string{"party_mode", "modo_festa"},
}

// RawPlanRequest is a plan request as posted by a client. Numeric fields
// keep whatever JSON value was sent; coercion happens in services.Validate.
type RawPlanRequest struct {
	Adults    any      `json:"adults,omitempty"`
	Children  any      `json:"children,omitempty"`
	Payers    any      `json:"payers,omitempty"`
	Budget    any      `json:"budget,omitempty"`
	Mode      string   `json:"mode,omitempty"`
	Meats     []string `json:"meats,omitempty"`
	Sides     []string `json:"sides,omitempty"`
	PartyMode any      `json:"party_mode,omitempty"`
}

// DecodeDocument parses a JSON object keeping numbers as json.Number
func DecodeDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("malformed JSON: trailing data after object")
	}
	return doc, nil
}

// FromDocument builds a request from a decoded JSON object. Unknown keys are
// ignored, and for each field the first alias present wins.
func FromDocument(doc map[string]any) RawPlanRequest {
	return RawPlanRequest{
		Adults:    lookup(doc, requestKeys.Adults),
		Children:  lookup(doc, requestKeys.Children),
		Payers:    lookup(doc, requestKeys.Payers),
		Budget:    lookup(doc, requestKeys.Budget),
		Mode:      stringValue(lookup(doc, requestKeys.Mode)),
		Meats:     stringList(lookup(doc, requestKeys.Meats)),
		Sides:     stringList(lookup(doc, requestKeys.Sides)),
		PartyMode: lookup(doc, requestKeys.PartyMode),
	}
}

// UnmarshalJSON accepts both key sets and comma-separated category strings
func (r *RawPlanRequest) UnmarshalJSON(data []byte) error {
	doc, err := DecodeDocument(data)
	if err != nil {
		return err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return fmt.Errorf("plan request must be a JSON object")
	}
	*r = FromDocument(obj)
	return nil
}

// ToRaw hands the request to the engine validator
func (r RawPlanRequest) ToRaw() services.RawRequest {
	return services.RawRequest{
		Adults:    r.Adults,
		Children:  r.Children,
		Payers:    r.Payers,
		Budget:    r.Budget,
		Mode:      r.Mode,
		Meats:     r.Meats,
		Sides:     r.Sides,
		PartyMode: r.PartyMode,
	}
}

func lookup(doc map[string]any, keys []string) any {
	for _, key := range keys {
		if v, ok := doc[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// stringList reads an array of strings or a comma-separated string
func stringList(v any) []string {
	switch x := v.(type) {
	case string:
		return SplitList(x)
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return x
	}
	return nil
}

// SplitList splits a comma-separated list, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
