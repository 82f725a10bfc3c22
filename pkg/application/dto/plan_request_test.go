package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/bbqplan/pkg/application/dto"
)

func TestRawPlanRequest_EnglishKeys(t *testing.T) {
	var req dto.RawPlanRequest
	err := json.Unmarshal([]byte(`{
		"adults": 10,
		"children": "3",
		"payers": 8,
		"budget": 250.5,
		"mode": "standard",
		"meats": ["beef", "chicken"],
		"sides": ["rice"],
		"party_mode": true
	}`), &req)
	require.NoError(t, err)

	assert.Equal(t, json.Number("10"), req.Adults)
	assert.Equal(t, "3", req.Children)
	assert.Equal(t, json.Number("8"), req.Payers)
	assert.Equal(t, json.Number("250.5"), req.Budget)
	assert.Equal(t, "standard", req.Mode)
	assert.Equal(t, []string{"beef", "chicken"}, req.Meats)
	assert.Equal(t, []string{"rice"}, req.Sides)
	assert.Equal(t, true, req.PartyMode)
}

func TestRawPlanRequest_PortugueseAliases(t *testing.T) {
	var req dto.RawPlanRequest
	err := json.Unmarshal([]byte(`{
		"adultos": 6,
		"criancas": 2,
		"pagantes": 3,
		"orcamento": "120",
		"tipo": "completo",
		"carnes": "beef, chicken",
		"acompanhamentos": ["farofa"],
		"modo_festa": "on"
	}`), &req)
	require.NoError(t, err)

	assert.Equal(t, json.Number("6"), req.Adults)
	assert.Equal(t, json.Number("2"), req.Children)
	assert.Equal(t, json.Number("3"), req.Payers)
	assert.Equal(t, "120", req.Budget)
	assert.Equal(t, "completo", req.Mode)
	assert.Equal(t, []string{"beef", "chicken"}, req.Meats)
	assert.Equal(t, []string{"farofa"}, req.Sides)
	assert.Equal(t, "on", req.PartyMode)
}

func TestRawPlanRequest_EnglishKeyWins(t *testing.T) {
	var req dto.RawPlanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"adults": 4, "adultos": 9, "carnes": null, "meats": ["ribs"]}`), &req))

	assert.Equal(t, json.Number("4"), req.Adults)
	assert.Equal(t, []string{"ribs"}, req.Meats)
}

func TestRawPlanRequest_IgnoresNonStringCategories(t *testing.T) {
	var req dto.RawPlanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"meats": ["beef", 3, null, "ribs"]}`), &req))
	assert.Equal(t, []string{"beef", "ribs"}, req.Meats)
}

func TestRawPlanRequest_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"not json", `{adults: 3`},
		{"array", `[1, 2]`},
		{"trailing data", `{"adults": 3} {"adults": 4}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req dto.RawPlanRequest
			assert.Error(t, json.Unmarshal([]byte(tc.body), &req))
		})
	}
}

func TestRawPlanRequest_ToRaw(t *testing.T) {
	req := dto.RawPlanRequest{Adults: json.Number("5"), Mode: "full", Meats: []string{"beef"}, PartyMode: true}
	raw := req.ToRaw()

	assert.Equal(t, json.Number("5"), raw.Adults)
	assert.Equal(t, "full", raw.Mode)
	assert.Equal(t, []string{"beef"}, raw.Meats)
	assert.Equal(t, true, raw.PartyMode)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"beef", "ribs"}, dto.SplitList(" beef,, ribs ,"))
	assert.Empty(t, dto.SplitList(""))
}
