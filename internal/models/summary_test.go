package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleSummary() Summary {
	return Summary{
		Intro:         "Here's how you spent from January 01, 2024 to January 02, 2024.",
		TopCategories: []CategoryShare{{Category: "Shopping", Percent: 100}},
		DaysOfWeekSpend: []DaySpend{
			{Day: "Monday", Amount: decimal.RequireFromString("10.5")},
			{Day: "Tuesday", Amount: decimal.Zero},
		},
		NumPlacesSpent:   1,
		TopFreqPlaces:    []PlaceCount{{Description: "Target", Count: 2}},
		TopDateAndAmount: DateAmount{Date: "January 01, 2024", Amount: "$10"},
		TopSpendPlaces:   []PlaceSpend{{Description: "Target", Amount: "$15.00"}},
	}
}

func TestSummary_JSONShape(t *testing.T) {
	data, err := json.Marshal(sampleSummary())
	require.NoError(t, err)

	var generic map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &generic))

	keys := make([]string, 0, len(generic))
	for k := range generic {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"intro", "top_categories", "days_of_week_spend", "num_places_spent",
		"top_freq_places", "top_date_and_amt", "top_spend_places",
	}, keys)

	assert.JSONEq(t, `[["Shopping", 100]]`, mustJSON(t, generic["top_categories"]))
	assert.JSONEq(t, `[{"day":"Monday","amount":10.5},{"day":"Tuesday","amount":0}]`, mustJSON(t, generic["days_of_week_spend"]))
	assert.JSONEq(t, `[["Target", 2]]`, mustJSON(t, generic["top_freq_places"]))
	assert.JSONEq(t, `["January 01, 2024", "$10"]`, mustJSON(t, generic["top_date_and_amt"]))
	assert.JSONEq(t, `[["Target", "$15.00"]]`, mustJSON(t, generic["top_spend_places"]))
}

func TestSummary_JSONDecode(t *testing.T) {
	in := sampleSummary()
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Summary
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, in.TopCategories, out.TopCategories)
	assert.Equal(t, in.TopFreqPlaces, out.TopFreqPlaces)
	assert.Equal(t, in.TopDateAndAmount, out.TopDateAndAmount)
	assert.True(t, in.DaysOfWeekSpend[0].Amount.Equal(out.DaysOfWeekSpend[0].Amount))
}

func TestPairDecode_RejectsWrongArity(t *testing.T) {
	var p PlaceCount
	err := json.Unmarshal([]byte(`["Target", 2, 3]`), &p)
	assert.Error(t, err)
}

func TestSummary_YAMLShape(t *testing.T) {
	data, err := yaml.Marshal(sampleSummary())
	require.NoError(t, err)

	var generic map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &generic))

	assert.Equal(t, []interface{}{[]interface{}{"Shopping", 100}}, generic["top_categories"])
	assert.Equal(t, []interface{}{"January 01, 2024", "$10"}, generic["top_date_and_amt"])
	assert.Equal(t, 1, generic["num_places_spent"])

	days, ok := generic["days_of_week_spend"].([]interface{})
	require.True(t, ok)
	require.Len(t, days, 2)
	assert.Equal(t, map[string]interface{}{"day": "Monday", "amount": 10.5}, days[0])
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
