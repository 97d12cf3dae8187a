package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	logger := logging.NewMockLogger()
	a := NewAggregator(logger)

	summary, err := a.Summarize(context.Background(), targetStatement())
	require.NoError(t, err)

	assert.Equal(t, "Here's how you spent from January 01, 2024 to January 02, 2024.", summary.Intro)
	assert.Equal(t, []models.CategoryShare{{Category: "Shopping", Percent: 100}}, summary.TopCategories)
	assert.Len(t, summary.DaysOfWeekSpend, 7)
	assert.Equal(t, 1, summary.NumPlacesSpent)
	assert.Equal(t, []models.PlaceCount{{Description: "Target", Count: 2}}, summary.TopFreqPlaces)
	assert.Equal(t, models.DateAmount{Date: "January 01, 2024", Amount: "$10.00"}, summary.TopDateAndAmount)
	assert.Equal(t, []models.PlaceSpend{{Description: "Target", Amount: "$15.00"}}, summary.TopSpendPlaces)

	assert.True(t, logger.HasEntry("INFO", "Summarized transactions"))
	duration, ok := fieldValue(logger.GetEntriesByLevel("INFO"), logging.FieldDuration)
	require.True(t, ok)
	assert.IsType(t, int64(0), duration)
}

func TestSummarize_JSONShape(t *testing.T) {
	summary, err := NewAggregator(logging.NewMockLogger()).Summarize(context.Background(), targetStatement())
	require.NoError(t, err)

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.JSONEq(t, `[["Target","$15.00"]]`, string(decoded["top_spend_places"]))
	assert.JSONEq(t, `["January 01, 2024","$10.00"]`, string(decoded["top_date_and_amt"]))
	assert.JSONEq(t, `[["Shopping",100]]`, string(decoded["top_categories"]))
}

func TestSummarize_EmptyDataset(t *testing.T) {
	logger := logging.NewMockLogger()
	summary, err := NewAggregator(logger).Summarize(context.Background(), nil)

	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, parsererror.ErrEmptyDataset))
	assert.True(t, logger.HasEntry("ERROR", "Failed to summarize transactions"))

	operation, ok := fieldValue(logger.GetEntriesByLevel("DEBUG"), logging.FieldOperation)
	require.True(t, ok)
	assert.Contains(t, []string{"intro", "top_categories", "days_of_week_spend", "num_places_spent",
		"top_freq_places", "top_date_and_amt", "top_spend_places"}, operation)
}

func fieldValue(entries []logging.LogEntry, key string) (interface{}, bool) {
	for _, entry := range entries {
		for _, field := range entry.Fields {
			if field.Key == key {
				return field.Value, true
			}
		}
	}
	return nil, false
}

func TestSummarize_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewAggregator(logging.NewMockLogger()).Summarize(ctx, targetStatement())
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSummarize_DoesNotModifyInput(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-03", "Cafe", "Dining", "4"),
		tx("2024-01-01", "Target", "Shopping", "10"),
		tx("2024-01-02", "Target", "Shopping", "5"),
	}
	before := append([]models.Transaction(nil), txs...)

	_, err := NewAggregator(logging.NewMockLogger()).Summarize(context.Background(), txs)
	require.NoError(t, err)
	assert.Equal(t, before, txs)
}
