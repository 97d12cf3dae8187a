// Package aggregator computes the spending statistics of a normalized statement.
// Every reduction is a pure read-only function of the transaction slice; Summarize
// runs them concurrently and assembles the result.
package aggregator

import (
	"context"
	"fmt"
	"time"

	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"

	"golang.org/x/sync/errgroup"
)

// Aggregator builds statement summaries.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Aggregator{
		logger: logger.WithField(logging.FieldComponent, "aggregator"),
	}
}

// Summarize computes every statistic over txs. txs is only read. The first failing
// reduction cancels the others and its error is returned; an empty slice fails with
// a *parsererror.EmptyDatasetError.
func (a *Aggregator) Summarize(ctx context.Context, txs []models.Transaction) (*models.Summary, error) {
	start := time.Now()
	summary := &models.Summary{}

	g, ctx := errgroup.WithContext(ctx)
	run := func(name string, reduce func() error) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := reduce(); err != nil {
				a.logger.WithError(err).Debug("Reduction failed",
					logging.Field{Key: logging.FieldOperation, Value: name})
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}

	run("intro", func() (err error) {
		summary.Intro, err = Intro(txs)
		return err
	})
	run("top_categories", func() (err error) {
		summary.TopCategories, err = CategoryShare(txs)
		return err
	})
	run("days_of_week_spend", func() (err error) {
		summary.DaysOfWeekSpend, err = DayOfWeekSpend(txs)
		return err
	})
	run("num_places_spent", func() (err error) {
		summary.NumPlacesSpent, err = DistinctPlaces(txs)
		return err
	})
	run("top_freq_places", func() (err error) {
		summary.TopFreqPlaces, err = TopFrequencyPlaces(txs)
		return err
	})
	run("top_date_and_amt", func() (err error) {
		summary.TopDateAndAmount, err = PeakSpendDate(txs)
		return err
	})
	run("top_spend_places", func() (err error) {
		summary.TopSpendPlaces, err = TopSpendPlaces(txs)
		return err
	})

	if err := g.Wait(); err != nil {
		a.logger.WithError(err).Error("Failed to summarize transactions",
			logging.Field{Key: logging.FieldCount, Value: len(txs)})
		return nil, err
	}

	a.logger.Info("Summarized transactions",
		logging.Field{Key: logging.FieldCount, Value: len(txs)},
		logging.Field{Key: "places", Value: summary.NumPlacesSpent},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	return summary, nil
}
