// Package normalizer maps a raw statement export onto canonical transactions.
package normalizer

import (
	"strings"

	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/currencyutils"
	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"
	"fjacquet/spend-summary/internal/textutils"
)

const parserName = "normalizer"

// Normalizer turns raw rows into canonical transactions. It never modifies its input.
type Normalizer struct {
	logger           logging.Logger
	cleaner          *textutils.Cleaner
	dateLayout       string
	excludedCategory string
}

// NewNormalizer creates a Normalizer. Empty settings fall back to the defaults:
// US dates, "Payments and Credits" excluded, the default connector words.
func NewNormalizer(logger logging.Logger, cfg config.NormalizerConfig, dateLayout string) *Normalizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if dateLayout == "" {
		dateLayout = dateutils.DateLayoutUS
	}
	excluded := cfg.ExcludedCategory
	if excluded == "" {
		excluded = models.PaymentsCategory
	}
	return &Normalizer{
		logger:           logger.WithField(logging.FieldComponent, parserName),
		cleaner:          textutils.NewCleaner(cfg.SmallWords),
		dateLayout:       dateLayout,
		excludedCategory: excluded,
	}
}

// schema records which header supplies the transaction date.
type schema struct {
	dateColumn string
}

func (s schema) date(row models.RawRow) string {
	if s.dateColumn == models.ColumnTransDate {
		return row.TransDate
	}
	return row.TransactionDate
}

// resolveSchema treats "Trans. Date" as the transaction date column and checks the
// other required columns. When both date headers exist, "Trans. Date" wins.
func resolveSchema(raw models.RawDataset) (schema, error) {
	var s schema
	switch {
	case raw.HasColumn(models.ColumnTransDate):
		s.dateColumn = models.ColumnTransDate
	case raw.HasColumn(models.ColumnTransactionDate):
		s.dateColumn = models.ColumnTransactionDate
	default:
		return s, &parsererror.MissingColumnError{Column: models.ColumnTransactionDate, Available: raw.Columns}
	}

	for _, col := range []string{models.ColumnDescription, models.ColumnCategory, models.ColumnAmount} {
		if !raw.HasColumn(col) {
			return s, &parsererror.MissingColumnError{Column: col, Available: raw.Columns}
		}
	}
	return s, nil
}

// Normalize resolves the schema, drops excluded-category rows, coerces amounts and
// dates, and cleans descriptions. Surviving rows keep their input order. The first
// amount or date that cannot be parsed aborts the call with a *parsererror.ParseError.
func (n *Normalizer) Normalize(raw models.RawDataset) ([]models.Transaction, error) {
	s, err := resolveSchema(raw)
	if err != nil {
		n.logger.WithError(err).Error("Statement schema is incomplete")
		return nil, err
	}

	out := make([]models.Transaction, 0, len(raw.Rows))
	dropped := 0
	for i, row := range raw.Rows {
		category := strings.TrimSpace(row.Category)
		if category == n.excludedCategory {
			dropped++
			continue
		}

		amount, err := currencyutils.ParseAmount(row.Amount)
		if err != nil {
			return nil, n.parseError(models.ColumnAmount, row.Amount, i+1, err)
		}

		dateValue := s.date(row)
		date, err := dateutils.ParseDate(dateValue, n.dateLayout)
		if err != nil {
			return nil, n.parseError(s.dateColumn, dateValue, i+1, err)
		}

		out = append(out, models.Transaction{
			Date:        date,
			Description: n.cleaner.Clean(row.Description),
			Category:    category,
			Amount:      amount,
		})
	}

	n.logger.Info("Normalized statement",
		logging.Field{Key: logging.FieldCount, Value: len(out)},
		logging.Field{Key: logging.FieldDropped, Value: dropped},
		logging.Field{Key: logging.FieldCategory, Value: n.excludedCategory},
		logging.Field{Key: logging.FieldColumn, Value: s.dateColumn})
	return out, nil
}

func (n *Normalizer) parseError(column, value string, row int, err error) error {
	parseErr := &parsererror.ParseError{
		Parser: parserName,
		Field:  column,
		Value:  value,
		Row:    row,
		Err:    err,
	}
	n.logger.WithError(err).Error("Failed to parse statement row",
		logging.Field{Key: logging.FieldRow, Value: row},
		logging.Field{Key: logging.FieldColumn, Value: column})
	return parseErr
}
