// Package models defines the data structures shared by the loader, the normalizer and
// the aggregator.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentsCategory is the category label that marks card payments and credits.
// Rows carrying it are not spending and never reach the aggregator.
const PaymentsCategory = "Payments and Credits"

// Transaction is a canonical statement row: a parsed date, a cleaned merchant
// description, the category label and a decimal amount.
type Transaction struct {
	Date        time.Time       `json:"date" yaml:"date"`
	Description string          `json:"description" yaml:"description"`
	Category    string          `json:"category" yaml:"category"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
}

// Day returns the transaction date truncated to midnight UTC, used as a grouping key.
func (t Transaction) Day() time.Time {
	y, m, d := t.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
