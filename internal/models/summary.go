package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Summary is the result record produced for one statement.
type Summary struct {
	Intro            string          `json:"intro" yaml:"intro"`
	TopCategories    []CategoryShare `json:"top_categories" yaml:"top_categories"`
	DaysOfWeekSpend  []DaySpend      `json:"days_of_week_spend" yaml:"days_of_week_spend"`
	NumPlacesSpent   int             `json:"num_places_spent" yaml:"num_places_spent"`
	TopFreqPlaces    []PlaceCount    `json:"top_freq_places" yaml:"top_freq_places"`
	TopDateAndAmount DateAmount      `json:"top_date_and_amt" yaml:"top_date_and_amt"`
	TopSpendPlaces   []PlaceSpend    `json:"top_spend_places" yaml:"top_spend_places"`
}

// CategoryShare is a category and its integer share of total spend, encoded as
// a [category, percent] pair.
type CategoryShare struct {
	Category string
	Percent  int64
}

// DaySpend is the total spend for one weekday.
type DaySpend struct {
	Day    string
	Amount decimal.Decimal
}

// PlaceCount is a merchant and its number of transactions, encoded as a pair.
type PlaceCount struct {
	Description string
	Count       int
}

// PlaceSpend is a merchant and its formatted total spend, encoded as a pair.
type PlaceSpend struct {
	Description string
	Amount      string
}

// DateAmount is a formatted date and formatted amount, encoded as a pair.
type DateAmount struct {
	Date   string
	Amount string
}

func (c CategoryShare) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{c.Category, c.Percent})
}

func (c *CategoryShare) UnmarshalJSON(data []byte) error {
	return unmarshalPair(data, &c.Category, &c.Percent)
}

func (c CategoryShare) MarshalYAML() (interface{}, error) {
	return []interface{}{c.Category, c.Percent}, nil
}

// dayAmount keeps the amount a JSON number rather than decimal's quoted string.
type dayAmount struct {
	Day    string      `json:"day"`
	Amount json.Number `json:"amount"`
}

func (d DaySpend) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayAmount{Day: d.Day, Amount: json.Number(d.Amount.String())})
}

func (d *DaySpend) UnmarshalJSON(data []byte) error {
	var raw dayAmount
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw.Amount.String())
	if err != nil {
		return fmt.Errorf("invalid day amount %q: %w", raw.Amount, err)
	}
	d.Day = raw.Day
	d.Amount = amount
	return nil
}

func (d DaySpend) MarshalYAML() (interface{}, error) {
	return struct {
		Day    string  `yaml:"day"`
		Amount float64 `yaml:"amount"`
	}{Day: d.Day, Amount: d.Amount.InexactFloat64()}, nil
}

func (p PlaceCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{p.Description, p.Count})
}

func (p *PlaceCount) UnmarshalJSON(data []byte) error {
	return unmarshalPair(data, &p.Description, &p.Count)
}

func (p PlaceCount) MarshalYAML() (interface{}, error) {
	return []interface{}{p.Description, p.Count}, nil
}

func (p PlaceSpend) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Description, p.Amount})
}

func (p *PlaceSpend) UnmarshalJSON(data []byte) error {
	return unmarshalPair(data, &p.Description, &p.Amount)
}

func (p PlaceSpend) MarshalYAML() (interface{}, error) {
	return []string{p.Description, p.Amount}, nil
}

func (d DateAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{d.Date, d.Amount})
}

func (d *DateAmount) UnmarshalJSON(data []byte) error {
	return unmarshalPair(data, &d.Date, &d.Amount)
}

func (d DateAmount) MarshalYAML() (interface{}, error) {
	return []string{d.Date, d.Amount}, nil
}

func unmarshalPair(data []byte, first, second interface{}) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected a 2-element array, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], first); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], second)
}
