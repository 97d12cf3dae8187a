package aggregator

import (
	"fmt"
	"sort"
	"time"

	"fjacquet/spend-summary/internal/currencyutils"
	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"

	"github.com/shopspring/decimal"
)

const (
	// TopPlaces is the number of entries in the frequency and spend rankings.
	TopPlaces = 5
	// MaxCategories is the number of categories listed before the rest is folded into OtherCategory.
	MaxCategories = 4
	// OtherCategory labels the folded remainder of the category ranking.
	OtherCategory = "Other"
)

var hundred = decimal.NewFromInt(100)

func emptyDataset(operation string) error {
	return &parsererror.EmptyDatasetError{Operation: operation}
}

// sumBy adds up amounts per key. Keys are returned in order of first appearance.
func sumBy(txs []models.Transaction, key func(models.Transaction) string) ([]string, map[string]decimal.Decimal) {
	var order []string
	sums := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		k := key(tx)
		sum, seen := sums[k]
		if !seen {
			order = append(order, k)
		}
		sums[k] = sum.Add(tx.Amount)
	}
	return order, sums
}

func byCategory(tx models.Transaction) string    { return tx.Category }
func byDescription(tx models.Transaction) string { return tx.Description }

// CategoryShare returns each category's share of the total spend as a whole percentage,
// rounded half to even, highest first. Equal percentages are ordered by category name.
// With more than MaxCategories categories the rest is folded into a single OtherCategory
// entry holding the sum of their percentages. A zero total yields 0 for every category.
func CategoryShare(txs []models.Transaction) ([]models.CategoryShare, error) {
	if len(txs) == 0 {
		return nil, emptyDataset("category share")
	}

	categories, sums := sumBy(txs, byCategory)
	total := decimal.Zero
	for _, sum := range sums {
		total = total.Add(sum)
	}

	shares := make([]models.CategoryShare, 0, len(categories))
	for _, category := range categories {
		var percent int64
		if !total.IsZero() {
			percent = sums[category].Mul(hundred).Div(total).RoundBank(0).IntPart()
		}
		shares = append(shares, models.CategoryShare{Category: category, Percent: percent})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].Category < shares[j].Category
	})

	if len(shares) <= MaxCategories {
		return shares, nil
	}
	var other int64
	for _, share := range shares[MaxCategories:] {
		other += share.Percent
	}
	top := append([]models.CategoryShare(nil), shares[:MaxCategories]...)
	return append(top, models.CategoryShare{Category: OtherCategory, Percent: other}), nil
}

// DayOfWeekSpend returns the spend per weekday, Monday first. All seven days are
// present; days without transactions are zero. Sums are rounded to cents.
func DayOfWeekSpend(txs []models.Transaction) ([]models.DaySpend, error) {
	if len(txs) == 0 {
		return nil, emptyDataset("day of week spend")
	}

	var sums [7]decimal.Decimal
	for _, tx := range txs {
		i := dateutils.WeekdayIndex(tx.Date.Weekday())
		sums[i] = sums[i].Add(tx.Amount)
	}

	days := make([]models.DaySpend, 0, len(dateutils.MondayFirst))
	for i, weekday := range dateutils.MondayFirst {
		days = append(days, models.DaySpend{Day: weekday.String(), Amount: sums[i].Round(2)})
	}
	return days, nil
}

// DistinctPlaces counts the unique descriptions. An empty description is a place too.
func DistinctPlaces(txs []models.Transaction) (int, error) {
	if len(txs) == 0 {
		return 0, emptyDataset("distinct places")
	}

	seen := make(map[string]struct{})
	for _, tx := range txs {
		seen[tx.Description] = struct{}{}
	}
	return len(seen), nil
}

// TopFrequencyPlaces returns the TopPlaces most frequent descriptions with their
// transaction counts. Equal counts keep the order in which places first appear.
func TopFrequencyPlaces(txs []models.Transaction) ([]models.PlaceCount, error) {
	if len(txs) == 0 {
		return nil, emptyDataset("top frequency places")
	}

	var places []models.PlaceCount
	index := make(map[string]int)
	for _, tx := range txs {
		i, seen := index[tx.Description]
		if !seen {
			i = len(places)
			index[tx.Description] = i
			places = append(places, models.PlaceCount{Description: tx.Description})
		}
		places[i].Count++
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Count > places[j].Count
	})
	return limit(places, TopPlaces), nil
}

// PeakSpendDate returns the calendar day with the highest total spend. On a tie the
// earliest day wins.
func PeakSpendDate(txs []models.Transaction) (models.DateAmount, error) {
	if len(txs) == 0 {
		return models.DateAmount{}, emptyDataset("peak spend date")
	}

	sums := make(map[time.Time]decimal.Decimal)
	for _, tx := range txs {
		day := tx.Day()
		sums[day] = sums[day].Add(tx.Amount)
	}

	var (
		peakDay time.Time
		peak    decimal.Decimal
		found   bool
	)
	for day, sum := range sums {
		if !found || sum.GreaterThan(peak) || (sum.Equal(peak) && day.Before(peakDay)) {
			peakDay, peak, found = day, sum, true
		}
	}

	return models.DateAmount{
		Date:   dateutils.FormatLong(peakDay),
		Amount: currencyutils.FormatDollars(peak),
	}, nil
}

// TopSpendPlaces returns the TopPlaces descriptions with the highest total spend,
// formatted as dollars. Equal totals keep the order in which places first appear.
func TopSpendPlaces(txs []models.Transaction) ([]models.PlaceSpend, error) {
	if len(txs) == 0 {
		return nil, emptyDataset("top spend places")
	}

	places, sums := sumBy(txs, byDescription)
	sort.SliceStable(places, func(i, j int) bool {
		return sums[places[i]].GreaterThan(sums[places[j]])
	})

	places = limit(places, TopPlaces)
	out := make([]models.PlaceSpend, 0, len(places))
	for _, place := range places {
		out = append(out, models.PlaceSpend{
			Description: place,
			Amount:      currencyutils.FormatDollars(sums[place]),
		})
	}
	return out, nil
}

// DateRange returns the earliest and latest transaction days.
func DateRange(txs []models.Transaction) (time.Time, time.Time, error) {
	if len(txs) == 0 {
		return time.Time{}, time.Time{}, emptyDataset("date range")
	}

	first, last := txs[0].Day(), txs[0].Day()
	for _, tx := range txs[1:] {
		day := tx.Day()
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}
	return first, last, nil
}

// Intro returns the opening sentence naming the statement's date range.
func Intro(txs []models.Transaction) (string, error) {
	first, last, err := DateRange(txs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Here's how you spent from %s to %s.",
		dateutils.FormatLong(first), dateutils.FormatLong(last)), nil
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
