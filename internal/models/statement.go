package models

// Column headers recognised in a card statement export.
const (
	ColumnTransDate       = "Trans. Date"
	ColumnTransactionDate = "Transaction Date"
	ColumnPostDate        = "Post Date"
	ColumnDescription     = "Description"
	ColumnCategory        = "Category"
	ColumnAmount          = "Amount"
)

// RawRow is one undecoded line of a statement export.
// Both date headers are mapped; the normalizer decides which one applies.
type RawRow struct {
	TransDate       string `csv:"Trans. Date"`
	TransactionDate string `csv:"Transaction Date"`
	PostDate        string `csv:"Post Date"`
	Description     string `csv:"Description"`
	Category        string `csv:"Category"`
	Amount          string `csv:"Amount"`
}

// RawDataset is a statement export as read: its header and its rows in file order.
type RawDataset struct {
	Columns []string
	Rows    []RawRow
}

// HasColumn reports whether the header contains name.
func (d RawDataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}
