package statementparser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const discoverExport = `Trans. Date,Post Date,Description,Amount,Category
01/01/2024,01/02/2024,TARGET 00034157091 ANN ARBOR MI,10.00,Merchandise
01/02/2024,01/03/2024,"AMAZON MKTPLACE
GOOGLE PAY",25.99,Merchandise
01/05/2024,01/05/2024,INTERNET PAYMENT - THANK YOU,-300.00,Payments and Credits
`

func newTestParser(cfg config.CSVConfig) *Parser {
	return NewParser(logging.NewMockLogger(), cfg)
}

func TestParse(t *testing.T) {
	p := newTestParser(config.Default().CSV)

	ds, err := p.Parse(context.Background(), strings.NewReader(discoverExport))
	require.NoError(t, err)

	assert.Equal(t, []string{"Trans. Date", "Post Date", "Description", "Amount", "Category"}, ds.Columns)
	require.Len(t, ds.Rows, 3)

	assert.Equal(t, models.RawRow{
		TransDate:   "01/01/2024",
		PostDate:    "01/02/2024",
		Description: "TARGET 00034157091 ANN ARBOR MI",
		Category:    "Merchandise",
		Amount:      "10.00",
	}, ds.Rows[0])
	assert.Equal(t, "AMAZON MKTPLACE\nGOOGLE PAY", ds.Rows[1].Description)
	assert.Equal(t, "Payments and Credits", ds.Rows[2].Category)
	assert.Empty(t, ds.Rows[0].TransactionDate)
}

func TestParse_TransactionDateHeader(t *testing.T) {
	p := newTestParser(config.Default().CSV)
	input := "Transaction Date,Description,Category,Amount\n03/04/2024,STARBUCKS,Dining,4.50\n"

	ds, err := p.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "03/04/2024", ds.Rows[0].TransactionDate)
	assert.True(t, ds.HasColumn(models.ColumnTransactionDate))
}

func TestParse_HeaderCleanup(t *testing.T) {
	p := newTestParser(config.Default().CSV)
	input := "\ufeffTrans. Date , Description,Category,Amount\n01/01/2024,X,Y,1\n"

	ds, err := p.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Trans. Date", "Description", "Category", "Amount"}, ds.Columns)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "01/01/2024", ds.Rows[0].TransDate)
}

func TestParse_CustomDelimiter(t *testing.T) {
	cfg := config.Default().CSV
	cfg.Delimiter = ";"
	p := newTestParser(cfg)
	input := "Trans. Date;Description;Category;Amount\n01/01/2024;CAFE, BAR;Dining;3.20\n"

	ds, err := p.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "CAFE, BAR", ds.Rows[0].Description)
}

func TestParse_Windows1252(t *testing.T) {
	cfg := config.Default().CSV
	cfg.Encoding = "windows-1252"
	p := newTestParser(cfg)
	// 0xE9 is "é" in windows-1252
	input := []byte("Trans. Date,Description,Category,Amount\n01/01/2024,CAF\xe9 RIO,Dining,3.20\n")

	ds, err := p.Parse(context.Background(), strings.NewReader(string(input)))
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "CAFé RIO", ds.Rows[0].Description)
}

func TestParse_UnknownEncoding(t *testing.T) {
	cfg := config.Default().CSV
	cfg.Encoding = "klingon"
	p := newTestParser(cfg)

	_, err := p.Parse(context.Background(), strings.NewReader("a,b\n"))
	assert.Error(t, err)
}

func TestParse_HeaderOnly(t *testing.T) {
	p := newTestParser(config.Default().CSV)

	ds, err := p.Parse(context.Background(), strings.NewReader("Trans. Date,Description,Category,Amount\n"))
	require.NoError(t, err)
	assert.Len(t, ds.Columns, 4)
	assert.Empty(t, ds.Rows)
}

func TestParse_EmptyInput(t *testing.T) {
	p := newTestParser(config.Default().CSV)

	_, err := p.Parse(context.Background(), strings.NewReader(""))
	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "no header row", formatErr.Msg)
}

func TestParse_MalformedQuotes(t *testing.T) {
	p := newTestParser(config.Default().CSV)

	_, err := p.Parse(context.Background(), strings.NewReader("\ufeffDescription,Amount\n\"unterminated,1\n"))
	var formatErr *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "unreadable CSV", formatErr.Msg)
	assert.Equal(t, "Description,Amount", formatErr.ActualContentSnippet)
	assert.Contains(t, err.Error(), "Content snippet: 'Description,Amount'")
}

func TestParse_CancelledContext(t *testing.T) {
	p := newTestParser(config.Default().CSV)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Parse(ctx, strings.NewReader(discoverExport))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFile(t *testing.T) {
	p := newTestParser(config.Default().CSV)
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(discoverExport), 0644))

	ds, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, ds.Rows, 3)
}

func TestParseFile_Errors(t *testing.T) {
	p := newTestParser(config.Default().CSV)

	t.Run("missing file", func(t *testing.T) {
		_, err := p.ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty file carries its path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := p.ParseFile(context.Background(), path)
		var formatErr *parsererror.InvalidFormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, path, formatErr.FilePath)
	})
}

func TestNewParser_Defaults(t *testing.T) {
	p := NewParser(nil, config.CSVConfig{})
	assert.Equal(t, ',', p.delimiter)
	assert.NotNil(t, p.logger)

	invalid := NewParser(nil, config.CSVConfig{Delimiter: "\xff"})
	assert.Equal(t, ',', invalid.delimiter)

	ds, err := p.Parse(context.Background(), strings.NewReader("Description,Amount\nTarget,1.00\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Description", "Amount"}, ds.Columns)
	require.Len(t, ds.Rows, 1)
}
