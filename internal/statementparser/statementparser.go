// Package statementparser reads a card statement CSV export into a raw dataset.
// It only decodes: column resolution, filtering and type coercion belong to the normalizer.
package statementparser

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"

	"github.com/gocarina/gocsv"
	"golang.org/x/net/html/charset"
)

const (
	expectedFormat = "delimited text with a header row"
	snippetLength  = 64
)

// Parser decodes statement exports.
type Parser struct {
	logger    logging.Logger
	delimiter rune
	encoding  string
}

// NewParser creates a Parser for the given CSV settings. A nil logger gets a default one.
func NewParser(logger logging.Logger, cfg config.CSVConfig) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	delimiter := cfg.DelimiterRune()
	if delimiter == 0 || delimiter == utf8.RuneError {
		delimiter = ','
	}
	return &Parser{
		logger:    logger.WithField(logging.FieldComponent, "statementparser"),
		delimiter: delimiter,
		encoding:  cfg.Encoding,
	}
}

// ParseFile opens filePath and parses it.
func (p *Parser) ParseFile(ctx context.Context, filePath string) (models.RawDataset, error) {
	p.logger.Info("Reading statement file", logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- path comes from the user's --input flag
	if err != nil {
		return models.RawDataset{}, fmt.Errorf("error opening statement file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	ds, err := p.Parse(ctx, file)
	if err != nil {
		var formatErr *parsererror.InvalidFormatError
		if errors.As(err, &formatErr) {
			formatErr.FilePath = filePath
		}
		return models.RawDataset{}, err
	}
	return ds, nil
}

// Parse reads a whole export from r. Header names are trimmed and a UTF-8 byte order
// mark is dropped; the rows are returned in file order.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (models.RawDataset, error) {
	if err := ctx.Err(); err != nil {
		return models.RawDataset{}, err
	}

	decoded, err := p.decode(r)
	if err != nil {
		return models.RawDataset{}, err
	}

	buffered := bufio.NewReader(decoded)
	snippet := firstLine(buffered)

	reader := csv.NewReader(buffered)
	reader.Comma = p.delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return models.RawDataset{}, &parsererror.InvalidFormatError{
			ExpectedFormat:       expectedFormat,
			ActualContentSnippet: snippet,
			Msg:                  "unreadable CSV",
			Err:                  err,
		}
	}
	if len(records) == 0 {
		return models.RawDataset{}, &parsererror.InvalidFormatError{
			ExpectedFormat: expectedFormat,
			Msg:            "no header row",
		}
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}
	records[0] = header

	ds := models.RawDataset{Columns: header}
	if len(records) > 1 {
		if err := gocsv.UnmarshalCSV(&recordReader{records: records}, &ds.Rows); err != nil {
			return models.RawDataset{}, &parsererror.InvalidFormatError{
				ExpectedFormat:       expectedFormat,
				ActualContentSnippet: snippet,
				Msg:                  "rows do not match the header",
				Err:                  err,
			}
		}
	}

	p.logger.Info("Read statement rows",
		logging.Field{Key: logging.FieldCount, Value: len(ds.Rows)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(p.delimiter)})
	return ds, nil
}

func (p *Parser) decode(r io.Reader) (io.Reader, error) {
	label := strings.ToLower(strings.TrimSpace(p.encoding))
	if label == "" || label == "utf-8" || label == "utf8" {
		return r, nil
	}
	decoded, err := charset.NewReaderLabel(label, r)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", p.encoding, err)
	}
	p.logger.Debug("Decoding statement", logging.Field{Key: logging.FieldEncoding, Value: label})
	return decoded, nil
}

// firstLine peeks at the start of the input without consuming it.
func firstLine(r *bufio.Reader) string {
	head, _ := r.Peek(snippetLength)
	line, _, _ := strings.Cut(string(head), "\n")
	return strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
}

// recordReader feeds already-read records to gocsv.
type recordReader struct {
	records [][]string
	pos     int
}

func (r *recordReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.pos]
	r.pos++
	return rec, nil
}

func (r *recordReader) ReadAll() ([][]string, error) {
	rest := r.records[r.pos:]
	r.pos = len(r.records)
	return rest, nil
}
