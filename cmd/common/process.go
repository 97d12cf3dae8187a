// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"fjacquet/spend-summary/internal/container"
	"fjacquet/spend-summary/internal/fileutils"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
)

// StatementLoader reads a statement export.
type StatementLoader interface {
	ParseFile(ctx context.Context, filePath string) (models.RawDataset, error)
}

// RowNormalizer maps raw rows onto canonical transactions.
type RowNormalizer interface {
	Normalize(raw models.RawDataset) ([]models.Transaction, error)
}

// Summarizer computes the statement statistics.
type Summarizer interface {
	Summarize(ctx context.Context, txs []models.Transaction) (*models.Summary, error)
}

// ReportWriter renders a summary.
type ReportWriter interface {
	WriteReport(w io.Writer, summary *models.Summary, format string) error
}

// Pipeline chains loading, normalization, aggregation and rendering.
type Pipeline struct {
	Loader     StatementLoader
	Normalizer RowNormalizer
	Summarizer Summarizer
	Writer     ReportWriter
	Logger     logging.Logger
	// Stdout receives the report when no output file is given.
	Stdout io.Writer
}

// NewPipeline builds a Pipeline from the container's components.
func NewPipeline(c *container.Container) *Pipeline {
	return &Pipeline{
		Loader:     c.GetParser(),
		Normalizer: c.GetNormalizer(),
		Summarizer: c.GetAggregator(),
		Writer:     c.GetReportGenerator(),
		Logger:     c.GetLogger(),
		Stdout:     os.Stdout,
	}
}

// Summarize loads inputFile and returns its summary.
func (p *Pipeline) Summarize(ctx context.Context, inputFile string) (*models.Summary, error) {
	raw, err := p.Loader.ParseFile(ctx, inputFile)
	if err != nil {
		return nil, fmt.Errorf("error loading statement: %w", err)
	}

	txs, err := p.Normalizer.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("error normalizing statement: %w", err)
	}

	summary, err := p.Summarizer.Summarize(ctx, txs)
	if err != nil {
		return nil, fmt.Errorf("error summarizing statement: %w", err)
	}
	return summary, nil
}

// ProcessFile summarizes inputFile and writes the report to outputFile, or to
// standard output when outputFile is empty or "-".
func (p *Pipeline) ProcessFile(ctx context.Context, inputFile, outputFile, format string) error {
	if inputFile == "" {
		return fmt.Errorf("an input file is required")
	}
	start := time.Now()
	log := p.Logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldFormat, Value: format})

	summary, err := p.Summarize(ctx, inputFile)
	if err != nil {
		return err
	}

	if fileutils.IsStdout(outputFile) {
		out := p.Stdout
		if out == nil {
			out = os.Stdout
		}
		if err := p.Writer.WriteReport(out, summary, format); err != nil {
			return err
		}
	} else {
		if err := p.writeFile(outputFile, summary, format); err != nil {
			return err
		}
	}

	log.Info("Statement summarized",
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	return nil
}

func (p *Pipeline) writeFile(outputFile string, summary *models.Summary, format string) (err error) {
	f, err := fileutils.CreateFile(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing output file: %w", closeErr)
		}
	}()
	return p.Writer.WriteReport(f, summary, format)
}
