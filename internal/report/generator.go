// Package report renders statement summaries.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultIndent is the JSON indentation used when none is configured.
const DefaultIndent = 4

// ReportGenerator renders a summary as JSON or YAML.
type ReportGenerator struct {
	logger logging.Logger
	indent int
}

// NewReportGenerator creates a new instance of ReportGenerator. indent is the number
// of spaces per nesting level; 0 renders compact JSON.
func NewReportGenerator(logger logging.Logger, indent int) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if indent < 0 {
		indent = DefaultIndent
	}
	return &ReportGenerator{
		logger: logger.WithField(logging.FieldComponent, "report"),
		indent: indent,
	}
}

// GenerateReport renders summary in the given format ("json" or "yaml", case-insensitive).
func (g *ReportGenerator) GenerateReport(summary *models.Summary, format string) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("no summary to render")
	}
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.generateJSONReport(summary)
	case FormatYAML:
		return g.generateYAMLReport(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteReport renders summary and writes it to w followed by a newline.
func (g *ReportGenerator) WriteReport(w io.Writer, summary *models.Summary, format string) error {
	data, err := g.GenerateReport(summary, format)
	if err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s report: %w", format, err)
	}
	g.logger.Debug("Report written",
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: "bytes", Value: len(data)})
	return nil
}

func (g *ReportGenerator) generateJSONReport(summary *models.Summary) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if g.indent == 0 {
		data, err = json.Marshal(summary)
	} else {
		data, err = json.MarshalIndent(summary, "", strings.Repeat(" ", g.indent))
	}
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *ReportGenerator) generateYAMLReport(summary *models.Summary) ([]byte, error) {
	indent := g.indent
	if indent < 2 {
		indent = 2
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(summary); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return buf.Bytes(), nil
}
