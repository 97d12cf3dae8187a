// Package container provides dependency injection for the spend-summary application.
// It centralizes the creation and wiring of the pipeline components.
package container

import (
	"fmt"

	"fjacquet/spend-summary/internal/aggregator"
	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/normalizer"
	"fjacquet/spend-summary/internal/report"
	"fjacquet/spend-summary/internal/statementparser"
)

// Container holds the application dependencies. It is immutable after creation;
// components are reached through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	parser     *statementparser.Parser
	normalizer *normalizer.Normalizer
	aggregator *aggregator.Aggregator
	reporter   *report.ReportGenerator
}

// NewContainerWithLogger creates and wires all application dependencies around an
// existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	c := &Container{
		logger:     logger,
		config:     cfg,
		parser:     statementparser.NewParser(logger, cfg.CSV),
		normalizer: normalizer.NewNormalizer(logger, cfg.Normalizer, cfg.CSV.DateFormat),
		aggregator: aggregator.NewAggregator(logger),
		reporter:   report.NewReportGenerator(logger, cfg.Report.Indent),
	}

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldDelimiter, Value: cfg.CSV.Delimiter},
		logging.Field{Key: logging.FieldEncoding, Value: cfg.CSV.Encoding},
		logging.Field{Key: logging.FieldFormat, Value: cfg.Report.Format})
	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetParser returns the statement loader.
func (c *Container) GetParser() *statementparser.Parser {
	return c.parser
}

// GetNormalizer returns the row normalizer.
func (c *Container) GetNormalizer() *normalizer.Normalizer {
	return c.normalizer
}

// GetAggregator returns the summary aggregator.
func (c *Container) GetAggregator() *aggregator.Aggregator {
	return c.aggregator
}

// GetReportGenerator returns the summary renderer.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reporter
}

// Close releases container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
