// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/textutils"
	"fjacquet/spend-summary/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/net/html/charset"
)

// EnvPrefix prefixes every environment override, e.g. SPEND_LOG_LEVEL.
const EnvPrefix = "SPEND"

// Config represents the complete application configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	CSV        CSVConfig        `mapstructure:"csv" yaml:"csv"`
	Normalizer NormalizerConfig `mapstructure:"normalizer" yaml:"normalizer"`
	Report     ReportConfig     `mapstructure:"report" yaml:"report"`
}

// LogConfig controls the logger built by the container.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig describes the statement export.
type CSVConfig struct {
	Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
	Encoding   string `mapstructure:"encoding" yaml:"encoding"`
	DateFormat string `mapstructure:"date_format" yaml:"date_format"`
}

// NormalizerConfig holds the row filter and the title-casing table.
type NormalizerConfig struct {
	ExcludedCategory string   `mapstructure:"excluded_category" yaml:"excluded_category"`
	SmallWords       []string `mapstructure:"small_words" yaml:"small_words"`
}

// ReportConfig selects how the summary is written.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Indent int    `mapstructure:"indent" yaml:"indent"`
}

// DelimiterRune returns the configured CSV delimiter, or 0 when none is set.
func (c CSVConfig) DelimiterRune() rune {
	if c.Delimiter == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// InitializeConfigFromFile loads configuration from defaults, the config file and
// SPEND_* environment variables. An empty path searches for config.yaml in
// $HOME/.spend-summary, ./.spend-summary and . in turn; an explicit path must exist.
func InitializeConfigFromFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.spend-summary")
		v.AddConfigPath(".spend-summary")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.encoding", "utf-8")
	v.SetDefault("csv.date_format", dateutils.DateLayoutUS)

	v.SetDefault("normalizer.excluded_category", models.PaymentsCategory)
	v.SetDefault("normalizer.small_words", textutils.DefaultSmallWords)

	v.SetDefault("report.format", "json")
	v.SetDefault("report.indent", 4)
}

// Default returns the configuration used when nothing overrides the defaults.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		CSV: CSVConfig{
			Delimiter:  ",",
			Encoding:   "utf-8",
			DateFormat: dateutils.DateLayoutUS,
		},
		Normalizer: NormalizerConfig{
			ExcludedCategory: models.PaymentsCategory,
			SmallWords:       append([]string(nil), textutils.DefaultSmallWords...),
		},
		Report: ReportConfig{Format: "json", Indent: 4},
	}
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if enc, _ := charset.Lookup(config.CSV.Encoding); enc == nil {
		return fmt.Errorf("unknown CSV encoding: %s", config.CSV.Encoding)
	}

	if strings.TrimSpace(config.CSV.DateFormat) == "" {
		return fmt.Errorf("csv.date_format must not be empty")
	}

	if err := validation.IsValidOutputFormat(config.Report.Format); err != nil {
		return fmt.Errorf("invalid report format: %w", err)
	}

	if config.Report.Indent < 0 || config.Report.Indent > 8 {
		return fmt.Errorf("report.indent must be between 0 and 8, got: %d", config.Report.Indent)
	}

	return nil
}
