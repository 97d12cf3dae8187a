// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/container"
	"fjacquet/spend-summary/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	ConfigFile string
	LogLevel   string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "spend-summary",
		Short: "A CLI tool to summarize credit card statement exports.",
		Long: `spend-summary reads a credit card statement export (CSV), cleans up the
merchant descriptions and reports where and when the money went: spend by
category and weekday, favourite places, the most expensive day.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  initApp,
		PersistentPostRunE: closeApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// SharedFlags holds the persistent flag values.
	SharedFlags = CommonFlags{}

	appConfig    *config.Config
	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: search $HOME/.spend-summary, ./.spend-summary, .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level override (trace, debug, info, warn, error)")
}

// initApp loads the environment and configuration, then wires the container with a
// logger tagged by a fresh run identifier.
func initApp(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.InitializeConfigFromFile(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}

	runID := uuid.NewString()
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format).
		WithField(logging.FieldRunID, runID)

	c, err := container.NewContainerWithLogger(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	appConfig = cfg
	appContainer = c
	logger.Debug("Application initialized",
		logging.Field{Key: "command", Value: cmd.Name()})
	return nil
}

// closeApp releases the container once the command has run.
func closeApp(cmd *cobra.Command, args []string) error {
	if appContainer == nil {
		return nil
	}
	if err := appContainer.Close(); err != nil {
		return fmt.Errorf("failed to close application: %w", err)
	}
	appContainer = nil
	return nil
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

// GetContainer returns the container wired for the running command, or nil before
// the command starts.
func GetContainer() *container.Container {
	return appContainer
}
