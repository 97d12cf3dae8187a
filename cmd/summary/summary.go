// Package summary implements the command that summarizes a statement export
package summary

import (
	"context"
	"fmt"

	"fjacquet/spend-summary/cmd/common"
	"fjacquet/spend-summary/cmd/root"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/validation"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize a credit card statement export",
	Long: `Summarize a credit card statement export (CSV).

Payments and credits are left out. The report lists the share of spend per
category, the spend per weekday, the number of distinct places, the most
frequent and most expensive places and the day with the highest spend.`,
	Example: `  spend-summary summary -i statement.csv
  spend-summary summary -i statement.csv -o summary.yaml --format yaml`,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml (default from config)")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application is not initialized")
	}

	outputFormat := format
	if outputFormat == "" {
		outputFormat = root.GetConfig().Report.Format
	}

	if err := validation.IsValidInputFile(root.SharedFlags.Input); err != nil {
		return err
	}
	if err := validation.IsValidOutputFormat(outputFormat); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := c.GetLogger()
	logger.Info("Summary command called",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output})

	p := common.NewPipeline(c)
	p.Stdout = cmd.OutOrStdout()
	if err := p.ProcessFile(ctx, root.SharedFlags.Input, root.SharedFlags.Output, outputFormat); err != nil {
		logger.WithError(err).Error("Error summarizing statement")
		return err
	}
	return nil
}
