package main

import (
	"fmt"
	"strconv"

	"github.com/sartorproj/goprep/dataset"
	"github.com/sartorproj/goprep/preprocess"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) cleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Commands for data cleaning operations",
	}
	cmd.AddCommand(a.removeMissingCmd(), a.fillMissingCmd(), a.uniqueCmd("clean", "unique"))
	return cmd
}

func (a *app) removeMissingCmd() *cobra.Command {
	var values string
	cmd := &cobra.Command{
		Use:     "remove-missing",
		Short:   "Remove missing values from a list",
		Example: "  prep clean remove-missing --values '1,2,,None,4'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := dataset.ParseMissing(values)
			result := preprocess.RemoveMissing(input)
			a.logger.Debug("removed missing values",
				zap.Int("input", len(input)),
				zap.Int("removed", len(input)-len(result)),
			)
			return printResult(cmd.OutOrStdout(), a.cfg.Output, result)
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "Comma-separated list of values")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

func (a *app) fillMissingCmd() *cobra.Command {
	var values, fill string
	cmd := &cobra.Command{
		Use:     "fill-missing",
		Short:   "Fill missing values in a list",
		Example: "  prep clean fill-missing --values '1,2,,None,4' --fill 0",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("fill") {
				fill = a.cfg.Fill
			}
			input := dataset.ParseMissing(values)
			result := preprocess.FillMissing(input, parseScalar(fill))
			a.logger.Debug("filled missing values",
				zap.Int("input", len(input)),
				zap.String("fill", fill),
			)
			return printResult(cmd.OutOrStdout(), a.cfg.Output, result)
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "Comma-separated list of values")
	cmd.Flags().StringVar(&fill, "fill", "0", "Value to fill missing entries")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

// uniqueCmd is shared by "clean unique" and "struct unique-struct".
func (a *app) uniqueCmd(parent, use string) *cobra.Command {
	var values string
	cmd := &cobra.Command{
		Use:     use,
		Short:   "Remove duplicate values (order not guaranteed)",
		Example: fmt.Sprintf("  prep %s %s --values '1,2,2,3'", parent, use),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := dataset.SplitTokens(values)
			result := preprocess.RemoveDuplicates(input)
			a.logger.Debug("removed duplicates",
				zap.Int("input", len(input)),
				zap.Int("distinct", len(result)),
			)
			return printResult(cmd.OutOrStdout(), a.cfg.Output, result)
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "Comma-separated list of values")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

// parseScalar interprets a fill value as an integer, then a float, and
// otherwise keeps it as a string.
func parseScalar(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
