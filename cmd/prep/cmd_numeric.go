package main

import (
	"github.com/sartorproj/goprep/dataset"
	"github.com/sartorproj/goprep/preprocess"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// numericInput holds the flags selecting where numbers come from.
type numericInput struct {
	values string
	file   string
	column string
}

func (in *numericInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.values, "values", "", "Comma-separated list of numbers")
	cmd.Flags().StringVar(&in.file, "file", "", "CSV file to read numbers from instead of --values")
	cmd.Flags().StringVar(&in.column, "column", "", "CSV header name of the column to read (default: last column)")
	cmd.MarkFlagsOneRequired("values", "file")
	cmd.MarkFlagsMutuallyExclusive("values", "file")
}

// tokens returns the raw input tokens, from --file when given.
// Missing CSV cells are skipped.
func (a *app) tokens(in *numericInput) ([]string, error) {
	if in.file == "" {
		return dataset.SplitTokens(in.values), nil
	}

	opts := dataset.DefaultCSVOptions()
	opts.Column = in.column
	opts.HasHeader = a.cfg.CSV.HasHeader
	opts.Delimiter = a.cfg.CSV.DelimiterRune()
	opts.NAValues = a.cfg.CSV.NAValues

	cells, err := dataset.LoadColumnFile(in.file, opts)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(cells))
	for _, c := range cells {
		if !dataset.IsMissingToken(c) {
			tokens = append(tokens, c)
		}
	}
	a.logger.Debug("loaded CSV column",
		zap.String("file", in.file),
		zap.String("column", in.column),
		zap.Int("rows", len(cells)),
		zap.Int("skipped", len(cells)-len(tokens)),
	)
	if len(tokens) == 0 {
		return nil, dataset.ErrNoData
	}
	return tokens, nil
}

// floats returns the parsed numeric input.
func (a *app) floats(in *numericInput) ([]float64, error) {
	tokens, err := a.tokens(in)
	if err != nil {
		return nil, err
	}
	return dataset.ParseFloats(tokens)
}

func (a *app) numericCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numeric",
		Short: "Commands for numeric transformations",
	}
	cmd.AddCommand(
		a.normalizeCmd(),
		a.standardizeCmd(),
		a.clipCmd(),
		a.toIntCmd(),
		a.logTransformCmd(),
		a.describeCmd(),
	)
	return cmd
}

func (a *app) normalizeCmd() *cobra.Command {
	var in numericInput
	var newMin, newMax float64
	cmd := &cobra.Command{
		Use:     "normalize",
		Short:   "Normalize numerical values using min-max scaling",
		Example: "  prep numeric normalize --values '1,2,3' --new-min 0 --new-max 1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("new-min") {
				newMin = a.cfg.Normalize.NewMin
			}
			if !cmd.Flags().Changed("new-max") {
				newMax = a.cfg.Normalize.NewMax
			}
			values, err := a.floats(&in)
			if err != nil {
				return err
			}
			a.logger.Debug("normalizing",
				zap.Int("count", len(values)),
				zap.Float64("new_min", newMin),
				zap.Float64("new_max", newMax),
			)
			return printResult(cmd.OutOrStdout(), a.cfg.Output, preprocess.Normalize(values, newMin, newMax))
		},
	}
	in.register(cmd)
	cmd.Flags().Float64Var(&newMin, "new-min", 0.0, "New minimum value")
	cmd.Flags().Float64Var(&newMax, "new-max", 1.0, "New maximum value")
	return cmd
}

func (a *app) standardizeCmd() *cobra.Command {
	var in numericInput
	cmd := &cobra.Command{
		Use:     "standardize",
		Short:   "Standardize numerical values using z-score",
		Example: "  prep numeric standardize --values '1,2,3'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.floats(&in)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), a.cfg.Output, preprocess.Standardize(values))
		},
	}
	in.register(cmd)
	return cmd
}

func (a *app) clipCmd() *cobra.Command {
	var in numericInput
	var minValue, maxValue float64
	cmd := &cobra.Command{
		Use:     "clip",
		Short:   "Clip numerical values to a range",
		Example: "  prep numeric clip --values '1,5,10' --min-value 2 --max-value 8",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min-value") {
				minValue = a.cfg.Clip.MinValue
			}
			if !cmd.Flags().Changed("max-value") {
				maxValue = a.cfg.Clip.MaxValue
			}
			values, err := a.floats(&in)
			if err != nil {
				return err
			}
			if minValue > maxValue {
				a.logger.Warn("clip bounds are inverted; every value becomes min-value",
					zap.Float64("min_value", minValue),
					zap.Float64("max_value", maxValue),
				)
			}
			return printResult(cmd.OutOrStdout(), a.cfg.Output, preprocess.Clip(values, minValue, maxValue))
		},
	}
	in.register(cmd)
	cmd.Flags().Float64Var(&minValue, "min-value", 0.0, "Minimum clip value")
	cmd.Flags().Float64Var(&maxValue, "max-value", 1.0, "Maximum clip value")
	return cmd
}

func (a *app) toIntCmd() *cobra.Command {
	var in numericInput
	cmd := &cobra.Command{
		Use:     "to-int",
		Short:   "Convert strings to integers, skipping invalid entries",
		Example: "  prep numeric to-int --values '1,2,3,a'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := a.tokens(&in)
			if err != nil {
				return err
			}
			result := preprocess.ConvertToInt(tokens)
			a.logger.Debug("converted to integers",
				zap.Int("input", len(tokens)),
				zap.Int("dropped", len(tokens)-len(result)),
			)
			return printResult(cmd.OutOrStdout(), a.cfg.Output, result)
		},
	}
	in.register(cmd)
	return cmd
}

func (a *app) logTransformCmd() *cobra.Command {
	var in numericInput
	cmd := &cobra.Command{
		Use:     "log-transform",
		Aliases: []string{"log"},
		Short:   "Apply a natural log transformation, dropping non-positive values",
		Example: "  prep numeric log-transform --values '1,10,100'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.floats(&in)
			if err != nil {
				return err
			}
			result := preprocess.LogTransform(values)
			a.logger.Debug("log transformed",
				zap.Int("input", len(values)),
				zap.Int("dropped", len(values)-len(result)),
			)
			return printResult(cmd.OutOrStdout(), a.cfg.Output, result)
		},
	}
	in.register(cmd)
	return cmd
}

func (a *app) describeCmd() *cobra.Command {
	var in numericInput
	cmd := &cobra.Command{
		Use:     "describe",
		Short:   "Print count, mean, population std, min, max and median",
		Example: "  prep numeric describe --file data.csv --column price",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.floats(&in)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), a.cfg.Output, preprocess.Describe(values))
		},
	}
	in.register(cmd)
	return cmd
}
