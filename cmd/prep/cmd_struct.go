package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/sartorproj/goprep/dataset"
	"github.com/sartorproj/goprep/listutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const invalidListMessage = "Invalid list format. Use e.g. '[[1,2],[3,4]]'."

func (a *app) structCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "struct",
		Short: "Commands for structural list operations",
	}
	cmd.AddCommand(a.shuffleCmd(), a.flattenCmd(), a.uniqueCmd("struct", "unique-struct"))
	return cmd
}

func (a *app) shuffleCmd() *cobra.Command {
	var values string
	var seed int64
	cmd := &cobra.Command{
		Use:     "shuffle",
		Short:   "Shuffle list values randomly",
		Example: "  prep struct shuffle --values '1,2,3' --seed 42",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var s uint64
			switch {
			case cmd.Flags().Changed("seed"):
				s = uint64(seed)
			case a.cfg.Shuffle.Seed != nil:
				s = uint64(*a.cfg.Shuffle.Seed)
			default:
				s = rand.Uint64()
			}
			a.logger.Debug("shuffling", zap.Uint64("seed", s))

			result := listutil.Shuffle(dataset.SplitTokens(values), listutil.NewRand(s))
			return printResult(cmd.OutOrStdout(), a.cfg.Output, result)
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "Comma-separated list of values")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducibility (default: random)")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

func (a *app) flattenCmd() *cobra.Command {
	var lists string
	cmd := &cobra.Command{
		Use:     "flatten",
		Short:   "Flatten a list of lists",
		Example: "  prep struct flatten --lists '[[1,2],[3,4]]'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nested, err := dataset.ParseNested(lists)
			if err != nil {
				a.logger.Debug("rejected nested list", zap.Error(err))
				_, err = fmt.Fprintln(cmd.OutOrStdout(), invalidListMessage)
				return err
			}
			return printResult(cmd.OutOrStdout(), a.cfg.Output, listutil.Flatten(nested))
		},
	}
	cmd.Flags().StringVar(&lists, "lists", "", "Literal list of lists, e.g. '[[1,2],[3,4]]'")
	_ = cmd.MarkFlagRequired("lists")
	return cmd
}
