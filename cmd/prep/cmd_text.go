package main

import (
	"github.com/sartorproj/goprep/dataset"
	"github.com/sartorproj/goprep/text"
	"github.com/spf13/cobra"
)

func (a *app) textCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Commands for text processing",
	}
	cmd.AddCommand(a.tokenizeCmd(), a.cleanTextCmd(), a.removeStopwordsCmd())
	return cmd
}

func (a *app) tokenizeCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:     "tokenize",
		Short:   "Tokenize text into lowercase words",
		Example: "  prep text tokenize --input-text 'Hello World!'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), a.cfg.Output, text.Tokenize(input))
		},
	}
	cmd.Flags().StringVar(&input, "input-text", "", "Input text to tokenize")
	_ = cmd.MarkFlagRequired("input-text")
	return cmd
}

func (a *app) cleanTextCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:     "clean-text",
		Short:   "Keep only alphanumeric characters and spaces",
		Example: "  prep text clean-text --input-text 'Hello, World!!!'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd.OutOrStdout(), a.cfg.Output, text.KeepAlphanumericAndSpaces(input))
		},
	}
	cmd.Flags().StringVar(&input, "input-text", "", "Input text to clean")
	_ = cmd.MarkFlagRequired("input-text")
	return cmd
}

func (a *app) removeStopwordsCmd() *cobra.Command {
	var input, stopwords string
	cmd := &cobra.Command{
		Use:     "remove-stopwords",
		Short:   "Remove stopwords from text",
		Example: "  prep text remove-stopwords --input-text 'this is a test' --stopwords 'is,a'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := text.RemoveStopwords(input, dataset.SplitTokens(stopwords))
			return printResult(cmd.OutOrStdout(), a.cfg.Output, result)
		},
	}
	cmd.Flags().StringVar(&input, "input-text", "", "Input text to process")
	cmd.Flags().StringVar(&stopwords, "stopwords", "", "Comma-separated stopwords")
	_ = cmd.MarkFlagRequired("input-text")
	_ = cmd.MarkFlagRequired("stopwords")
	return cmd
}
