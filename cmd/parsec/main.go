// Command parsec is a small workbench for the parsec parser combinators.
//
//	parsec tokens [file]       print the tokens of a file (or stdin) as a table
//	parsec lambda <term>...    parse terms of the lambda calculus
//
// Keywords and operators for the tokens command are read from a config file
// (--config) or from environment variables PARSEC_KEYWORDS and
// PARSEC_OPERATORS.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:           "parsec",
		Short:         "A workbench for parser combinators",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file with keywords and operators")
	rootCmd.PersistentFlags().BoolVar(&opts.trace, "trace", false, "trace parsers active at runtime faults")
	rootCmd.PersistentFlags().StringVar(&opts.module, "module", "", "name of the input in diagnostics")
	rootCmd.AddCommand(newTokensCmd(opts))
	rootCmd.AddCommand(newLambdaCmd(opts))
	return rootCmd
}
