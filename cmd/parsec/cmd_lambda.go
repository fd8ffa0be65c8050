package main

import (
	"fmt"

	"github.com/npillmayer/parsec/internal/lambda"
	"github.com/spf13/cobra"
)

func newLambdaCmd(opts *globalOptions) *cobra.Command {
	var showTokens bool
	cmd := &cobra.Command{
		Use:   "lambda <term>...",
		Short: "Parse terms of the untyped lambda calculus",
		Long: `Parse terms of the untyped lambda calculus and print them in
canonical form, e.g.

    parsec lambda '\x y. x (y z)'

Both '\' and 'λ' introduce an abstraction.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, arg := range args {
				popts := opts.parseOptions(fmt.Sprintf("arg%d", i+1))
				if showTokens {
					toks, err := lambda.Tokens(arg, popts...)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, toks)
				}
				term, err := lambda.Parse(arg, popts...)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, term)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showTokens, "tokens", "t", false, "print the tokens of each term")
	return cmd
}
