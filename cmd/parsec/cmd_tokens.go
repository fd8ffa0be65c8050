package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/posmap"
	"github.com/npillmayer/parsec/scan"
	"github.com/npillmayer/parsec/terms"
	"github.com/npillmayer/parsec/tokens"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newTokensCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a source file",
		Long: `Split a source file into tokens and print them as a table.

Words, numbers, string and character literals are recognized, as well as
the keywords and operators from the configuration. Comments in C style
(// and /* */) are skipped. If no file or "-" is given, the source is read
from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			module := "stdin"
			if len(args) == 0 || args[0] == "-" {
				source, err = io.ReadAll(cmd.InOrStdin())
			} else {
				module = args[0]
				source, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return printTokens(cmd.OutOrStdout(), string(source), opts.terms(), opts.parseOptions(module))
		},
	}
	return cmd
}

// sourceLexer creates a lexer for C-like sources.
func sourceLexer(t *terms.Terms) parsec.Parser[[]parsec.Tok] {
	delim := scan.Delimiter(scan.JavaLineCommentPattern, scan.BlockCommentPattern("/*", "*/"))
	lexer := parsec.Plus(
		t.Words(scan.Identifier()),
		parsec.Lex(scan.HexNumber(), tokens.TokenizeInteger, "integer"),
		parsec.Lex(scan.Decimal(), numberTokenizer, "number"),
		parsec.Lex(scan.QuotedString('"', '\\'), tokens.TokenizeString, "string literal"),
		parsec.Lex(scan.QuotedChar(), tokens.TokenizeChar, "character literal"),
		t.Operators(),
	)
	return parsec.Lexeme(delim, lexer)
}

// numberTokenizer creates integers where possible and decimals otherwise.
func numberTokenizer(src []rune, from, n int) (interface{}, bool) {
	if tok, ok := tokens.TokenizeInteger(src, from, n); ok {
		return tok, true
	}
	return tokens.TokenizeDecimal(src, from, n)
}

func kindOf(tok interface{}) string {
	switch tok.(type) {
	case tokens.Reserved:
		return "reserved"
	case tokens.Word:
		return "word"
	case tokens.Integer:
		return "integer"
	case tokens.Decimal:
		return "decimal"
	case tokens.Quoted:
		return "string"
	case tokens.Char:
		return "char"
	}
	return fmt.Sprintf("%T", tok)
}

func printTokens(w io.Writer, source string, t *terms.Terms, opts []parsec.Option) error {
	pm := posmap.ForSource([]rune(source))
	toks, err := parsec.Parse(sourceLexer(t), source, append(opts, parsec.PositionMap(pm))...)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Line", "Column", "Kind", "Token"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for _, tok := range toks {
		pos := pm.Pos(tok.Index)
		table.Append([]string{
			fmt.Sprint(pos.Line), fmt.Sprint(pos.Column),
			kindOf(tok.Token), tokens.ShowToken(tok.Token),
		})
	}
	table.Render()
	return nil
}
