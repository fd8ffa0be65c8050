/*
Package lambda is a two-phase grammar for terms of the untyped lambda
calculus:

	\x y. x (y z)
	λf.(λx.f (x x)) (λx.f (x x))

Abstractions extend as far to the right as possible, application associates
to the left. Both '\' and 'λ' introduce an abstraction; comments run from
'#' to the end of the line.
*/
package lambda

import (
	"strings"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/scan"
	"github.com/npillmayer/parsec/terms"
	"github.com/npillmayer/parsec/tokens"
)

// Term is a lambda term.
type Term interface {
	String() string
	isTerm()
}

// Var is a variable.
type Var struct {
	Name string
}

// Abs is an abstraction.
type Abs struct {
	Param string
	Body  Term
}

// App is an application.
type App struct {
	Fun, Arg Term
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

func (v Var) String() string { return v.Name }

func (a Abs) String() string {
	return `\` + a.Param + "." + a.Body.String()
}

func (a App) String() string {
	var b strings.Builder
	if _, ok := a.Fun.(Abs); ok {
		b.WriteString("(" + a.Fun.String() + ")")
	} else {
		b.WriteString(a.Fun.String())
	}
	b.WriteByte(' ')
	switch a.Arg.(type) {
	case Var:
		b.WriteString(a.Arg.String())
	default:
		b.WriteString("(" + a.Arg.String() + ")")
	}
	return b.String()
}

// Table is the table of reserved symbols of lambda terms.
var Table = terms.New(true, []string{`\`, "λ", ".", "(", ")"}, nil)

// Delimiter skips white space and comments.
var Delimiter = scan.Delimiter(scan.LineCommentPattern("#"))

// Lexer splits lambda terms into tokens. Symbols take precedence over
// words, as λ is a letter.
var Lexer = parsec.Lexeme(Delimiter, parsec.Plus(Table.Operators(), Table.Words(scan.Identifier())))

// Grammar is the token-level grammar of lambda terms.
var Grammar = func() parsec.Parser[Term] {
	term := parsec.NewRef[Term]("term")
	variable := parsec.Map(tokens.IsWord(), func(w tokens.Word) Term {
		return Var{Name: string(w)}
	})
	atom := parsec.Plus(
		variable,
		parsec.Between(Table.Token("("), term.Parser(), Table.Token(")")),
	).Named("atom")
	abs := parsec.Seq2(
		parsec.Right(Table.Token(`\`, "λ"), parsec.Many1(tokens.IsWord())),
		parsec.Right(Table.Token("."), term.Parser()),
		func(params []tokens.Word, body Term) Term {
			for i := len(params) - 1; i >= 0; i-- {
				body = Abs{Param: string(params[i]), Body: body}
			}
			return body
		}).Named("abstraction")
	juxtaposition := parsec.Right(parsec.Peek(atom), parsec.Return(func(f, a Term) Term {
		return App{Fun: f, Arg: a}
	}))
	app := parsec.Seq2(parsec.ChainL1(atom, juxtaposition), parsec.Optional(abs, nil),
		func(f Term, last Term) Term {
			if last == nil {
				return f
			}
			return App{Fun: f, Arg: last}
		}).Named("application")
	term.Set(parsec.Plus(abs, app))
	return term.Parser()
}()

// Parse parses a lambda term.
func Parse(input string, opts ...parsec.Option) (Term, error) {
	return parsec.Parse(parsec.From(Grammar, Lexer), input, opts...)
}

// Tokens splits input into tokens.
func Tokens(input string, opts ...parsec.Option) ([]parsec.Tok, error) {
	return parsec.Parse(Lexer, input, opts...)
}
