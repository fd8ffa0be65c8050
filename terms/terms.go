/*
Package terms builds keyword and operator tables for the lexers of two-phase
grammars.

A table knows a set of reserved names. From it, lexers are derived which
create tokens.Reserved values for reserved names and tokens.Word values for
all other words, and token-level parsers which match reserved names:

	t := terms.New(true, []string{"+", "->"}, []string{"if", "then", "else"})
	lexer := parsec.Lexeme(scan.Whitespaces(), t.Lexer(scan.Identifier()))
	cond := parsec.Right(t.Token("if"), expr)
*/
package terms

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/pattern"
	"github.com/npillmayer/parsec/tokens"
	"golang.org/x/text/cases"
)

// Terms is a table of reserved names. It is immutable once created.
type Terms struct {
	caseSensitive bool
	names         *treemap.Map // key → canonical name
	keywords      []string
	operators     []string // longest first
}

// New creates a table of operators and keywords. If caseSensitive is false,
// names are matched regardless of case.
func New(caseSensitive bool, operators []string, keywords []string) *Terms {
	t := &Terms{
		caseSensitive: caseSensitive,
		names:         treemap.NewWithStringComparator(),
		keywords:      append([]string(nil), keywords...),
		operators:     append([]string(nil), operators...),
	}
	for _, name := range operators {
		t.names.Put(t.key(name), name)
	}
	for _, name := range keywords {
		t.names.Put(t.key(name), name)
	}
	sort.SliceStable(t.operators, func(i, j int) bool {
		return len([]rune(t.operators[i])) > len([]rune(t.operators[j]))
	})
	return t
}

func (t *Terms) key(name string) string {
	if t.caseSensitive {
		return name
	}
	return cases.Fold().String(name)
}

// CaseSensitive reports whether names are matched respecting case.
func (t *Terms) CaseSensitive() bool { return t.caseSensitive }

// Lookup returns the reserved token for name.
func (t *Terms) Lookup(name string) (tokens.Reserved, bool) {
	if v, found := t.names.Get(t.key(name)); found {
		return tokens.Reserved(v.(string)), true
	}
	return "", false
}

// Names returns all reserved names in lexical order of their lookup keys.
func (t *Terms) Names() []string {
	names := make([]string, 0, t.names.Size())
	for _, v := range t.names.Values() {
		names = append(names, v.(string))
	}
	return names
}

// --- Lexers ----------------------------------------------------------------

// Operators returns a lexer for the operators of t. Of operators sharing a
// prefix, the longest one is matched.
func (t *Terms) Operators() parsec.Parser[parsec.Tok] {
	alts := make([]pattern.Pattern, len(t.operators))
	for i, op := range t.operators {
		if t.caseSensitive {
			alts[i] = pattern.String(op)
		} else {
			alts[i] = pattern.StringCI(op)
		}
	}
	scanner := parsec.IsPattern("operator", pattern.Or(alts...))
	return parsec.Lex(scanner, t.tokenizeReserved, "operator")
}

func (t *Terms) tokenizeReserved(src []rune, from, n int) (interface{}, bool) {
	if r, ok := t.Lookup(string(src[from : from+n])); ok {
		return r, true
	}
	return nil, false
}

func (t *Terms) tokenizeWord(src []rune, from, n int) (interface{}, bool) {
	text := string(src[from : from+n])
	if r, ok := t.Lookup(text); ok {
		return r, true
	}
	return tokens.Word(text), true
}

// Words returns a lexer for words recognized by scanner: keywords result in
// reserved tokens, all other words in word tokens.
func (t *Terms) Words(scanner parsec.Consumer) parsec.Parser[parsec.Tok] {
	return parsec.Lex(scanner, t.tokenizeWord, "word")
}

// Keywords returns a lexer for words recognized by scanner which accepts
// keywords only.
func (t *Terms) Keywords(scanner parsec.Consumer) parsec.Parser[parsec.Tok] {
	return parsec.Lex(scanner, t.tokenizeReserved, "keyword")
}

// Lexer returns a lexer for words and operators. Words are tried first.
func (t *Terms) Lexer(word parsec.Consumer) parsec.Parser[parsec.Tok] {
	if len(t.operators) == 0 {
		return t.Words(word)
	}
	return parsec.Plus(t.Words(word), t.Operators())
}

// --- Token-level parsers ---------------------------------------------------

// Token returns a token-level parser matching any of the reserved names.
// It panics if a name is not in the table.
func (t *Terms) Token(names ...string) parsec.Parser[tokens.Reserved] {
	if len(names) == 0 {
		panic("parsec/terms: no names given for token")
	}
	want := make(map[tokens.Reserved]bool, len(names))
	for _, name := range names {
		r, ok := t.Lookup(name)
		if !ok {
			panic(t.unknown(name))
		}
		want[r] = true
	}
	label := fmt.Sprintf("%q", names[0])
	if len(names) > 1 {
		label = fmt.Sprintf("one of %q", names)
	}
	return parsec.IsToken(func(tok parsec.Tok) (tokens.Reserved, bool) {
		r, ok := tok.Token.(tokens.Reserved)
		return r, ok && want[r]
	}, label)
}

// unknown creates an error message for an unknown name, suggesting the
// most similar reserved name.
func (t *Terms) unknown(name string) string {
	best, dist := "", -1
	for _, candidate := range t.Names() {
		d := levenshtein.ComputeDistance(t.key(name), t.key(candidate))
		if dist < 0 || d < dist {
			best, dist = candidate, d
		}
	}
	if dist < 0 || dist > len([]rune(name))/2+1 {
		return fmt.Sprintf("parsec/terms: unknown term %q", name)
	}
	return fmt.Sprintf("parsec/terms: unknown term %q, did you mean %q?", name, best)
}
