/*
Package parsec is a backtracking parser-combinator engine.

Description

Parsers are built by combining small parsers into larger ones with
combinator functions. A grammar is a tree of Parser values; parsing applies
this tree to a mutable State, depth-first, in a single goroutine.

	digits := parsec.Source(parsec.Many1(parsec.Satisfy("digit", pattern.IsDigit)))
	v, err := parsec.Parse(digits, "123", parsec.Module("example"))

Every application of a parser either succeeds, producing a typed result, or
fails, leaving a description of the failure in the state. Failures are
ordinary data, not Go errors: alternation combinators recover from them
locally. Only the top-level entry points Parse and ParseTokens convert the
final failure into an error, rendering it with module name, line and column.

Logical Steps and Backtracking

Each atomic terminal (a character, a pattern match, a token) counts as one
logical step. Alternation does not backtrack into arbitrary depth: Plus tries
its next alternative only if the failing alternative consumed fewer steps
than the lookahead budget, which is 1 by default. Lookahead raises the budget
for one level of nesting, Atomize lets a complex sub-parse count as a single
step and restores position completely on failure, and Or ignores the budget
altogether. Longest and Shortest try every alternative and keep the result
which went furthest (or least far).

Errors

Failures are merged by position: the error which got further into the input
wins; on equal positions the higher precedence wins; otherwise both are
kept and rendered together ("a or b expected"). Pseudo-exceptions, raised by
Raise and caught by Try, travel through the same error channel but are never
diluted by merging and are not recovered by alternation.

Two-Phase Parsing

Character-level grammars may produce tokens (type Tok) through lexers. Nested
feeds the tokens of a lexer into a token-level grammar, which runs in a child
state with its own cursor, reporting diagnostics in the index space of the
character source.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package parsec

import (
	"github.com/npillmayer/parsec/internal/tracing"
	schuko "github.com/npillmayer/schuko/tracing"
)

// tracer traces to the syntax tracer.
func tracer() schuko.Trace {
	return tracing.Syntax()
}

// Unit is the result type of parsers which produce no meaningful value.
type Unit struct{}

// DefaultLookahead is the lookahead budget of alternation combinators,
// measured in logical steps.
const DefaultLookahead = 1
