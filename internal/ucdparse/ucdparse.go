/*
Package ucdparse provides a parser for Unicode Character Database files.

The format of UCD files is defined in http://www.unicode.org/reports/tr44/.
See http://www.unicode.org/Public/UCD/latest/ucd/ for example files. Data
lines consist of a code point or code point range and fields separated by
semicolons, optionally followed by a comment:

	0041..005A    ; Lu # [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z

The parser is a parsec grammar and an example of a line-oriented,
character-level grammar.
*/
package ucdparse

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/pattern"
	"github.com/npillmayer/parsec/posmap"
)

// Item is a data line of a UCD file.
type Item struct {
	Line     int      // line number, starting at 1
	From, To rune     // code point range; From == To for single code points
	Fields   []string // fields following the code point(s), trimmed
	Comment  string   // trailing comment, without '#'
	index    int
}

func (it *Item) String() string {
	return fmt.Sprintf("item[line %d %#U..%#U %#v]", it.Line, it.From, it.To, it.Fields)
}

// Field gets field #i (1…n) of the item.
func (it *Item) Field(i int) string {
	if i > 0 && i <= len(it.Fields) {
		return it.Fields[i-1]
	}
	return ""
}

// Range gets the code point range of the item.
func (it *Item) Range() (from, to rune) {
	return it.From, it.To
}

// --- Grammar ---------------------------------------------------------------

var document = func() parsec.Parser[[]*Item] {
	blanks := parsec.IsPattern("blank", pattern.Many(pattern.Among(" \t\r")))
	codepoint := parsec.MapErr(parsec.IsPattern("code point", pattern.Many1(pattern.IsHexDigit)),
		func(hex string) (rune, error) {
			n, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || n > 0x10FFFF {
				return 0, fmt.Errorf("code point %s out of range", hex)
			}
			return rune(n), nil
		})
	codeRange := parsec.Seq2(codepoint, parsec.Optional(parsec.Right(parsec.IsString(".."), codepoint), -1),
		func(from, to rune) [2]rune {
			if to < 0 {
				to = from
			}
			return [2]rune{from, to}
		})
	field := parsec.Map(parsec.IsPattern("field", pattern.Many(pattern.NotAmong(";#\n"))), strings.TrimSpace)
	fields := parsec.Many(parsec.Right(parsec.IsChar(';'), field))
	comment := parsec.Map(parsec.IsPattern("comment", pattern.Seq(
		pattern.Char(pattern.IsChar('#')),
		pattern.Many(pattern.NotChar('\n')),
	)), func(c string) string {
		return strings.TrimSpace(c[1:])
	})
	item := parsec.Seq4(parsec.GetIndex(), parsec.Left(codeRange, blanks), fields, parsec.Optional(comment, ""),
		func(idx int, r [2]rune, fs []string, c string) *Item {
			return &Item{From: r[0], To: r[1], Fields: fs, Comment: c, index: idx}
		})
	lineEnd := parsec.Plus(parsec.Discard(parsec.IsChar('\n')), parsec.EOF()).Label("end of line")
	line := parsec.Left(parsec.Right(blanks, parsec.Plus(
		item,
		parsec.Const(comment, (*Item)(nil)),
		parsec.Return((*Item)(nil)),
	)), lineEnd).Named("line")
	return parsec.Map(parsec.Many(line), func(items []*Item) []*Item {
		data := items[:0]
		for _, it := range items {
			if it != nil {
				data = append(data, it)
			}
		}
		return data
	})
}()

// Parse reads a UCD file and calls f for each data line.
func Parse(r io.Reader, f func(*Item)) error {
	return ParseModule(r, "ucd", f)
}

// ParseModule is like Parse, naming the input module in diagnostics.
func ParseModule(r io.Reader, module string, f func(*Item)) error {
	if r == nil {
		return fmt.Errorf("ucdparse: no input present")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("ucdparse: reading %s: %w", module, err)
	}
	src := string(b)
	pm := posmap.ForSource([]rune(src))
	items, err := parsec.Parse(document, src, parsec.Module(module), parsec.PositionMap(pm))
	if err != nil {
		return fmt.Errorf("ucdparse: %w", err)
	}
	for _, it := range items {
		it.Line = pm.Pos(it.index).Line
		f(it)
	}
	return nil
}
