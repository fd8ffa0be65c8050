package parsec

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Accumulator collects the results of the iterations of a repetition into
// a single value.
type Accumulator[E, R any] interface {
	Add(E)
	Result() R
}

// Accumulatable creates a fresh accumulator for every application of a
// repetition.
type Accumulatable[E, R any] func() Accumulator[E, R]

// --- Slices ----------------------------------------------------------------

type sliceAcc[E any] struct {
	items []E
}

func (a *sliceAcc[E]) Add(e E)     { a.items = append(a.items, e) }
func (a *sliceAcc[E]) Result() []E { return a.items }

// SliceOf collects elements into a slice. An empty repetition results in a
// nil slice.
func SliceOf[E any]() Accumulatable[E, []E] {
	return func() Accumulator[E, []E] { return &sliceAcc[E]{} }
}

// --- Lists -----------------------------------------------------------------

type listAcc[E any] struct {
	list *arraylist.List
}

func (a *listAcc[E]) Add(e E)                 { a.list.Add(e) }
func (a *listAcc[E]) Result() *arraylist.List { return a.list }

// ListOf collects elements into an array list.
func ListOf[E any]() Accumulatable[E, *arraylist.List] {
	return func() Accumulator[E, *arraylist.List] {
		return &listAcc[E]{list: arraylist.New()}
	}
}

// --- Strings ---------------------------------------------------------------

type runesAcc struct {
	b strings.Builder
}

func (a *runesAcc) Add(r rune)     { a.b.WriteRune(r) }
func (a *runesAcc) Result() string { return a.b.String() }

// RunesOf collects runes into a string.
func RunesOf() Accumulatable[rune, string] {
	return func() Accumulator[rune, string] { return &runesAcc{} }
}

type stringsAcc struct {
	b     strings.Builder
	sep   string
	first bool
}

func (a *stringsAcc) Add(s string) {
	if !a.first {
		a.b.WriteString(a.sep)
	}
	a.first = false
	a.b.WriteString(s)
}

func (a *stringsAcc) Result() string { return a.b.String() }

// StringsOf concatenates strings, separated by sep.
func StringsOf(sep string) Accumulatable[string, string] {
	return func() Accumulator[string, string] {
		return &stringsAcc{sep: sep, first: true}
	}
}

// --- Reductions ------------------------------------------------------------

type countAcc[E any] struct {
	n int
}

func (a *countAcc[E]) Add(E)       { a.n++ }
func (a *countAcc[E]) Result() int { return a.n }

// Counting counts the elements.
func Counting[E any]() Accumulatable[E, int] {
	return func() Accumulator[E, int] { return &countAcc[E]{} }
}

type foldAcc[E, R any] struct {
	r R
	f func(R, E) R
}

func (a *foldAcc[E, R]) Add(e E)   { a.r = a.f(a.r, e) }
func (a *foldAcc[E, R]) Result() R { return a.r }

// Fold reduces the elements by f, starting with init.
func Fold[E, R any](init R, f func(R, E) R) Accumulatable[E, R] {
	return func() Accumulator[E, R] { return &foldAcc[E, R]{r: init, f: f} }
}
