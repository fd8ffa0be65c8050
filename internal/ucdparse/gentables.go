package ucdparse

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// RangeTableCollector collects character ranges during iteration of UCD
// files, and later outputs them as Go source code or as a range table.
type RangeTableCollector struct {
	Cat    string // character category
	ranges [][2]rune
	lo, hi rune // low and high bound of current range
	open   bool // is lo…hi pending?
}

// Append a range of runes to a range table collector. A single character
// is denoted by l == r. Ranges have to be appended in ascending order.
func (rt *RangeTableCollector) Append(l, r rune) {
	if rt.open && l == rt.hi+1 {
		rt.hi = r // range extends previous range
		return
	}
	rt.flush()
	rt.lo, rt.hi, rt.open = l, r, true
}

func (rt *RangeTableCollector) flush() {
	if !rt.open {
		return
	}
	rt.ranges = append(rt.ranges, [2]rune{rt.lo, rt.hi})
	rt.open = false
}

// Ranges returns the collected ranges.
func (rt *RangeTableCollector) Ranges() [][2]rune {
	rt.flush()
	return rt.ranges
}

// Table creates a range table for the collected ranges.
func (rt *RangeTableCollector) Table() *unicode.RangeTable {
	t := &unicode.RangeTable{}
	for _, r := range rt.Ranges() {
		if r[1] <= 0xFFFF {
			t.R16 = append(t.R16, unicode.Range16{Lo: uint16(r[0]), Hi: uint16(r[1]), Stride: 1})
			if r[1] <= unicode.MaxLatin1 {
				t.LatinOffset++
			}
		} else {
			t.R32 = append(t.R32, unicode.Range32{Lo: uint32(r[0]), Hi: uint32(r[1]), Stride: 1})
		}
	}
	return rangetable.Merge(t)
}

// Output creates Go source code for a range table.
func (rt *RangeTableCollector) Output(w io.Writer) {
	t := rt.Table()
	fmt.Fprintf(w, "var _%s = &unicode.RangeTable{ // %d entries\n", rt.Cat, len(t.R16)+len(t.R32))
	if len(t.R16) > 0 {
		fmt.Fprintf(w, "\tR16: []unicode.Range16{\n")
		for _, r := range t.R16 {
			fmt.Fprintf(w, "\t\t{%#04x, %#04x, %d},\n", r.Lo, r.Hi, r.Stride)
		}
		fmt.Fprintf(w, "\t},\n")
	}
	if len(t.R32) > 0 {
		fmt.Fprintf(w, "\tR32: []unicode.Range32{\n")
		for _, r := range t.R32 {
			fmt.Fprintf(w, "\t\t{%#04x, %#04x, %d},\n", r.Lo, r.Hi, r.Stride)
		}
		fmt.Fprintf(w, "\t},\n")
	}
	if t.LatinOffset > 0 {
		fmt.Fprintf(w, "\tLatinOffset: %d,\n", t.LatinOffset)
	}
	fmt.Fprintf(w, "}\n\n")
}

// --- Collecting tables from UCD files --------------------------------------

// Collect reads a UCD file and collects the ranges of all items per value
// of field #fieldNo.
func Collect(r io.Reader, fieldNo int) (map[string]*RangeTableCollector, error) {
	tables := make(map[string]*RangeTableCollector)
	var items []*Item
	err := Parse(r, func(it *Item) {
		items = append(items, it)
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].From < items[j].From })
	for _, it := range items {
		cat := it.Field(fieldNo)
		c, found := tables[cat]
		if !found {
			c = &RangeTableCollector{Cat: cat}
			tables[cat] = c
		}
		c.Append(it.From, it.To)
	}
	return tables, nil
}

// GenerateTables writes Go source code for the range tables of all values
// of field #fieldNo, in lexical order of the values.
func GenerateTables(r io.Reader, fieldNo int, w io.Writer) error {
	tables, err := Collect(r, fieldNo)
	if err != nil {
		return err
	}
	cats := make([]string, 0, len(tables))
	for cat := range tables {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	var buf bytes.Buffer
	for _, cat := range cats {
		tables[cat].Output(&buf)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
