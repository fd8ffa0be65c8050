/*
Package posmap maps character indexes of a source text to line and column
numbers.

A PositionMap is bound to exactly one source. It scans the source lazily:
line breaks are discovered only as far as the largest index queried so far
and are memoized, so a parse which asks for positions in roughly ascending
order scans every character at most once. Indexes below the scanned frontier
are resolved by binary search over the memoized line breaks.

PositionMaps are not safe for concurrent use. Clients create one instance
per source and reuse it for the whole parse, including rendering of
diagnostics after the parse has finished.

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
package posmap

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// PositionMap translates character indexes into positions.
type PositionMap struct {
	src       []rune
	startLine int
	startCol  int
	lineBreak rune
	breaks    *arraylist.List // indexes of line breaks found so far, ascending
	scanned   int             // breaks contains all line breaks below this index
}

// New creates a PositionMap for src. Positions of the first line start at
// column startCol, lines are counted from startLine on. lineBreak is the
// only character considered to terminate a line.
func New(src []rune, startLine, startCol int, lineBreak rune) *PositionMap {
	return &PositionMap{
		src:       src,
		startLine: startLine,
		startCol:  startCol,
		lineBreak: lineBreak,
		breaks:    arraylist.New(),
	}
}

// ForSource creates a PositionMap for src with lines and columns counted
// from 1 and '\n' as line break.
func ForSource(src []rune) *PositionMap {
	return New(src, 1, 1, '\n')
}

// Source returns the source this map has been created for.
func (pm *PositionMap) Source() []rune {
	return pm.src
}

// Pos returns the position of the character at index. An index at or beyond
// the end of the source denotes the end-of-input position.
func (pm *PositionMap) Pos(index int) Position {
	if index < 0 {
		index = 0
	} else if index > len(pm.src) {
		index = len(pm.src)
	}
	if index > pm.scanned {
		pm.scanTo(index)
	}
	n := pm.breaksBefore(index)
	if n == 0 {
		return Position{Line: pm.startLine, Column: pm.startCol + index}
	}
	lastBreak := pm.breakAt(n - 1)
	return Position{Line: pm.startLine + n, Column: index - lastBreak}
}

// LineCol is a shortcut for Pos, returning line and column as a pair.
func (pm *PositionMap) LineCol(index int) (int, int) {
	p := pm.Pos(index)
	return p.Line, p.Column
}

// Lines returns the number of lines detected so far.
func (pm *PositionMap) Lines() int {
	return pm.breaks.Size() + 1
}

// scanTo extends the scanned frontier to index. pm.scanned only ever grows.
func (pm *PositionMap) scanTo(index int) {
	for i := pm.scanned; i < index; i++ {
		if pm.src[i] == pm.lineBreak {
			pm.breaks.Add(i)
		}
	}
	pm.scanned = index
}

// breaksBefore counts the memoized line breaks located before index.
func (pm *PositionMap) breaksBefore(index int) int {
	return sort.Search(pm.breaks.Size(), func(i int) bool {
		return pm.breakAt(i) >= index
	})
}

func (pm *PositionMap) breakAt(i int) int {
	v, _ := pm.breaks.Get(i)
	return v.(int)
}
