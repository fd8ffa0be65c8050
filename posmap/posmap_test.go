package posmap

import (
	"testing"
)

func TestPositionsSimple(t *testing.T) {
	pm := ForSource([]rune("ab\ncd"))
	cases := []struct {
		index int
		pos   Position
	}{
		{0, Position{1, 1}},
		{2, Position{1, 3}},
		{3, Position{2, 1}},
		{5, Position{2, 3}},
	}
	for _, c := range cases {
		if p := pm.Pos(c.index); p != c.pos {
			t.Errorf("expected position of index %d to be %v, is %v", c.index, c.pos, p)
		}
	}
}

func TestPositionsBackwards(t *testing.T) {
	src := []rune("line one\nline two\n\nline four")
	pm := ForSource(src)
	if p := pm.Pos(len(src)); p.Line != 4 || p.Column != 10 {
		t.Errorf("expected end position to be line 4, column 10, is %v", p)
	}
	if pm.Lines() != 4 {
		t.Errorf("expected 4 lines to be detected, have %d", pm.Lines())
	}
	// resolved by binary search, no re-scan
	if p := pm.Pos(18); p.Line != 3 || p.Column != 1 {
		t.Errorf("expected index 18 at line 3, column 1, is %v", p)
	}
	if p := pm.Pos(9); p.Line != 2 || p.Column != 1 {
		t.Errorf("expected index 9 at line 2, column 1, is %v", p)
	}
	if p := pm.Pos(4); p.Line != 1 || p.Column != 5 {
		t.Errorf("expected index 4 at line 1, column 5, is %v", p)
	}
}

func TestPositionsOffsets(t *testing.T) {
	pm := New([]rune("x;y;z"), 10, 0, ';')
	if l, c := pm.LineCol(0); l != 10 || c != 0 {
		t.Errorf("expected (10,0), have (%d,%d)", l, c)
	}
	if l, c := pm.LineCol(4); l != 12 || c != 1 {
		t.Errorf("expected (12,1), have (%d,%d)", l, c)
	}
	if l, c := pm.LineCol(99); l != 12 || c != 2 {
		t.Errorf("expected index beyond end to clamp to (12,2), have (%d,%d)", l, c)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if p.String() != "line 3, column 7" {
		t.Errorf("unexpected rendering of position: %q", p.String())
	}
}
