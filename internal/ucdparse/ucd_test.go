package ucdparse

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/internal/testdata"
	"github.com/npillmayer/parsec/internal/tracing"
)

const sample = `# LineBreak-13.0.0.txt
# comment line

000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>
0020;SP           # Zs         SPACE
   0021 ; EX # Po  EXCLAMATION MARK
0022;QU
1F000..1F02B;ID   # So   [44] MAHJONG TILE EAST WIND..MAHJONG TILE BACK
`

func TestParseLine(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	var items []*Item
	err := Parse(strings.NewReader(sample), func(it *Item) {
		items = append(items, it)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items, have %d", len(items))
	}
	it := items[0]
	t.Logf("item = %v", it)
	if it.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", it.Field(1))
	}
	from, to := it.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if it.Line != 4 {
		t.Errorf("expected item on line 4, is on %d", it.Line)
	}
	if it.Comment != "Cc    [18] <control-000E>..<control-001F>" {
		t.Errorf("unexpected comment %q", it.Comment)
	}
	if it = items[2]; it.From != 0x21 || it.To != 0x21 || it.Field(1) != "EX" || it.Line != 6 {
		t.Errorf("unexpected single code point item %v", it)
	}
	if it = items[3]; it.Field(1) != "QU" || it.Comment != "" {
		t.Errorf("unexpected item without comment %v", it)
	}
}

func TestParseError(t *testing.T) {
	err := ParseModule(strings.NewReader("0020;SP\nXYZ;AL\n"), "broken.txt", func(*Item) {})
	var perr *parsec.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if perr.Module != "broken.txt" || perr.Line != 2 || perr.Column != 1 {
		t.Errorf("expected error at broken.txt:2:1, got %v", perr)
	}
	err = Parse(strings.NewReader("110000;XX\n"), func(*Item) {})
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("expected code point out of range, got %v", err)
	}
}

func TestCollectTables(t *testing.T) {
	tables, err := Collect(strings.NewReader(sample), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 5 {
		t.Errorf("expected 5 categories, have %d", len(tables))
	}
	id := tables["ID"].Table()
	if !unicode.Is(id, 0x1F010) || unicode.Is(id, 0x1F02C) {
		t.Errorf("range table for ID is wrong: %v", id)
	}
	var buf bytes.Buffer
	tables["CM"].Output(&buf)
	if src := buf.String(); !strings.HasPrefix(src, "var _CM = &unicode.RangeTable{") ||
		!strings.Contains(src, "1f, 1},") {
		t.Errorf("unexpected Go source:\n%s", buf.String())
	}
}

func TestAppendMergesAdjacentRanges(t *testing.T) {
	rt := &RangeTableCollector{Cat: "X"}
	rt.Append(0x41, 0x41)
	rt.Append(0x42, 0x45)
	rt.Append(0x50, 0x50)
	ranges := rt.Ranges()
	if len(ranges) != 2 || ranges[0] != [2]rune{0x41, 0x45} || ranges[1] != [2]rune{0x50, 0x50} {
		t.Errorf("unexpected ranges %v", ranges)
	}
}

func TestParseUCDFiles(t *testing.T) {
	for _, file := range []string{"LineBreak.txt", "EastAsianWidth.txt", "Scripts.txt"} {
		f, err := testdata.UCDFile(file)
		if err != nil {
			t.Skipf("UCD file %s not present, run go run download.go in internal/testdata", file)
		}
		cnt := 0
		err = ParseModule(f, file, func(*Item) { cnt++ })
		f.Close()
		if err != nil {
			t.Errorf("%s: %v", file, err)
		} else if cnt == 0 {
			t.Errorf("%s: no items found", file)
		}
	}
}
