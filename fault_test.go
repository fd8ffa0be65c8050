package parsec

import (
	"errors"
	"testing"

	"github.com/npillmayer/parsec/internal/tracing"
)

func brokenGrammar() Parser[int] {
	broken := Map(IsChar('a').Named("letter"), func(rune) int {
		panic("mapping broke")
	}).Named("mapper")
	return Right(IsChar('x'), broken).Named("outer")
}

func TestFaultTrace(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	_, err := Parse(brokenGrammar(), "xa", Module("faulty"), TraceFaults(true))
	var ferr *FaultError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected fault error, got %v", err)
	}
	if ferr.Cause.Error() != "mapping broke" {
		t.Errorf("unexpected cause %v", ferr.Cause)
	}
	if len(ferr.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %v", ferr.Frames)
	}
	if ferr.Frames[0].Parser != "mapper" || ferr.Frames[1].Parser != "outer" {
		t.Errorf("expected frames [mapper outer], got %v", ferr.Frames)
	}
	if f := ferr.Frames[0]; f.Module != "faulty" || f.Index != 1 || f.Pos.Column != 2 {
		t.Errorf("unexpected innermost frame %+v", f)
	}
}

func TestFaultWithoutTrace(t *testing.T) {
	_, err := Parse(brokenGrammar(), "xa")
	var ferr *FaultError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected fault error, got %v", err)
	}
	if len(ferr.Frames) != 0 {
		t.Errorf("expected no frames without tracing, got %v", ferr.Frames)
	}
}

func TestFaultIsNotBacktracked(t *testing.T) {
	p := Plus(brokenGrammar(), Return(0))
	if _, err := Parse(p, "xa"); err == nil {
		t.Errorf("expected fault to pass alternation")
	} else if _, ok := err.(*FaultError); !ok {
		t.Errorf("expected fault error, got %T", err)
	}
}

func TestParseErrorFrames(t *testing.T) {
	yz := Right(IsChar('y'), IsChar('z')).Named("yz")
	p := Right(IsChar('x'), yz).Named("xyz")
	_, err := Parse(p, "xyq", TraceFaults(true))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if len(perr.Frames) != 3 {
		t.Fatalf("expected 3 frames, got %v", perr.Frames)
	}
	if f := perr.Frames[0]; f.Parser != "'z'" || f.Index != 2 || f.Pos.Column != 3 {
		t.Errorf("unexpected innermost frame %+v", f)
	}
	if perr.Frames[1].Parser != "yz" || perr.Frames[2].Parser != "xyz" {
		t.Errorf("expected frames ['z' yz xyz], got %v", perr.Frames)
	}
	_, err = Parse(p, "xyq")
	if !errors.As(err, &perr) || len(perr.Frames) != 1 || perr.Frames[0].Parser != "xyz" {
		t.Errorf("expected entry frame only without tracing, got %v", err)
	}
}
