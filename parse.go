package parsec

import (
	"fmt"
	"strings"

	"github.com/npillmayer/parsec/posmap"
)

// Frame is an entry of a fault trace: the application of a named parser.
type Frame struct {
	Module string
	Index  int
	Pos    posmap.Position
	Parser string
}

func (f Frame) String() string {
	return fmt.Sprintf("%s at %s:%s", f.Parser, f.Module, f.Pos)
}

// ParseError is returned by Parse and ParseTokens if the input does not
// conform to the grammar.
//
// With fault tracing switched on, Frames holds the chain of parsers which
// were active when the error was found, innermost first. Otherwise it holds
// the entry parser only.
type ParseError struct {
	Module  string
	Line    int
	Column  int
	Index   int
	Message string
	Err     Error   // the best error found anywhere during the parse
	Frames  []Frame // parsers active at the error, innermost first
}

func (e *ParseError) Error() string {
	if e.Module == "" {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Module, e.Line, e.Column, e.Message)
}

// Unwrap returns the underlying parse failure.
func (e *ParseError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// FaultError is returned by Parse and ParseTokens if a collaborator, like a
// tokenizer or a mapping function, panics during the parse. Such faults are
// never recovered by grammar combinators.
//
// Frames lists the parsers active at the time of the fault, innermost
// first. It is complete only if fault tracing has been switched on; see
// TraceFaults.
type FaultError struct {
	Module string
	Index  int
	Pos    posmap.Position
	Cause  error
	Frames []Frame
}

func (e *FaultError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fault in %s at %s: %v", e.Module, e.Pos, e.Cause)
	for _, f := range e.Frames {
		b.WriteString("\n\tin ")
		b.WriteString(f.String())
	}
	return b.String()
}

// Unwrap returns the cause of the fault.
func (e *FaultError) Unwrap() error { return e.Cause }

// Status is the outcome of running a parser.
type Status int

// Outcomes of Run.
const (
	Succeeded Status = iota
	Failed
	Raised
)

func (st Status) String() string {
	switch st {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Raised:
		return "raised"
	}
	return fmt.Sprintf("Status(%d)", int(st))
}

// Reply is the result of Run. Value is valid if Status is Succeeded,
// Payload is valid if Status is Raised.
type Reply[T any] struct {
	Status  Status
	Value   T
	Err     Error
	Payload interface{}
}

// OK reports whether the parser succeeded.
func (r Reply[T]) OK() bool { return r.Status == Succeeded }

// NewState creates a character-level state for low-level use with Run.
func NewState(src string, opts ...Option) *State {
	s := &State{}
	s.initChars([]rune(src), newConfig(opts))
	return s
}

// NewTokenState creates a token-level state for low-level use with Run.
// endIndex is the index reported for end of input.
func NewTokenState(toks []Tok, endIndex int, opts ...Option) *State {
	s := &State{}
	s.initTokens(toks, endIndex, newConfig(opts))
	return s
}

// Run applies p to s. It does not require p to consume all input and it
// does not recover faults.
func Run[T any](p Parser[T], s *State) Reply[T] {
	v, ok := p.apply(s)
	if ok {
		return Reply[T]{Status: Succeeded, Value: v, Err: s.err}
	}
	if x, isx := s.err.(*ExceptionError); isx {
		return Reply[T]{Status: Raised, Err: s.err, Payload: x.Payload}
	}
	return Reply[T]{Status: Failed, Err: s.err}
}

// Parse applies p to src. p has to consume all of src.
//
// If src does not conform to p, a *ParseError is returned. If a collaborator
// panics, a *FaultError is returned.
func Parse[T any](p Parser[T], src string, opts ...Option) (T, error) {
	s := borrowState()
	defer s.releaseIntoPool()
	s.initChars([]rune(src), newConfig(opts))
	return parseAll(p, s)
}

// ParseTokens applies the token-level parser p to toks. endIndex is the
// index reported for end of input, show renders tokens and eofLabel
// describes end of input in diagnostics. pm may be nil, in which case
// positions are not reported.
func ParseTokens[T any](p Parser[T], toks []Tok, endIndex int, show ShowToken,
	eofLabel string, pm *posmap.PositionMap, opts ...Option) (T, error) {
	//
	cfg := newConfig(opts)
	if show != nil {
		cfg.show = show
	}
	if eofLabel != "" {
		cfg.eofLabel = eofLabel
	}
	if pm != nil {
		cfg.pm = pm
	}
	s := borrowState()
	defer s.releaseIntoPool()
	s.initTokens(toks, endIndex, cfg)
	return parseAll(p, s)
}

func parseAll[T any](p Parser[T], s *State) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = s.fault(r)
		}
	}()
	s.tracer().Debugf("parse %s: %s", s.module, p)
	v, ok := p.apply(s)
	if ok && !s.AtEOF() {
		ok = s.Fail(&ExpectingError{at: s.Index(), Label: s.eofLabel})
	}
	if !ok {
		var zero T
		return zero, s.parseError(p.name)
	}
	return v, nil
}

func (s *State) parseError(entry string) *ParseError {
	idx := s.Index()
	if s.err != nil {
		idx = s.err.At()
	}
	pos := s.Pos(idx)
	e := &ParseError{
		Module:  s.module,
		Line:    pos.Line,
		Column:  pos.Column,
		Index:   idx,
		Message: Render(s.err, s.encountered(idx)),
		Err:     s.err,
	}
	if s.failure != nil && s.err != nil && s.failAt == s.err.At() {
		for _, f := range s.failure {
			f.Pos = s.Pos(f.Index)
			e.Frames = append(e.Frames, f)
		}
	} else {
		e.Frames = []Frame{{Module: s.module, Index: 0, Pos: s.Pos(0), Parser: entry}}
	}
	s.tracer().Debugf("parse %s failed: %v", s.module, e)
	return e
}

func (s *State) fault(r interface{}) *FaultError {
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}
	idx := s.Index()
	e := &FaultError{
		Module: s.module,
		Index:  idx,
		Pos:    s.Pos(idx),
		Cause:  cause,
	}
	if s.frames != nil {
		for _, x := range s.frames.Values() { // top of stack first
			f := x.(Frame)
			f.Pos = s.Pos(f.Index)
			e.Frames = append(e.Frames, f)
		}
	}
	s.tracer().Errorf("%v", e)
	return e
}
