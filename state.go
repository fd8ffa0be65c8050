package parsec

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/parsec/posmap"
	schuko "github.com/npillmayer/schuko/tracing"
)

// State is the cursor threaded through every parser application.
//
// A State reads either a character source or a token source, never both.
// It is created at the entry of a parse and discarded at its exit; it is
// never shared between parses.
type State struct {
	module   string
	src      []rune      // character source, if in character mode
	toks     []Tok       // token source, if in token mode
	tokMode  bool        // reading tokens?
	end      int         // len(src) or len(toks)
	endIndex int         // diagnostic index of end of input in token mode
	at       int         // cursor: offset into src or toks
	step     int         // logical steps taken so far
	err      Error       // current error; may be stale after success
	user     interface{} // user state side channel
	pm       *posmap.PositionMap
	show     ShowToken
	eofLabel string
	frames   *arraystack.Stack // active parsers, if fault tracing is on
	failure  []Frame           // active parsers at the farthest failure
	failAt   int
	trace    schuko.Trace
	pooled   bool
}

// mark is a snapshot of the restorable part of a State.
type mark struct {
	at, step int
	user     interface{}
	err      Error
}

func (s *State) mark() mark {
	return mark{at: s.at, step: s.step, user: s.user, err: s.err}
}

func (s *State) restore(m mark) {
	s.at, s.step, s.user, s.err = m.at, m.step, m.user, m.err
}

// consumed reports whether logical steps have been taken since m.
func (s *State) consumed(m mark) bool {
	return s.step != m.step
}

// --- Accessors -------------------------------------------------------------

// Module returns the name of the source being parsed.
func (s *State) Module() string { return s.module }

// At returns the cursor position: an offset into the characters or into
// the tokens of the source.
func (s *State) At() int { return s.at }

// Step returns the number of logical steps taken so far.
func (s *State) Step() int { return s.step }

// Index returns the index in the character source for diagnostics. In
// token mode this is the index of the current token, or the end index if
// all tokens have been consumed.
func (s *State) Index() int {
	return s.indexOf(s.at)
}

func (s *State) indexOf(at int) int {
	if !s.tokMode {
		return at
	}
	if at < len(s.toks) {
		return s.toks[at].Index
	}
	return s.endIndex
}

// Err returns the current error, which is meaningful after a failed parse
// step only.
func (s *State) Err() Error { return s.err }

// UserState returns the user state.
func (s *State) UserState() interface{} { return s.user }

// SetUserState replaces the user state. Changes of the user state are
// undone on backtracking.
func (s *State) SetUserState(u interface{}) { s.user = u }

// IsTokenMode reports whether the state reads tokens.
func (s *State) IsTokenMode() bool { return s.tokMode }

// AtEOF reports whether all input has been consumed.
func (s *State) AtEOF() bool { return s.at >= s.end }

// Source returns the character source. It is nil in token mode.
func (s *State) Source() []rune { return s.src }

// Tokens returns the token source. It is nil in character mode.
func (s *State) Tokens() []Tok { return s.toks }

// PositionMap returns the position map for the character source, if any.
func (s *State) PositionMap() *posmap.PositionMap { return s.pm }

// Pos maps an index of the character source to a position.
func (s *State) Pos(index int) posmap.Position {
	if s.pm == nil {
		return posmap.Position{}
	}
	return s.pm.Pos(index)
}

// Peek returns the character at the cursor. ok is false at the end of
// input.
func (s *State) Peek() (r rune, ok bool) {
	s.mustBeCharMode()
	if s.at >= s.end {
		return 0, false
	}
	return s.src[s.at], true
}

// Advance moves the cursor n characters or tokens forward, counting as a
// single logical step. Advancing by zero takes no step.
func (s *State) Advance(n int) {
	if n <= 0 {
		return
	}
	s.at += n
	s.step++
}

// Fail records e as the reason for a failing parse step and returns false.
// e is merged with the current error.
func (s *State) Fail(e Error) bool {
	s.err = MergeErrors(s.err, e)
	return false
}

func (s *State) expecting(label string) bool {
	return s.Fail(&ExpectingError{at: s.Index(), Label: label})
}

// raised reports whether the state carries an uncaught pseudo-exception.
func (s *State) raised() bool {
	_, ok := s.err.(*ExceptionError)
	return ok
}

func (s *State) mustBeCharMode() {
	if s.tokMode {
		panic("parsec: character-level parser applied to token input")
	}
}

func (s *State) mustBeTokenMode() {
	if !s.tokMode {
		panic("parsec: token-level parser applied to character input")
	}
}

// encountered describes the input found at diagnostic index idx.
func (s *State) encountered(idx int) string {
	if !s.tokMode {
		if idx >= len(s.src) {
			return "EOF"
		}
		return fmt.Sprintf("%q", s.src[idx])
	}
	for _, t := range s.toks { // tokens are ordered by index
		if t.Index == idx {
			return s.showToken(t.Token)
		}
		if t.Index > idx {
			break
		}
	}
	return s.eofLabel
}

func (s *State) showToken(tok interface{}) string {
	if s.show != nil {
		return s.show(tok)
	}
	return fmt.Sprintf("%v", tok)
}

func (s *State) tracer() schuko.Trace {
	if s.trace != nil {
		return s.trace
	}
	return tracer()
}

// --- Initialization --------------------------------------------------------

func (s *State) initChars(src []rune, cfg *config) {
	s.src = src
	s.tokMode = false
	s.end = len(src)
	s.endIndex = len(src)
	s.pm = cfg.pm
	if s.pm == nil {
		s.pm = posmap.ForSource(src)
	}
	s.configure(cfg)
}

func (s *State) initTokens(toks []Tok, endIndex int, cfg *config) {
	s.toks = toks
	s.tokMode = true
	s.end = len(toks)
	s.endIndex = endIndex
	s.pm = cfg.pm
	s.configure(cfg)
}

func (s *State) configure(cfg *config) {
	s.module = cfg.module
	s.user = cfg.user
	s.show = cfg.show
	s.eofLabel = cfg.eofLabel
	if s.eofLabel == "" {
		s.eofLabel = "EOF"
	}
	s.trace = cfg.tracer
	if cfg.traceFaults {
		s.frames = arraystack.New()
	}
}

// child creates a token-mode state for the tokens lexed from s. The child
// reports diagnostics in the index space of s.
func (s *State) child(toks []Tok) *State {
	c := borrowState()
	c.module = s.module
	c.toks = toks
	c.tokMode = true
	c.end = len(toks)
	c.endIndex = s.Index()
	c.user = s.user
	c.pm = s.pm
	c.show = s.show
	c.eofLabel = s.eofLabel
	c.frames = s.frames
	c.trace = s.trace
	return c
}

// noteFailure records the active parsers if the current error lies beyond
// any failure seen so far. Innermost parsers fail first, so of all
// failures at the same index the deepest chain is kept.
func (s *State) noteFailure() {
	if s.err == nil || (s.failure != nil && s.err.At() <= s.failAt) {
		return
	}
	s.failAt = s.err.At()
	s.failure = s.failure[:0]
	for _, x := range s.frames.Values() { // top of stack first
		s.failure = append(s.failure, x.(Frame))
	}
}

// adoptFailure takes over the failure trace of a child state.
func (s *State) adoptFailure(c *State) {
	if c.failure != nil && (s.failure == nil || c.failAt > s.failAt) {
		s.failAt = c.failAt
		s.failure = append([]Frame(nil), c.failure...)
	}
}

func (s *State) reset() {
	pooled := s.pooled
	*s = State{}
	s.pooled = pooled
}

// --- Pooling of states -----------------------------------------------------

// States are short-lived objects, at least one per parse and one per nested
// phase. To avoid frequent allocation we will pool them.
type statePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalStatePool *statePool

func init() {
	globalStatePool = &statePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &State{pooled: true}, nil
		})
	globalStatePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalStatePool.opool = pool.NewObjectPool(globalStatePool.ctx, factory, config)
}

func borrowState() *State {
	o, err := globalStatePool.opool.BorrowObject(globalStatePool.ctx)
	if err != nil {
		return &State{}
	}
	return o.(*State)
}

// releaseIntoPool clears the state and puts it back into the pool.
func (s *State) releaseIntoPool() {
	s.reset()
	if s.pooled {
		_ = globalStatePool.opool.ReturnObject(globalStatePool.ctx, s)
	}
}
