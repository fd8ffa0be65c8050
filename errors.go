package parsec

import (
	"fmt"
	"strings"
)

// Error describes why a parse step failed.
//
// At is an index into the character source (in token mode: the index of
// the offending token). Precedence decides between errors at identical
// indexes. Errors flagged NoMerge are never combined with other errors.
type Error interface {
	error
	At() int
	Precedence() int
	NoMerge() bool
}

// Precedences of the error variants. Errors with higher precedence win over
// errors at the same index.
const (
	PrecedenceExpecting  = 0
	PrecedenceUnexpected = 1
	PrecedenceRaw        = 2
	PrecedenceException  = 3
)

// RawError is a free-form diagnostic message.
type RawError struct {
	at  int
	Msg string
}

// NewRawError creates a free-form error at index at.
func NewRawError(at int, msg string) *RawError {
	return &RawError{at: at, Msg: msg}
}

func (e *RawError) At() int         { return e.at }
func (e *RawError) Precedence() int { return PrecedenceRaw }
func (e *RawError) NoMerge() bool   { return false }
func (e *RawError) Error() string   { return e.Msg }

// ExpectingError signals that Label was wanted but not found.
type ExpectingError struct {
	at    int
	Label string
}

// NewExpectingError creates an error for a missing label at index at.
func NewExpectingError(at int, label string) *ExpectingError {
	return &ExpectingError{at: at, Label: label}
}

func (e *ExpectingError) At() int         { return e.at }
func (e *ExpectingError) Precedence() int { return PrecedenceExpecting }
func (e *ExpectingError) NoMerge() bool   { return false }
func (e *ExpectingError) Error() string   { return e.Label + " expected" }

// UnexpectedError signals that What has been encountered, which is not
// allowed at this position.
type UnexpectedError struct {
	at   int
	What string
}

// NewUnexpectedError creates an error for disallowed input at index at.
func NewUnexpectedError(at int, what string) *UnexpectedError {
	return &UnexpectedError{at: at, What: what}
}

func (e *UnexpectedError) At() int         { return e.at }
func (e *UnexpectedError) Precedence() int { return PrecedenceUnexpected }
func (e *UnexpectedError) NoMerge() bool   { return false }
func (e *UnexpectedError) Error() string   { return e.What + " unexpected" }

// ExceptionError carries the payload of a pseudo-exception.
type ExceptionError struct {
	at      int
	Payload interface{}
}

func (e *ExceptionError) At() int         { return e.at }
func (e *ExceptionError) Precedence() int { return PrecedenceException }
func (e *ExceptionError) NoMerge() bool   { return true }
func (e *ExceptionError) Error() string {
	return fmt.Sprintf("uncaught exception: %v", e.Payload)
}

// MergedError is the lazy combination of two errors at the same index with
// the same precedence. It is flattened only when rendered.
type MergedError struct {
	Left, Right Error
}

func (e *MergedError) At() int         { return e.Left.At() }
func (e *MergedError) Precedence() int { return e.Left.Precedence() }
func (e *MergedError) NoMerge() bool   { return false }
func (e *MergedError) Error() string   { return Render(e, "") }

// MergeErrors combines two errors.
//
// The error at the larger index wins. On equal indexes the error with
// higher precedence wins. If both tie and either one must not be merged,
// e1 is kept; otherwise both are combined into a MergedError.
func MergeErrors(e1, e2 Error) Error {
	if e1 == nil {
		return e2
	}
	if e2 == nil || e1 == e2 {
		return e1
	}
	if e1.At() != e2.At() {
		if e1.At() > e2.At() {
			return e1
		}
		return e2
	}
	if p1, p2 := e1.Precedence(), e2.Precedence(); p1 != p2 {
		if p1 > p2 {
			return e1
		}
		return e2
	}
	if e1.NoMerge() || e2.NoMerge() {
		return e1
	}
	return &MergedError{Left: e1, Right: e2}
}

// --- Rendering -------------------------------------------------------------

// summary is the flattened content of an error tree.
type summary struct {
	expecting  []string
	unexpected []string
	messages   []string
	exceptions []interface{}
}

func addUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}

func (sum *summary) collect(e Error) {
	switch err := e.(type) {
	case *MergedError:
		sum.collect(err.Left)
		sum.collect(err.Right)
	case *ExpectingError:
		sum.expecting = addUnique(sum.expecting, err.Label)
	case *UnexpectedError:
		sum.unexpected = addUnique(sum.unexpected, err.What)
	case *RawError:
		sum.messages = addUnique(sum.messages, err.Msg)
	case *ExceptionError:
		sum.exceptions = append(sum.exceptions, err.Payload)
	case nil:
	default:
		sum.messages = addUnique(sum.messages, err.Error())
	}
}

// Render flattens an error into a user-facing message. encountered
// describes the input found at the error's index; it may be empty.
//
// A typical message reads
//
//	digit or '.' expected, 'x' encountered.
func Render(e Error, encountered string) string {
	if e == nil {
		return "syntax error."
	}
	var sum summary
	sum.collect(e)
	var parts []string
	for _, x := range sum.exceptions {
		parts = append(parts, fmt.Sprintf("uncaught exception: %v", x))
	}
	if len(sum.expecting) > 0 {
		parts = append(parts, alternatives(sum.expecting)+" expected")
	}
	if len(sum.unexpected) > 0 {
		parts = append(parts, strings.Join(sum.unexpected, ", ")+" unexpected")
	} else if len(sum.expecting) > 0 && encountered != "" {
		parts = append(parts, encountered+" encountered")
	}
	parts = append(parts, sum.messages...)
	return strings.Join(parts, ", ") + "."
}

// alternatives renders "a", "a or b", "a, b or c".
func alternatives(labels []string) string {
	if len(labels) == 1 {
		return labels[0]
	}
	return strings.Join(labels[:len(labels)-1], ", ") + " or " + labels[len(labels)-1]
}
