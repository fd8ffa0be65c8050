package parsec

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// optionalStep runs p. If p fails without consuming input, optionalStep
// restores the state, keeping the error, and reports found=false.
func optionalStep[T any](s *State, p Parser[T]) (v T, found bool, ok bool) {
	m := s.mark()
	v, ok = p.apply(s)
	if ok {
		return v, true, true
	}
	if s.raised() || s.consumed(m) {
		return v, false, false
	}
	err := MergeErrors(m.err, s.err)
	s.restore(m)
	s.err = err
	return v, false, true
}

// ChainL1 parses one or more p, separated by op, and combines the results
// of p by the functions returned by op, associating to the left.
func ChainL1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return New(p.name+" chainl "+op.name, func(s *State) (T, bool) {
		x, ok := p.apply(s)
		if !ok {
			return x, false
		}
		for {
			f, found, ok := optionalStep(s, op)
			if !ok {
				return x, false
			}
			if !found {
				return x, true
			}
			y, ok := p.apply(s)
			if !ok {
				return y, false
			}
			x = f(x, y)
		}
	})
}

// ChainR1 parses one or more p, separated by op, and combines the results
// of p by the functions returned by op, associating to the right.
func ChainR1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return New(p.name+" chainr "+op.name, func(s *State) (T, bool) {
		x, ok := p.apply(s)
		if !ok {
			return x, false
		}
		xs := []T{x}
		var fs []func(T, T) T
		for {
			f, found, ok := optionalStep(s, op)
			if !ok {
				return x, false
			}
			if !found {
				break
			}
			y, ok := p.apply(s)
			if !ok {
				return y, false
			}
			xs, fs = append(xs, y), append(fs, f)
		}
		r := xs[len(xs)-1]
		for i := len(fs) - 1; i >= 0; i-- {
			r = fs[i](xs[i], r)
		}
		return r, true
	})
}

// Prefix parses zero or more prefix operators followed by p.
func Prefix[T any](op Parser[func(T) T], p Parser[T]) Parser[T] {
	return Seq2(Many(op), p, func(fs []func(T) T, x T) T {
		for i := len(fs) - 1; i >= 0; i-- {
			x = fs[i](x)
		}
		return x
	})
}

// Postfix parses p followed by zero or more postfix operators.
func Postfix[T any](p Parser[T], op Parser[func(T) T]) Parser[T] {
	return Seq2(p, Many(op), func(x T, fs []func(T) T) T {
		for _, f := range fs {
			x = f(x)
		}
		return x
	})
}

// nonAssoc parses p, optionally followed by a single op and p.
func nonAssoc[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return New(p.name+" chainn "+op.name, func(s *State) (T, bool) {
		x, ok := p.apply(s)
		if !ok {
			return x, false
		}
		f, found, ok := optionalStep(s, op)
		if !ok || !found {
			return x, ok
		}
		y, ok := p.apply(s)
		if !ok {
			return y, false
		}
		return f(x, y), true
	})
}

// --- Operator tables -------------------------------------------------------

// Associativity of binary operators.
type Associativity int

// Associativities of binary operators.
const (
	AssocLeft Associativity = iota
	AssocRight
	AssocNone
)

type level[T any] struct {
	infix   [3][]Parser[func(T, T) T]
	prefix  []Parser[func(T) T]
	postfix []Parser[func(T) T]
}

// OperatorTable collects operators by precedence level and builds an
// expression parser from them. Operators with a higher precedence bind
// tighter.
type OperatorTable[T any] struct {
	levels *treemap.Map // precedence → *level[T]
}

// NewOperatorTable creates an empty operator table.
func NewOperatorTable[T any]() *OperatorTable[T] {
	return &OperatorTable[T]{levels: treemap.NewWithIntComparator()}
}

func (ot *OperatorTable[T]) levelOf(prec int) *level[T] {
	if l, found := ot.levels.Get(prec); found {
		return l.(*level[T])
	}
	l := &level[T]{}
	ot.levels.Put(prec, l)
	return l
}

// Infix registers a binary operator.
func (ot *OperatorTable[T]) Infix(prec int, assoc Associativity, op Parser[func(T, T) T]) *OperatorTable[T] {
	if assoc < AssocLeft || assoc > AssocNone {
		panic(fmt.Sprintf("parsec: illegal associativity %d", assoc))
	}
	l := ot.levelOf(prec)
	l.infix[assoc] = append(l.infix[assoc], op)
	return ot
}

// Infixl registers a left-associative binary operator.
func (ot *OperatorTable[T]) Infixl(prec int, op Parser[func(T, T) T]) *OperatorTable[T] {
	return ot.Infix(prec, AssocLeft, op)
}

// Infixr registers a right-associative binary operator.
func (ot *OperatorTable[T]) Infixr(prec int, op Parser[func(T, T) T]) *OperatorTable[T] {
	return ot.Infix(prec, AssocRight, op)
}

// Infixn registers a non-associative binary operator.
func (ot *OperatorTable[T]) Infixn(prec int, op Parser[func(T, T) T]) *OperatorTable[T] {
	return ot.Infix(prec, AssocNone, op)
}

// Prefix registers a prefix operator.
func (ot *OperatorTable[T]) Prefix(prec int, op Parser[func(T) T]) *OperatorTable[T] {
	l := ot.levelOf(prec)
	l.prefix = append(l.prefix, op)
	return ot
}

// Postfix registers a postfix operator.
func (ot *OperatorTable[T]) Postfix(prec int, op Parser[func(T) T]) *OperatorTable[T] {
	l := ot.levelOf(prec)
	l.postfix = append(l.postfix, op)
	return ot
}

// Build creates an expression parser with operand as the innermost term.
func (ot *OperatorTable[T]) Build(operand Parser[T]) Parser[T] {
	term := operand
	keys := ot.levels.Keys()
	for i := len(keys) - 1; i >= 0; i-- { // tightest binding first
		l, _ := ot.levels.Get(keys[i])
		term = l.(*level[T]).build(term)
	}
	return term
}

func (l *level[T]) build(term Parser[T]) Parser[T] {
	if len(l.prefix) > 0 {
		term = Prefix(Plus(l.prefix...), term)
	}
	if len(l.postfix) > 0 {
		term = Postfix(term, Plus(l.postfix...))
	}
	if ops := l.infix[AssocLeft]; len(ops) > 0 {
		term = ChainL1(term, Plus(ops...))
	}
	if ops := l.infix[AssocRight]; len(ops) > 0 {
		term = ChainR1(term, Plus(ops...))
	}
	if ops := l.infix[AssocNone]; len(ops) > 0 {
		term = nonAssoc(term, Plus(ops...))
	}
	return term
}
