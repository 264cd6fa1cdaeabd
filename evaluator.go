package fourth

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

//// Environment

// Evaluator holds a single stack of Values that every token of input
// operates on. There is no program counter, no return stack and no
// compilation mode: each token is interpreted the same way regardless of what
// came before, except through the depth and contents of the stack.
//
// An Evaluator is not safe for concurrent use; callers that evaluate in
// parallel should use one Evaluator each.
type Evaluator struct {
	// The stack grows at its end; stack[0] is the bottom, the oldest value
	// still present.
	stack []Value

	// User words, reserved for definitions; see words.go.
	words

	log zerolog.Logger
}

// Value is the only type of data the stack holds.
type Value int32

//// Operations

// Symbol   Name    Function
//   :      define  accepted and ignored
//   ;      end     accepted and ignored
func (e *Evaluator) nop() error { return nil }

// The four arithmetic operators do not take just the top two values: they
// fold the whole stack, from the bottom up, into a single value which then
// becomes the only value on the stack. So "1 2 3 +" leaves 6 and
// "10 3 2 -" leaves (10-3)-2 = 5.

// Symbol   Name    Function
//   +      add     replace the stack with the sum of all its values
func (e *Evaluator) add() error { e.fold(func(a, b Value) Value { return a + b }); return nil }

// Symbol   Name    Function
//   -      sub     replace the stack with e0 - e1 - ... - eN
func (e *Evaluator) sub() error { e.fold(func(a, b Value) Value { return a - b }); return nil }

// Symbol   Name    Function
//   *      mul     replace the stack with the product of all its values
func (e *Evaluator) mul() error { e.fold(func(a, b Value) Value { return a * b }); return nil }

// Symbol   Name    Function
//   /      div     replace the stack with e0 / e1 / ... / eN
//
// Division truncates toward zero, so "-7 2 /" leaves -3. No value above the
// bottom may be zero, which always includes the top; the stack is left as is
// when one is.
func (e *Evaluator) div() error {
	for _, val := range e.stack[1:] {
		if val == 0 {
			return ErrDivisionByZero
		}
	}
	e.fold(func(a, b Value) Value { return a / b })
	return nil
}

// Symbol   Name    Function
//   dup    dup     push a copy of the top value
func (e *Evaluator) dup() error { e.push(e.peek(0)); return nil }

// Symbol   Name    Function
//   drop   drop    discard the top value
func (e *Evaluator) drop() error { e.pop(); return nil }

// Symbol   Name    Function
//   swap   swap    exchange the top two values
func (e *Evaluator) swap() error {
	i := len(e.stack) - 1
	e.stack[i-1], e.stack[i] = e.stack[i], e.stack[i-1]
	return nil
}

// Symbol   Name    Function
//   over   over    push a copy of the value just under the top
func (e *Evaluator) over() error { e.push(e.peek(1)); return nil }

// Any other token must be a decimal integer literal, optionally signed, which
// is pushed. Literals that do not fit in a Value are unknown words too.
func (e *Evaluator) literal(token string) (Value, error) {
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, literalError{err}
	}
	return Value(n), nil
}

const (
	opNop  = iota // : ;         no-op markers, reserved for word definitions
	opAdd         // +           fold the stack by addition
	opSub         // -           fold the stack by subtraction
	opMul         // *           fold the stack by multiplication
	opDiv         // /           fold the stack by division
	opDup         // dup         copy the top value
	opDrop        // drop        discard the top value
	opSwap        // swap        exchange the top two values
	opOver        // over        copy the second value to the top

	opMax
)

// opSymbols maps the lower case spelling of every operator token to its code.
var opSymbols = map[string]int{
	":":    opNop,
	";":    opNop,
	"+":    opAdd,
	"-":    opSub,
	"*":    opMul,
	"/":    opDiv,
	"dup":  opDup,
	"drop": opDrop,
	"swap": opSwap,
	"over": opOver,
}

var opTable [opMax]func(e *Evaluator) error
var opNames [opMax]string

// opDepth is the least stack depth each operation requires.
var opDepth = [opMax]int{
	opNop:  0,
	opAdd:  2,
	opSub:  2,
	opMul:  2,
	opDiv:  2,
	opDup:  1,
	opDrop: 1,
	opSwap: 2,
	opOver: 2,
}

func init() {
	opTable = [...]func(e *Evaluator) error{
		(*Evaluator).nop,
		(*Evaluator).add,
		(*Evaluator).sub,
		(*Evaluator).mul,
		(*Evaluator).div,
		(*Evaluator).dup,
		(*Evaluator).drop,
		(*Evaluator).swap,
		(*Evaluator).over,
	}

	opNames = [...]string{
		"nop",
		"add",
		"sub",
		"mul",
		"div",
		"dup",
		"drop",
		"swap",
		"over",
	}
}

//// Evaluation

func (e *Evaluator) eval(input string) error {
	for i, token := range strings.Fields(input) {
		if err := e.step(i, token); err != nil {
			err = &TokenError{Token: token, Index: i, Err: err}
			e.log.Debug().
				Err(err).
				Int("index", i).
				Str("token", token).
				Interface("stack", e.stack).
				Msg("eval failed")
			return err
		}
	}
	return nil
}

// step applies a single token, checking its precondition before any change
// is made to the stack.
func (e *Evaluator) step(i int, token string) error {
	if code, isOp := opSymbols[strings.ToLower(token)]; isOp {
		if len(e.stack) < opDepth[code] {
			return ErrStackUnderflow
		}
		if ev := e.log.Trace(); ev.Enabled() {
			ev.Int("index", i).
				Str("op", opNames[code]).
				Interface("stack", e.stack).
				Msg("exec")
		}
		return opTable[code](e)
	}

	val, err := e.literal(token)
	if err != nil {
		return err
	}
	e.log.Trace().Int("index", i).Int32("value", int32(val)).Msg("push")
	e.push(val)
	return nil
}
