package fourth

import (
	"github.com/alecthomas/repr"

	"github.com/jcorbin/fourth/internal/panicerr"
)

// New returns an Evaluator with an empty stack, unless options say otherwise.
func New(opts ...Option) *Evaluator {
	var e Evaluator
	e.apply(opts...)
	return &e
}

// Eval splits input on runs of whitespace and applies each token in turn.
//
// Evaluation stops at the first token that fails, returning a *TokenError
// that wraps one of ErrDivisionByZero, ErrStackUnderflow or ErrUnknownWord.
// Tokens before the failing one stay applied: nothing is rolled back. The
// failing token itself leaves the stack as it was.
func (e *Evaluator) Eval(input string) error {
	return panicerr.Recover("eval", func() error {
		return e.eval(input)
	})
}

// Stack returns a copy of the stack, bottom first.
func (e *Evaluator) Stack() []Value {
	stack := make([]Value, len(e.stack))
	copy(stack, e.stack)
	return stack
}

// Depth returns the number of values on the stack.
func (e *Evaluator) Depth() int { return len(e.stack) }

// Reset empties the stack; any user words are kept.
func (e *Evaluator) Reset() { e.stack = e.stack[:0] }

// Words returns the names in the user word table, in lexical order.
func (e *Evaluator) Words() []string { return e.words.sorted() }

// Word returns the token sequence stored for a user word name.
// The table is not consulted by Eval.
func (e *Evaluator) Word(name string) ([]string, bool) { return e.words.lookup(name) }

func (e *Evaluator) String() string {
	return repr.String(e.Stack(), repr.Indent(""))
}
