package fourth

import (
	"errors"
	"fmt"
)

// These are the only kinds of failure that Eval reports; every error it
// returns wraps exactly one of them.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownWord    = errors.New("unknown word")

	// ErrInvalidWord is kept for malformed word definitions; since ":" and
	// ";" are no-ops, Eval never returns it today.
	ErrInvalidWord = errors.New("invalid word")
)

// TokenError locates a failure within the input of a single Eval call.
type TokenError struct {
	Token string // the token as written in the input
	Index int    // zero-based position of the token within the call's input
	Err   error
}

func (err *TokenError) Error() string {
	return fmt.Sprintf("token #%v %q: %v", err.Index, err.Token, err.Err)
}

func (err *TokenError) Unwrap() error { return err.Err }

// literalError classifies an unparsable token as an unknown word, retaining
// the parse failure as its cause.
type literalError struct{ err error }

func (err literalError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnknownWord, err.err)
}

func (err literalError) Is(target error) bool { return target == ErrUnknownWord }
func (err literalError) Unwrap() error        { return err.err }
