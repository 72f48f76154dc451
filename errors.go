package lambda

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrNotAVariable   = errors.New("binder is not a variable")
	ErrEndOfInput     = errors.New("unexpected end of input")

	// ErrMismatchedTypes is reserved for grammar extensions; the base grammar
	// accepts every token in every state.
	ErrMismatchedTypes = errors.New("mismatched types")
)

// Reduction errors.
var (
	ErrNotReducible = errors.New("not reducible")
	ErrInvalidExpr  = errors.New("invalid expression")
)

// ParseError locates a parse failure within the token sequence. Offset is the
// index of the failing token, or the sequence length for ErrEndOfInput.
type ParseError struct {
	Offset int
	Err    error
}

func (err *ParseError) Error() string { return fmt.Sprintf("parse error @%v: %v", err.Offset, err.Err) }
func (err *ParseError) Unwrap() error { return err.Err }

// UnexpectedTokenError is returned for a token of no known kind.
type UnexpectedTokenError[V Value[V], S comparable] struct {
	Token Token[V, S]
}

func (err UnexpectedTokenError[V, S]) Error() string {
	return fmt.Sprintf("unexpected token %v", err.Token)
}

// NotReducibleError carries the expression that BetaReduce or DeltaReduce
// could not reduce; it matches ErrNotReducible.
type NotReducibleError[V Value[V], S comparable] struct {
	Expr Expr[V, S]
}

func (err *NotReducibleError[V, S]) Error() string { return fmt.Sprintf("not reducible: %v", err.Expr) }
func (err *NotReducibleError[V, S]) Unwrap() error { return ErrNotReducible }

// CaptureError reports that substituting for Var under Binder would capture a
// free occurrence of Binder in the replacement.
type CaptureError[S comparable] struct {
	Binder S
	Var    S
}

func (err *CaptureError[S]) Error() string {
	return fmt.Sprintf("substituting %v under λ%v would capture free %v", err.Var, err.Binder, err.Binder)
}

// CombineError wraps a failure of the delta rule.
type CombineError[V Value[V]] struct {
	Fun V
	Arg V
	Err error
}

func (err *CombineError[V]) Error() string {
	return fmt.Sprintf("cannot combine %v with %v: %v", err.Fun, err.Arg, err.Err)
}
func (err *CombineError[V]) Unwrap() error { return err.Err }

// StepLimitError is returned by Reducer.Normalize when its step budget runs
// out before reaching a normal form.
type StepLimitError struct {
	Steps int
}

func (lim StepLimitError) Error() string {
	return fmt.Sprintf("step limit exceeded after %v steps", lim.Steps)
}
