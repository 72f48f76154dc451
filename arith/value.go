// Package arith binds the lambda core to integer constants, arithmetic
// primitives, and string symbols.
//
// Applying a primitive to integers, by the delta rule, partially applies it
// until it has both operands: `+ 1 @ 2 @` folds to 3.
package arith

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/jcorbin/lambda"
)

// Token, Expr, and Env are the core types instantiated for this binding.
type (
	Token = lambda.Token[Value, string]
	Expr  = lambda.Expr[Value, string]
	Env   = lambda.MapEnv[Value, string]
)

// Op is a primitive operator; the zero Op is an integer.
type Op uint8

// Primitive operators.
const (
	IntOp Op = iota
	AddOp
	SubOp
	MulOp
	DivOp
)

var opNames = [...]string{
	IntOp: "int",
	AddOp: "+",
	SubOp: "-",
	MulOp: "*",
	DivOp: "/",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Value is an integer, or a primitive applied to zero or more Args.
type Value struct {
	Op   Op
	N    int
	Args []int
}

// Int returns an integer value.
func Int(n int) Value { return Value{N: n} }

// Prim returns an unapplied primitive.
func Prim(op Op) Value { return Value{Op: op} }

// Errors returned by Combine.
var (
	ErrNotCallable  = errors.New("not callable")
	ErrNotANumber   = errors.New("not a number")
	ErrDivideByZero = errors.New("divide by zero")
)

func (v Value) String() string {
	if v.Op == IntOp {
		return strconv.Itoa(v.N)
	}
	if len(v.Args) == 0 {
		return v.Op.String()
	}
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(v.Op.String())
	for _, arg := range v.Args {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(arg))
	}
	sb.WriteString(")")
	return sb.String()
}

// Dup copies v along with its Args.
func (v Value) Dup() Value {
	v.Args = slices.Clone(v.Args)
	return v
}

// Combine applies primitive v to integer x.
func (v Value) Combine(x Value) (Value, error) {
	if v.Op == IntOp {
		return Value{}, fmt.Errorf("%v %w", v, ErrNotCallable)
	}
	if x.Op != IntOp {
		return Value{}, fmt.Errorf("%v argument %v %w", v.Op, x, ErrNotANumber)
	}

	args := append(slices.Clone(v.Args), x.N)
	if len(args) < 2 {
		return Value{Op: v.Op, Args: args}, nil
	}

	a, b := args[0], args[1]
	switch v.Op {
	case AddOp:
		return Int(a + b), nil
	case SubOp:
		return Int(a - b), nil
	case MulOp:
		return Int(a * b), nil
	case DivOp:
		if b == 0 {
			return Value{}, ErrDivideByZero
		}
		return Int(a / b), nil
	}
	return Value{}, fmt.Errorf("invalid %v", v.Op)
}

// Fresh is a lambda.Renamer for string symbols: it appends primes to s until
// the result is not taken.
func Fresh(s string, taken func(string) bool) string {
	for s += "'"; taken(s); s += "'" {
	}
	return s
}
