package lambda

import (
	"errors"
	"strconv"
)

// num is the constant type under test: combining nums adds them, except that
// zero is not callable, and a negative num panics.
type num int

var errZeroCall = errors.New("zero is not callable")

func (n num) String() string { return strconv.Itoa(int(n)) }
func (n num) Dup() num       { return n }

func (n num) Combine(x num) (num, error) {
	if n < 0 {
		panic("negative num")
	}
	if n == 0 {
		return 0, errZeroCall
	}
	return n + x, nil
}

type (
	tok  = Token[num, string]
	expr = Expr[num, string]
)

func val(n int) expr               { return Val[num, string](num(n)) }
func ref(name string) expr         { return Var[num](name) }
func lam(name string, e expr) expr { return Lam[num, string](name, e) }
func app(fun, arg expr) expr       { return Apply[num, string](fun, arg) }

func apps(fun expr, args ...expr) expr {
	for _, arg := range args {
		fun = app(fun, arg)
	}
	return fun
}

func ident(name string) tok { return Ident[num](name) }
func cnst(n int) tok        { return Const[num, string](num(n)) }

var (
	lamTok = LambdaMark[num, string]()
	appTok = ApplyMark[num, string]()
)
