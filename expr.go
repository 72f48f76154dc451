package lambda

import "fmt"

// Expr is a lambda expression tree: one of Lambda, Constant, Variable, or
// Application. Trees are immutable; every rewrite builds a new tree.
type Expr[V Value[V], S comparable] interface {
	fmt.Stringer
	isExpr()
}

// Lambda is an abstraction binding Binder within Body.
type Lambda[V Value[V], S comparable] struct {
	Binder S
	Body   Expr[V, S]
}

// Constant is a constant value leaf.
type Constant[V Value[V], S comparable] struct {
	Val V
}

// Variable refers to an enclosing binder by name, or is free.
type Variable[V Value[V], S comparable] struct {
	Sym S
}

// Application applies Fun to Arg.
type Application[V Value[V], S comparable] struct {
	Fun Expr[V, S]
	Arg Expr[V, S]
}

func (Lambda[V, S]) isExpr()      {}
func (Constant[V, S]) isExpr()    {}
func (Variable[V, S]) isExpr()    {}
func (Application[V, S]) isExpr() {}

func (lam Lambda[V, S]) String() string      { return fmt.Sprintf("(λ%v. %v)", lam.Binder, lam.Body) }
func (c Constant[V, S]) String() string      { return c.Val.String() }
func (v Variable[V, S]) String() string      { return fmt.Sprint(v.Sym) }
func (app Application[V, S]) String() string { return fmt.Sprintf("(%v %v)", app.Fun, app.Arg) }

// Lam constructs a Lambda.
func Lam[V Value[V], S comparable](binder S, body Expr[V, S]) Expr[V, S] {
	return Lambda[V, S]{binder, body}
}

// Val constructs a Constant.
func Val[V Value[V], S comparable](val V) Expr[V, S] {
	return Constant[V, S]{val}
}

// Var constructs a Variable.
func Var[V Value[V], S comparable](sym S) Expr[V, S] {
	return Variable[V, S]{sym}
}

// Apply constructs an Application.
func Apply[V Value[V], S comparable](fun, arg Expr[V, S]) Expr[V, S] {
	return Application[V, S]{fun, arg}
}

// Encode flattens an expression into its postfix token sequence; Parse of the
// result yields an expression structurally equal to e.
func Encode[V Value[V], S comparable](e Expr[V, S]) (toks []Token[V, S]) {
	type item struct {
		e    Expr[V, S]
		post TokenKind
	}
	stack := []item{{e: e}}
	for len(stack) > 0 {
		i := len(stack) - 1
		it := stack[i]
		stack = stack[:i]
		if it.post != 0 {
			toks = append(toks, Token[V, S]{Kind: it.post})
			continue
		}
		switch n := it.e.(type) {
		case Constant[V, S]:
			toks = append(toks, Const[V, S](n.Val))
		case Variable[V, S]:
			toks = append(toks, Ident[V](n.Sym))
		case Lambda[V, S]:
			toks = append(toks, Ident[V](n.Binder))
			stack = append(stack, item{post: LambdaToken}, item{e: n.Body})
		case Application[V, S]:
			stack = append(stack, item{post: ApplyToken}, item{e: n.Arg}, item{e: n.Fun})
		}
	}
	return toks
}
