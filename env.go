package lambda

// Env binds names to expressions.
type Env[V Value[V], S comparable] interface {
	Lookup(sym S) (Expr[V, S], bool)
}

// MapEnv is a simple Env.
type MapEnv[V Value[V], S comparable] map[S]Expr[V, S]

// Lookup returns the expression bound to sym, if any.
func (env MapEnv[V, S]) Lookup(sym S) (Expr[V, S], bool) {
	e, ok := env[sym]
	return e, ok
}

// Resolve returns a duplicate of the expression bound to sym, or a Variable
// referring to sym if it is unbound.
func Resolve[V Value[V], S comparable](env Env[V, S], sym S) (Expr[V, S], error) {
	if e, ok := env.Lookup(sym); ok {
		return Dup[V, S](e)
	}
	return Var[V](sym), nil
}

// Bind substitutes, simultaneously, every free variable of e bound in env.
// Bound expressions are inserted as-is: a name free in one of them is not
// itself resolved.
func Bind[V Value[V], S comparable](e Expr[V, S], env Env[V, S]) (Expr[V, S], error) {
	return BindRenaming[V, S](e, env, nil)
}

// BindRenaming is like Bind, but alpha-renames capturing binders with rename,
// if non-nil, rather than fail with a CaptureError.
func BindRenaming[V Value[V], S comparable](e Expr[V, S], env Env[V, S], rename Renamer[S]) (Expr[V, S], error) {
	sub := substituter[V, S]{
		lookup: env.Lookup,
		rename: rename,
	}
	return sub.run(e)
}
