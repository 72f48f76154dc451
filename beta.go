package lambda

// BetaReduce performs one beta step on a redex: an Application whose function
// is a Lambda. Any other shape returns a NotReducibleError.
func BetaReduce[V Value[V], S comparable](e Expr[V, S]) (Expr[V, S], error) {
	return BetaReduceRenaming[V, S](e, nil)
}

// BetaReduceRenaming is like BetaReduce, but alpha-renames binders with
// rename, if non-nil, rather than fail with a CaptureError.
func BetaReduceRenaming[V Value[V], S comparable](e Expr[V, S], rename Renamer[S]) (Expr[V, S], error) {
	if app, ok := e.(Application[V, S]); ok {
		if lam, ok := app.Fun.(Lambda[V, S]); ok {
			return Substitution[V, S]{
				Var:    lam.Binder,
				With:   app.Arg,
				Rename: rename,
			}.Apply(lam.Body)
		}
	}
	return nil, &NotReducibleError[V, S]{e}
}

// DeltaReduce applies the delta rule to an Application of one Constant to
// another, yielding a Constant of their Combine. Any other shape returns a
// NotReducibleError; a Combine failure is returned as a CombineError.
func DeltaReduce[V Value[V], S comparable](e Expr[V, S]) (Expr[V, S], error) {
	if app, ok := e.(Application[V, S]); ok {
		f, fok := app.Fun.(Constant[V, S])
		x, xok := app.Arg.(Constant[V, S])
		if fok && xok {
			val, err := f.Val.Dup().Combine(x.Val.Dup())
			if err != nil {
				return nil, &CombineError[V]{f.Val, x.Val, err}
			}
			return Constant[V, S]{val}, nil
		}
	}
	return nil, &NotReducibleError[V, S]{e}
}

func isBetaRedex[V Value[V], S comparable](e Expr[V, S]) bool {
	if app, ok := e.(Application[V, S]); ok {
		_, ok = app.Fun.(Lambda[V, S])
		return ok
	}
	return false
}

func isDeltaRedex[V Value[V], S comparable](e Expr[V, S]) bool {
	if app, ok := e.(Application[V, S]); ok {
		_, fok := app.Fun.(Constant[V, S])
		_, xok := app.Arg.(Constant[V, S])
		return fok && xok
	}
	return false
}
