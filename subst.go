package lambda

import "github.com/samber/lo"

// Renamer returns a symbol derived from s for which taken returns false. It is
// used to alpha-rename a binder that would otherwise capture a free variable.
type Renamer[S comparable] func(s S, taken func(S) bool) S

// Substitution replaces free occurrences of Var with duplicates of With.
//
// Occurrences under a binder named Var are not free, and so are left alone.
// When a binder would capture a free variable of With, Apply fails with a
// CaptureError, unless Rename is set: then the binder is renamed first.
type Substitution[V Value[V], S comparable] struct {
	Var    S
	With   Expr[V, S]
	Rename Renamer[S]
}

// Apply returns a new tree; target is not modified.
func (s Substitution[V, S]) Apply(target Expr[V, S]) (Expr[V, S], error) {
	sub := substituter[V, S]{
		lookup: func(sym S) (Expr[V, S], bool) {
			return s.With, sym == s.Var
		},
		rename: s.Rename,
	}
	return sub.run(target)
}

// Substitute replaces every free occurrence of v in target with a duplicate of
// r, without renaming; see Substitution.
func Substitute[V Value[V], S comparable](target Expr[V, S], v S, r Expr[V, S]) (Expr[V, S], error) {
	return Substitution[V, S]{Var: v, With: r}.Apply(target)
}

// Dup returns a structural copy of e, duplicating every constant value.
func Dup[V Value[V], S comparable](e Expr[V, S]) (Expr[V, S], error) {
	var sub substituter[V, S]
	return sub.run(e)
}

// FreeVars returns the symbols occurring free in e, in order of first
// occurrence.
func FreeVars[V Value[V], S comparable](e Expr[V, S]) []S {
	type item struct {
		e      Expr[V, S]
		unbind bool
		sym    S
	}
	var free []S
	bound := make(map[S]int)
	stack := []item{{e: e}}
	for len(stack) > 0 {
		i := len(stack) - 1
		it := stack[i]
		stack = stack[:i]
		if it.unbind {
			bound[it.sym]--
			continue
		}
		switch n := it.e.(type) {
		case Variable[V, S]:
			if bound[n.Sym] == 0 {
				free = append(free, n.Sym)
			}
		case Lambda[V, S]:
			bound[n.Binder]++
			stack = append(stack, item{unbind: true, sym: n.Binder}, item{e: n.Body})
		case Application[V, S]:
			stack = append(stack, item{e: n.Arg}, item{e: n.Fun})
		}
	}
	return lo.Uniq(free)
}

// IsFree returns true if sym occurs free in e.
func IsFree[V Value[V], S comparable](e Expr[V, S], sym S) bool {
	return lo.Contains(FreeVars[V, S](e), sym)
}

// symbols collects every symbol used in e, bound or free.
func symbols[V Value[V], S comparable](e Expr[V, S], into map[S]struct{}) {
	stack := []Expr[V, S]{e}
	for len(stack) > 0 {
		i := len(stack) - 1
		e := stack[i]
		stack = stack[:i]
		switch n := e.(type) {
		case Variable[V, S]:
			into[n.Sym] = struct{}{}
		case Lambda[V, S]:
			into[n.Binder] = struct{}{}
			stack = append(stack, n.Body)
		case Application[V, S]:
			stack = append(stack, n.Arg, n.Fun)
		}
	}
}

// substituter rewrites a tree by re-emitting it, in postfix order, into a
// Parser; free variables found by lookup are replaced along the way. A nil
// lookup makes a plain copy.
type substituter[V Value[V], S comparable] struct {
	lookup func(S) (Expr[V, S], bool)
	rename Renamer[S]
	shadow map[S]int

	// free variables of each replacement, and their union; a binder outside
	// reach cannot capture anything
	free  map[S]map[S]struct{}
	reach map[S]struct{}
}

// prepare records the free variables of every replacement that target may
// receive, so that binders need only be checked against reach.
func (sub *substituter[V, S]) prepare(target Expr[V, S]) {
	sub.free = make(map[S]map[S]struct{})
	sub.reach = make(map[S]struct{})
	for _, v := range FreeVars[V, S](target) {
		sub.freeIn(v)
	}
}

// freeIn returns the free variables of v's replacement, if any.
func (sub *substituter[V, S]) freeIn(v S) map[S]struct{} {
	if fvs, ok := sub.free[v]; ok {
		return fvs
	}
	r, ok := sub.lookup(v)
	if !ok {
		return nil
	}
	fvs := make(map[S]struct{})
	for _, fv := range FreeVars[V, S](r) {
		fvs[fv] = struct{}{}
		sub.reach[fv] = struct{}{}
	}
	sub.free[v] = fvs
	return fvs
}

func (sub *substituter[V, S]) replacement(sym S) (Expr[V, S], bool) {
	if sub.lookup == nil || sub.shadow[sym] > 0 {
		return nil, false
	}
	return sub.lookup(sym)
}

func (sub *substituter[V, S]) run(target Expr[V, S]) (Expr[V, S], error) {
	type item struct {
		e        Expr[V, S]
		post     TokenKind
		shadowed bool
		unshadow S
	}

	if sub.lookup != nil {
		sub.prepare(target)
	}

	var out Parser[V, S]
	stack := []item{{e: target}}
	for len(stack) > 0 {
		i := len(stack) - 1
		it := stack[i]
		stack = stack[:i]

		if it.post != 0 {
			if it.shadowed {
				sub.shadow[it.unshadow]--
			}
			if err := out.Push(Token[V, S]{Kind: it.post}); err != nil {
				return nil, err
			}
			continue
		}

		switch n := it.e.(type) {
		case Constant[V, S]:
			out.push(Constant[V, S]{n.Val.Dup()})

		case Variable[V, S]:
			if r, ok := sub.replacement(n.Sym); ok {
				d, err := Dup[V, S](r)
				if err != nil {
					return nil, err
				}
				out.push(d)
			} else {
				out.push(n)
			}

		case Application[V, S]:
			stack = append(stack,
				item{post: ApplyToken},
				item{e: n.Arg},
				item{e: n.Fun})

		case Lambda[V, S]:
			binder, body := n.Binder, n.Body
			shadowed := false
			if _, ok := sub.replacement(binder); ok {
				shadowed = true
				if sub.shadow == nil {
					sub.shadow = make(map[S]int)
				}
				sub.shadow[binder]++
			}
			// other bindings still apply under a shadowing binder
			if v, captured := sub.captures(binder, body); captured {
				if sub.rename == nil {
					return nil, &CaptureError[S]{Binder: binder, Var: v}
				}
				var err error
				if binder, body, err = sub.alphaRename(binder, body); err != nil {
					return nil, err
				}
			}
			out.push(Variable[V, S]{binder})
			stack = append(stack,
				item{post: LambdaToken, shadowed: shadowed, unshadow: n.Binder},
				item{e: body})

		default:
			return nil, ErrInvalidExpr
		}
	}
	return out.Result()
}

// captures returns a variable free in body whose replacement has binder free.
func (sub *substituter[V, S]) captures(binder S, body Expr[V, S]) (S, bool) {
	var zero S
	if sub.lookup == nil {
		return zero, false
	}
	if _, ok := sub.reach[binder]; !ok {
		return zero, false
	}
	for _, v := range FreeVars[V, S](body) {
		if _, ok := sub.replacement(v); ok {
			if _, free := sub.freeIn(v)[binder]; free {
				return v, true
			}
		}
	}
	return zero, false
}

// alphaRename renames binder within body to a symbol that appears nowhere in
// body, nor free in any replacement that body may receive.
func (sub *substituter[V, S]) alphaRename(binder S, body Expr[V, S]) (S, Expr[V, S], error) {
	taken := map[S]struct{}{binder: {}}
	symbols[V, S](body, taken)
	for _, v := range FreeVars[V, S](body) {
		if _, ok := sub.replacement(v); ok {
			for fv := range sub.freeIn(v) {
				taken[fv] = struct{}{}
			}
		}
	}
	fresh := sub.rename(binder, func(sym S) bool {
		if _, ok := taken[sym]; ok {
			return true
		}
		_, ok := sub.replacement(sym)
		return ok
	})
	renamed, err := Substitute[V, S](body, binder, Var[V, S](fresh))
	return fresh, renamed, err
}
