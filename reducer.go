package lambda

import (
	"context"

	"github.com/jcorbin/lambda/internal/panicerr"
)

// Reducer drives normal order (leftmost outermost) reduction.
//
// Reduction need not terminate; Normalize runs until a normal form, the step
// budget given by WithMaxSteps, or context cancellation.
type Reducer[V Value[V], S comparable] struct {
	logging
	maxSteps int
	delta    bool
	rename   Renamer[S]
	steps    int
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}

// NewReducer creates a Reducer; see the With* options.
func NewReducer[V Value[V], S comparable](opts ...Option) *Reducer[V, S] {
	var cfg config
	Options(opts...).apply(&cfg)
	red := &Reducer[V, S]{
		logging:  logging{cfg.logfn},
		maxSteps: cfg.maxSteps,
		delta:    cfg.delta,
	}
	if cfg.rename != nil {
		if rename, ok := cfg.rename.(Renamer[S]); ok {
			red.rename = rename
		} else {
			red.logf("ignoring renamer %T", cfg.rename)
		}
	}
	return red
}

// Steps returns how many steps the last Normalize took.
func (red *Reducer[V, S]) Steps() int { return red.steps }

// Normalize reduces e until it has no redex left, returning its normal form.
// Any panic raised by Value methods is recovered and returned as an error.
func (red *Reducer[V, S]) Normalize(ctx context.Context, e Expr[V, S]) (res Expr[V, S], err error) {
	red.steps = 0
	err = panicerr.Recover("reduce", func() error {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			next, stepped, err := red.Step(e)
			if err != nil {
				return err
			}
			if !stepped {
				res = e
				return nil
			}
			if red.maxSteps > 0 && red.steps >= red.maxSteps {
				return StepLimitError{red.steps}
			}
			red.steps++
			e = next
		}
	})
	if err != nil {
		red.logf("halt after %v steps: %v", red.steps, err)
		return nil, err
	}
	red.logf("normal form after %v steps: %v", red.steps, res)
	return res, nil
}

// Step reduces the leftmost outermost redex in e. It returns false, and e
// itself, if e is already in normal form.
func (red *Reducer[V, S]) Step(e Expr[V, S]) (Expr[V, S], bool, error) {
	const (
		inRoot = iota
		inFun
		inArg
		inBody
	)
	type frame struct {
		e      Expr[V, S]
		parent int
		side   int
	}

	frames := []frame{{e: e, parent: -1, side: inRoot}}
	todo := []int{0}
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		n := frames[i].e

		var (
			reduced Expr[V, S]
			err     error
			rule    string
		)
		switch {
		case isBetaRedex[V, S](n):
			rule = "beta"
			reduced, err = BetaReduceRenaming[V, S](n, red.rename)
		case red.delta && isDeltaRedex[V, S](n):
			rule = "delta"
			reduced, err = DeltaReduce[V, S](n)
		}
		if rule != "" {
			if err != nil {
				return e, false, err
			}
			red.logf("#%v %v %v -> %v", red.steps+1, rule, n, reduced)
			for ; frames[i].parent >= 0; i = frames[i].parent {
				switch p := frames[frames[i].parent].e.(type) {
				case Application[V, S]:
					if frames[i].side == inFun {
						p.Fun = reduced
					} else {
						p.Arg = reduced
					}
					reduced = p
				case Lambda[V, S]:
					p.Body = reduced
					reduced = p
				}
			}
			return reduced, true, nil
		}

		switch n := n.(type) {
		case Application[V, S]:
			frames = append(frames,
				frame{e: n.Arg, parent: i, side: inArg},
				frame{e: n.Fun, parent: i, side: inFun})
			todo = append(todo, len(frames)-2, len(frames)-1)
		case Lambda[V, S]:
			frames = append(frames, frame{e: n.Body, parent: i, side: inBody})
			todo = append(todo, len(frames)-1)
		case Constant[V, S], Variable[V, S]:
		default:
			return e, false, ErrInvalidExpr
		}
	}
	return e, false, nil
}
