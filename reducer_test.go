package lambda

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/lambda/internal/panicerr"
)

func Test_Reducer(t *testing.T) {
	var (
		id    = lam("x", ref("x"))
		k     = lam("x", lam("y", ref("x")))
		omega = app(lam("y", app(ref("y"), ref("y"))), lam("y", app(ref("y"), ref("y"))))
		two   = lam("f", lam("x", app(ref("f"), app(ref("f"), ref("x")))))
		three = lam("f", lam("x", app(ref("f"), app(ref("f"), app(ref("f"), ref("x"))))))
		succ  = lam("n", lam("f", lam("x", app(ref("f"), apps(ref("n"), ref("f"), ref("x"))))))

		delta = withReduceOptions(WithDelta(true))
	)

	reduceTestCases{
		reduceTest("identity").withTokens(
			ident("x"), ident("x"), lamTok, cnst(0), appTok,
		).expectResult(val(0)).expectSteps(1),

		reduceTest("constant function").withExpr(
			app(k, val(0)),
		).expectResult(lam("y", val(0))).expectSteps(1),

		reduceTest("double reduction").withTokens(
			ident("f"), ident("f"), cnst(0), appTok, lamTok,
			ident("x"), ident("x"), lamTok,
			appTok,
		).expectResult(val(0)).expectSteps(2),

		reduceTest("normal form").withExpr(id).apply(
			expectReduceResult(id),
			expectReduceSteps(0),
		),

		reduceTest("normal order discards omega").withExpr(
			app(lam("x", val(0)), omega),
		).expectResult(val(0)).expectSteps(1),

		reduceTest("reduces under lambda").withExpr(
			lam("z", app(id, ref("z"))),
		).expectResult(lam("z", ref("z"))).expectSteps(1),

		reduceTest("church succ").withExpr(
			app(succ, two),
		).expectResult(three).expectSteps(3),

		reduceTest("omega step limit").withExpr(omega).withOptions(
			WithMaxSteps(10),
		).expectError(StepLimitError{10}).expectSteps(10),

		reduceTest("negative step limit means none").withExpr(
			apps(k, val(1), val(2)),
		).withOptions(
			WithMaxSteps(-1),
		).expectResult(val(1)).expectSteps(2),

		reduceTest("omega timeout").withExpr(omega).withTimeout(
			10*time.Millisecond,
		).expectError(context.DeadlineExceeded),

		reduceTest("constants without delta").withExpr(
			app(val(2), val(3)),
		).expectResult(app(val(2), val(3))).expectSteps(0),

		reduceTest("constants with delta").withExpr(
			app(lam("x", app(ref("x"), val(3))), val(2)),
		).apply(delta, expectReduceResult(val(5)), expectReduceSteps(2)),

		reduceTest("delta failure").withExpr(
			app(val(0), val(1)),
		).apply(delta, expectReduceError(errZeroCall)),

		reduceTest("delta panic").withExpr(
			app(val(-1), val(1)),
		).apply(delta).expectPanic(),

		reduceTest("capture").withExpr(
			app(k, ref("y")),
		).expectError(&CaptureError[string]{Binder: "y", Var: "x"}),

		reduceTest("capture renamed").withExpr(
			apps(k, ref("y"), val(1)),
		).withOptions(
			WithRenamer[string](prime),
		).expectResult(ref("y")).expectSteps(2),

		reduceTest("invalid").withExpr(
			app(id, Application[num, string]{Fun: ref("f")}),
		).expectError(ErrInvalidExpr),

		reduceTest("trace").withExpr(
			app(id, val(0)),
		).expectTrace(
			"#1 beta ((λx. x) 0) -> 0",
			"normal form after 1 steps: 0",
		),
	}.run(t)
}

func Test_Reducer_Step(t *testing.T) {
	red := NewReducer[num, string]()

	e := app(lam("x", app(ref("x"), ref("x"))), app(lam("y", ref("y")), val(1)))
	e, stepped, err := red.Step(e)
	require.NoError(t, err)
	require.True(t, stepped)
	assert.Equal(t,
		app(app(lam("y", ref("y")), val(1)), app(lam("y", ref("y")), val(1))),
		e, "expected the outermost redex first")

	_, stepped, err = red.Step(val(1))
	require.NoError(t, err)
	assert.False(t, stepped)

	_, _, err = red.Step(app(ref("f"), Lambda[num, string]{Binder: "x"}))
	assert.Equal(t, ErrInvalidExpr, err)
}

func Test_Reducer_ignoredRenamer(t *testing.T) {
	var logged []string
	red := NewReducer[num, string](
		WithRenamer[int](func(i int, _ func(int) bool) int { return i + 1 }),
		WithLogf(func(mess string, args ...interface{}) {
			logged = append(logged, fmt.Sprintf(mess, args...))
		}),
	)
	assert.Nil(t, red.rename)
	assert.Equal(t, []string{"ignoring renamer lambda.Renamer[int]"}, logged)
}

type reduceTestCases []reduceTestCase

func (rts reduceTestCases) run(t *testing.T) {
	{
		var exclusive []reduceTestCase
		for _, rt := range rts {
			if rt.exclusive {
				exclusive = append(exclusive, rt)
			}
		}
		if len(exclusive) > 0 {
			rts = exclusive
		}
	}
	for _, rt := range rts {
		t.Run(rt.name, rt.run)
	}
}

func reduceTest(name string) (rt reduceTestCase) {
	rt.name = name
	return rt
}

type reduceTestCase struct {
	name    string
	input   expr
	toks    []tok
	opts    []Option
	timeout time.Duration
	expect  []func(t *testing.T, res expr, red *Reducer[num, string])
	wantErr error
	panics  bool
	trace   *[]string

	exclusive bool
}

func (rt reduceTestCase) apply(wraps ...func(reduceTestCase) reduceTestCase) reduceTestCase {
	for _, wrap := range wraps {
		rt = wrap(rt)
	}
	return rt
}

func (rt reduceTestCase) exclusiveTest() reduceTestCase {
	rt.exclusive = true
	return rt
}

func (rt reduceTestCase) withTokens(toks ...tok) reduceTestCase {
	rt.toks = toks
	return rt
}

func (rt reduceTestCase) withExpr(e expr) reduceTestCase {
	rt.input = e
	return rt
}

func (rt reduceTestCase) withOptions(opts ...Option) reduceTestCase {
	rt.opts = append(rt.opts[:len(rt.opts):len(rt.opts)], opts...)
	return rt
}

func (rt reduceTestCase) withTimeout(timeout time.Duration) reduceTestCase {
	rt.timeout = timeout
	return rt
}

func (rt reduceTestCase) expectError(err error) reduceTestCase {
	rt.wantErr = err
	return rt
}

func (rt reduceTestCase) expectPanic() reduceTestCase {
	rt.panics = true
	return rt
}

func (rt reduceTestCase) expectResult(e expr) reduceTestCase {
	rt.expect = append(rt.expect[:len(rt.expect):len(rt.expect)], func(t *testing.T, res expr, red *Reducer[num, string]) {
		assert.Equal(t, e, res, "expected normal form")
	})
	return rt
}

func (rt reduceTestCase) expectSteps(n int) reduceTestCase {
	rt.expect = append(rt.expect[:len(rt.expect):len(rt.expect)], func(t *testing.T, res expr, red *Reducer[num, string]) {
		assert.Equal(t, n, red.Steps(), "expected step count")
	})
	return rt
}

func (rt reduceTestCase) expectTrace(lines ...string) reduceTestCase {
	trace := new([]string)
	rt.trace = trace
	rt.expect = append(rt.expect[:len(rt.expect):len(rt.expect)], func(t *testing.T, res expr, red *Reducer[num, string]) {
		assert.Equal(t, lines, *trace, "expected trace")
	})
	return rt
}

func (rt reduceTestCase) run(t *testing.T) {
	const defaultTimeout = time.Second
	timeout := rt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	input := rt.input
	if rt.toks != nil {
		e, err := Parse[num, string](rt.toks)
		require.NoError(t, err, "must parse input tokens")
		input = e
	}

	logf := t.Logf
	if trace := rt.trace; trace != nil {
		logf = func(mess string, args ...interface{}) {
			*trace = append(*trace, fmt.Sprintf(mess, args...))
		}
	}
	red := NewReducer[num, string](Options(rt.opts...), WithLogf(logf))

	res, err := red.Normalize(ctx, input)
	switch {
	case rt.panics:
		assert.True(t, panicerr.IsPanic(err), "expected a recovered panic, got %v", err)
	case rt.wantErr != nil:
		if !errors.Is(err, rt.wantErr) {
			assert.Equal(t, rt.wantErr, err, "expected error")
		}
	default:
		assert.NoError(t, err, "unexpected reduce error")
	}

	if !t.Failed() {
		for _, expect := range rt.expect {
			expect(t, res, red)
		}
	}
}
