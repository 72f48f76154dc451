package lambda

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BetaReduce(t *testing.T) {
	// (\x.x) 0 -b-> 0
	got, err := BetaReduce[num, string](app(lam("x", ref("x")), val(0)))
	require.NoError(t, err)
	assert.Equal(t, val(0), got)

	// (\x.(\y.x)) 0 -b-> (\y.0)
	got, err = BetaReduce[num, string](app(lam("x", lam("y", ref("x"))), val(0)))
	require.NoError(t, err)
	assert.Equal(t, lam("y", val(0)), got)

	// (\f.f 0) (\x.x) -b-> (\x.x) 0 -b-> 0
	got, err = BetaReduce[num, string](app(lam("f", app(ref("f"), val(0))), lam("x", ref("x"))))
	require.NoError(t, err)
	assert.Equal(t, app(lam("x", ref("x")), val(0)), got)
	got, err = BetaReduce[num, string](got)
	require.NoError(t, err)
	assert.Equal(t, val(0), got)

	// (\x.x x) (\y.y) duplicates the argument
	got, err = BetaReduce[num, string](app(lam("x", app(ref("x"), ref("x"))), lam("y", ref("y"))))
	require.NoError(t, err)
	assert.Equal(t, app(lam("y", ref("y")), lam("y", ref("y"))), got)

	// (\x.0) y discards the argument
	got, err = BetaReduce[num, string](app(lam("x", val(0)), ref("y")))
	require.NoError(t, err)
	assert.Equal(t, val(0), got)
}

func Test_BetaReduce_notReducible(t *testing.T) {
	for _, e := range []expr{
		val(0),
		ref("x"),
		lam("x", app(lam("y", ref("y")), ref("x"))),
		app(ref("f"), val(0)),
		app(app(lam("x", ref("x")), ref("f")), val(0)),
	} {
		t.Run(e.String(), func(t *testing.T) {
			got, err := BetaReduce[num, string](e)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrNotReducible), "expected not reducible, got %v", err)
			var nre *NotReducibleError[num, string]
			if assert.True(t, errors.As(err, &nre)) {
				assert.Equal(t, e, nre.Expr)
			}
		})
	}
}

func Test_BetaReduce_capture(t *testing.T) {
	// (\x.\y.x) y must not become \y.y
	redex := app(lam("x", lam("y", ref("x"))), ref("y"))

	_, err := BetaReduce[num, string](redex)
	assert.Equal(t, &CaptureError[string]{Binder: "y", Var: "x"}, err)

	got, err := BetaReduceRenaming[num, string](redex, prime)
	require.NoError(t, err)
	assert.Equal(t, lam("y'", ref("y")), got)
}

func Test_DeltaReduce(t *testing.T) {
	got, err := DeltaReduce[num, string](app(val(2), val(3)))
	require.NoError(t, err)
	assert.Equal(t, val(5), got)

	_, err = DeltaReduce[num, string](app(val(0), val(3)))
	assert.True(t, errors.Is(err, errZeroCall), "expected combine failure, got %v", err)
	var ce *CombineError[num]
	if assert.True(t, errors.As(err, &ce)) {
		assert.Equal(t, num(0), ce.Fun)
		assert.Equal(t, num(3), ce.Arg)
	}
	assert.EqualError(t, err, "cannot combine 0 with 3: zero is not callable")

	for _, e := range []expr{
		val(1),
		app(val(1), ref("x")),
		app(lam("x", ref("x")), val(1)),
	} {
		_, err := DeltaReduce[num, string](e)
		assert.True(t, errors.Is(err, ErrNotReducible), "expected %v not reducible, got %v", e, err)
	}
}
