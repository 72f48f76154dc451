package lambda

// @generated from reducer_test.go

//go:generate go run scripts/gen_expects.go -- reducer_test.go reduce_expects_test.go

import "time"

func withReduceTokens(toks ...tok) func(reduceTestCase) reduceTestCase {
	return func(rt reduceTestCase) reduceTestCase {
		return rt.withTokens(toks...)
	}
}

func withReduceExpr(e expr) func(reduceTestCase) reduceTestCase {
	return func(rt reduceTestCase) reduceTestCase {
		return rt.withExpr(e)
	}
}

func withReduceOptions(opts ...Option) func(reduceTestCase) reduceTestCase {
	return func(rt reduceTestCase) reduceTestCase {
		return rt.withOptions(opts...)
	}
}

func withReduceTimeout(timeout time.Duration) func(reduceTestCase) reduceTestCase {
	return func(rt reduceTestCase) reduceTestCase {
		return rt.withTimeout(timeout)
	}
}

func expectReduceError(err error) func(reduceTestCase) reduceTestCase {
	return func(rt reduceTestCase) reduceTestCase {
		return rt.expectError(err)
	}
}

func expectReduceResult(e expr) func(reduceTestCase) reduceTestCase {
	return func(rt reduceTestCase) reduceTestCase {
		return rt.expectResult(e)
	}
}

func expectReduceSteps(n int) func(reduceTestCase) reduceTestCase {
	return func(rt reduceTestCase) reduceTestCase {
		return rt.expectSteps(n)
	}
}

func expectReduceTrace(lines ...string) func(reduceTestCase) reduceTestCase {
	return func(rt reduceTestCase) reduceTestCase {
		return rt.expectTrace(lines...)
	}
}
