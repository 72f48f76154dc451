/* Package lambda: an embeddable core for the untyped lambda calculus.

Programs come in as flat postfix token sequences; there are only four tokens:

	x      an identifier, pushes a variable
	v      a constant value, pushes a constant
	\      the lambda marker, pops a body and then a binder variable
	@      the apply marker, pops an argument and then a function

So `\x.x` is the sequence `x x \`, and `(\f. f 0) (\x. x)` is
`f f 0 @ \ x x \ @`. Postfix needs no parentheses nor precedence: a single
operand stack is enough to parse it, see Parser.

The package is generic over the types of constants and symbols. Constants
must satisfy Value, which includes a Combine method: the "delta rule"
describing what applying one constant to another means (arithmetic
primitives, say). Symbols need only be comparable.

Parsed trees are immutable; Substitute and BetaReduce build new trees. Beta
reduction takes exactly one step, the Reducer drives repeated normal order
steps with an optional budget, since reduction need not terminate.

Variable capture is reported as a CaptureError unless a Renamer is supplied,
in which case the capturing binder is alpha-renamed first. Substitution under
a binder of the same name is silently skipped: that variable is not free
there.

See package arith for an example binding of integer constants with arithmetic
primitives and string symbols.
*/
package lambda
