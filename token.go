package lambda

import "fmt"

// Value is the capability contract for constant values.
//
// Dup must return a copy that shares no mutable state with the receiver; it is
// called whenever a constant is copied into a new tree. Combine is the delta
// rule: it says what applying constant f to constant x means, most domains
// return an error for most pairs.
type Value[V any] interface {
	fmt.Stringer
	Dup() V
	Combine(x V) (V, error)
}

// TokenKind distinguishes the four token variants; the zero kind is invalid.
type TokenKind uint8

// Token kinds.
const (
	IdentToken TokenKind = iota + 1
	ConstToken
	LambdaToken
	ApplyToken
)

var tokenKindNames = [...]string{
	IdentToken:  "ident",
	ConstToken:  "const",
	LambdaToken: "lambda",
	ApplyToken:  "apply",
}

func (kind TokenKind) String() string {
	if int(kind) < len(tokenKindNames) && tokenKindNames[kind] != "" {
		return tokenKindNames[kind]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(kind))
}

// Token is one element of a postfix program. Sym is only meaningful for
// IdentToken, Val only for ConstToken.
type Token[V Value[V], S comparable] struct {
	Kind TokenKind
	Sym  S
	Val  V
}

// Ident returns an identifier token.
func Ident[V Value[V], S comparable](sym S) Token[V, S] {
	return Token[V, S]{Kind: IdentToken, Sym: sym}
}

// Const returns a constant token.
func Const[V Value[V], S comparable](val V) Token[V, S] {
	return Token[V, S]{Kind: ConstToken, Val: val}
}

// LambdaMark returns the lambda marker token.
func LambdaMark[V Value[V], S comparable]() Token[V, S] {
	return Token[V, S]{Kind: LambdaToken}
}

// ApplyMark returns the apply marker token.
func ApplyMark[V Value[V], S comparable]() Token[V, S] {
	return Token[V, S]{Kind: ApplyToken}
}

func (tok Token[V, S]) String() string {
	switch tok.Kind {
	case IdentToken:
		return fmt.Sprint(tok.Sym)
	case ConstToken:
		return tok.Val.String()
	case LambdaToken:
		return `\`
	case ApplyToken:
		return "@"
	default:
		return fmt.Sprintf("<invalid %v>", tok.Kind)
	}
}
