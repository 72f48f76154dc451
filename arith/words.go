package arith

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcorbin/lambda"
	"github.com/jcorbin/lambda/internal/runeio"
)

// ParseWord converts one whitespace-delimited word into a token:
//
//	\ λ           lambda marker
//	@             apply marker
//	+ - * /       primitive constants
//	42 -7         integer constants
//	'a' <ESC> ^C  rune literals, as integer constants
//	anything else identifiers
func ParseWord(word string) (Token, error) {
	switch word {
	case "":
		return Token{}, fmt.Errorf("empty word")
	case `\`, "λ":
		return lambda.LambdaMark[Value, string](), nil
	case "@":
		return lambda.ApplyMark[Value, string](), nil
	}

	for op := AddOp; int(op) < len(opNames); op++ {
		if word == opNames[op] {
			return lambda.Const[Value, string](Prim(op)), nil
		}
	}

	if n, err := strconv.Atoi(word); err == nil {
		return lambda.Const[Value, string](Int(n)), nil
	}

	if isRuneWord(word) {
		r, err := runeio.UnquoteRune(word)
		if err != nil {
			return Token{}, fmt.Errorf("invalid rune literal %q: %w", word, err)
		}
		return lambda.Const[Value, string](Int(int(r))), nil
	}

	return lambda.Ident[Value](word), nil
}

func isRuneWord(word string) bool {
	switch word[0] {
	case '\'':
		return true
	case '<':
		return strings.HasSuffix(word, ">") && len(word) > 2
	case '^':
		return len(word) > 1
	}
	return false
}

// ParseWords converts each word, failing on the first invalid one.
func ParseWords(words ...string) ([]Token, error) {
	toks := make([]Token, 0, len(words))
	for _, word := range words {
		tok, err := ParseWord(word)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// Parse parses a program given as a single string of words.
func Parse(program string) (Expr, error) {
	toks, err := ParseWords(strings.Fields(program)...)
	if err != nil {
		return nil, err
	}
	return lambda.Parse[Value, string](toks)
}

// Format renders tokens back into words. Partially applied primitives are
// spelled out as applications, so Parse of the result reduces, with the delta
// rule, to the same program.
func Format(toks []Token) string {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if tok.Kind == lambda.ConstToken && len(tok.Val.Args) > 0 {
			sb.WriteString(tok.Val.Op.String())
			for _, arg := range tok.Val.Args {
				fmt.Fprintf(&sb, " %v @", arg)
			}
			continue
		}
		sb.WriteString(tok.String())
	}
	return sb.String()
}
