package lambda

// Parser builds one expression from a postfix token stream using a single
// operand stack. The zero value is ready to use.
type Parser[V Value[V], S comparable] struct {
	stack []Expr[V, S]
}

// Parse parses a complete program.
func Parse[V Value[V], S comparable](toks []Token[V, S]) (Expr[V, S], error) {
	var p Parser[V, S]
	for i, tok := range toks {
		if err := p.Push(tok); err != nil {
			return nil, &ParseError{i, err}
		}
	}
	e, err := p.Result()
	if err != nil {
		return nil, &ParseError{len(toks), err}
	}
	return e, nil
}

// Depth returns the number of operands on the stack.
func (p *Parser[V, S]) Depth() int { return len(p.stack) }

// Reset discards all operands.
func (p *Parser[V, S]) Reset() { p.stack = p.stack[:0] }

// Result returns the parsed expression, which requires exactly one operand
// remaining on the stack; the stack is left empty on success.
func (p *Parser[V, S]) Result() (Expr[V, S], error) {
	if len(p.stack) != 1 {
		return nil, ErrEndOfInput
	}
	e := p.stack[0]
	p.stack = p.stack[:0]
	return e, nil
}

// Push processes one token. If it fails, the stack is left as it was.
func (p *Parser[V, S]) Push(tok Token[V, S]) error {
	switch tok.Kind {
	case ConstToken:
		p.push(Constant[V, S]{tok.Val.Dup()})

	case IdentToken:
		p.push(Variable[V, S]{tok.Sym})

	case LambdaToken:
		if len(p.stack) < 2 {
			return ErrStackUnderflow
		}
		body, arg := p.peek(0), p.peek(1)
		v, isVar := arg.(Variable[V, S])
		if !isVar {
			return ErrNotAVariable
		}
		p.drop(2)
		p.push(Lambda[V, S]{v.Sym, body})

	case ApplyToken:
		if len(p.stack) < 2 {
			return ErrStackUnderflow
		}
		arg, fun := p.peek(0), p.peek(1)
		p.drop(2)
		p.push(Application[V, S]{fun, arg})

	default:
		return UnexpectedTokenError[V, S]{tok}
	}
	return nil
}

func (p *Parser[V, S]) push(e Expr[V, S]) {
	p.stack = append(p.stack, e)
}

func (p *Parser[V, S]) peek(i int) Expr[V, S] {
	return p.stack[len(p.stack)-1-i]
}

func (p *Parser[V, S]) drop(n int) {
	i := len(p.stack) - n
	for j := i; j < len(p.stack); j++ {
		p.stack[j] = nil
	}
	p.stack = p.stack[:i]
}
