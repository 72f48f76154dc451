package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jcorbin/lambda"
	"github.com/jcorbin/lambda/arith"
	"github.com/jcorbin/lambda/internal/fileinput"
	"github.com/jcorbin/lambda/internal/flushio"
	"github.com/jcorbin/lambda/internal/logio"
	"github.com/jcorbin/lambda/internal/panicerr"
	"github.com/jcorbin/lambda/internal/runeio"
)

const (
	endWord    = ";"
	defineMark = ":"
)

// session evaluates a stream of postfix word programs, each ended by ";" or
// the end of input. A program may end with a ":name" word instead, which
// binds its normal form to name for later programs.
type session struct {
	log     *logio.Logger
	out     flushio.WriteFlusher
	red     *lambda.Reducer[arith.Value, string]
	rename  lambda.Renamer[string]
	timeout time.Duration
	tokens  bool
	stacks  bool

	env    arith.Env
	parser lambda.Parser[arith.Value, string]
	start  fileinput.Location
	define string
	failed bool
}

func newSession(log *logio.Logger, out io.Writer, opts ...lambda.Option) *session {
	return &session{
		log: log,
		out: flushio.NewWriteFlusher(out),
		red: lambda.NewReducer[arith.Value, string](opts...),
		env: make(arith.Env),
	}
}

// runInput evaluates every program in in, then flushes output.
func (s *session) runInput(ctx context.Context, in *fileinput.Input) error {
	if err := s.feed(ctx, in); err != nil {
		return err
	}
	if !s.failed {
		s.finish(ctx)
	}
	s.reset()
	return s.out.Flush()
}

// repl reads lines from ln, evaluating each program once it parses as a
// single expression, or is explicitly ended. Lines are read until EOF.
func (s *session) repl(ctx context.Context, ln *liner.State) error {
	const (
		prompt = "λ> "
		cont   = ".. "
	)
	for n := 1; ; n++ {
		p := prompt
		if s.pending() {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			s.reset()
			continue
		} else if errors.Is(err, io.EOF) {
			return s.out.Flush()
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if err := s.feed(ctx, &fileinput.Input{Queue: []io.Reader{
			fileinput.NamedReader(fmt.Sprintf("<repl %v>", n), strings.NewReader(line)),
		}}); err != nil {
			return err
		}
		if s.failed {
			s.reset()
		} else if s.parser.Depth() == 1 || s.define != "" {
			s.finish(ctx)
		}
		if err := s.out.Flush(); err != nil {
			return err
		}
	}
}

// feed pushes every word of in into the parser, finishing each program at
// its end word. A program cut off by in's end is left pending.
func (s *session) feed(ctx context.Context, in *fileinput.Input) error {
	for {
		word, loc, err := in.ScanWord()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if !s.pending() {
			s.start = loc
		}
		if word == endWord {
			if !s.failed {
				s.finish(ctx)
			}
			s.reset()
			continue
		}
		if s.failed {
			continue
		}

		if s.define != "" {
			s.fail(loc, fmt.Errorf("expected %q after definition of %q, got %q", endWord, s.define, word))
		} else if name := strings.TrimPrefix(word, defineMark); name != word && name != "" {
			s.define = name
		} else if tok, err := arith.ParseWord(word); err != nil {
			s.fail(loc, err)
		} else if err := s.parser.Push(tok); err != nil {
			s.fail(loc, err)
		}
	}
}

func (s *session) pending() bool {
	return s.parser.Depth() > 0 || s.define != "" || s.failed
}

func (s *session) reset() {
	s.parser.Reset()
	s.define = ""
	s.failed = false
}

func (s *session) fail(loc fileinput.Location, err error) {
	s.log.Errorf("%v: %v", loc, err)
	if s.stacks && panicerr.IsPanic(err) {
		s.log.Printf("STACK", "%s", panicerr.Stack(err))
	}
	s.failed = true
}

// finish takes the parsed program, binds any defined names into it, and
// normalizes it. The result is either printed, or bound by definition.
func (s *session) finish(ctx context.Context) {
	defer s.reset()

	if s.parser.Depth() == 0 && s.define == "" {
		return
	}
	e, err := s.parser.Result()
	if err != nil {
		s.fail(s.start, err)
		return
	}

	if len(s.env) > 0 {
		if e, err = lambda.BindRenaming[arith.Value, string](e, s.env, s.rename); err != nil {
			s.fail(s.start, err)
			return
		}
	}

	if s.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	res, err := s.red.Normalize(ctx, e)
	if err != nil {
		s.fail(s.start, err)
		return
	}

	if s.define != "" {
		s.env[s.define] = res
		return
	}
	s.print(res)
}

func (s *session) print(e arith.Expr) {
	line := e.String()
	if s.tokens {
		line = arith.Format(lambda.Encode[arith.Value, string](e))
	}
	if _, err := runeio.WriteANSIString(s.out, line+"\n"); err != nil {
		s.log.Errorf("output: %v", err)
	}
}
