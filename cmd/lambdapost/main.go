// Command lambdapost normalizes lambda calculus programs written as postfix
// words, one token per word:
//
//	x y z       identifiers
//	42 'a' + *  constants: integers, rune literals, and arithmetic primitives
//	\ (or λ)    abstraction over the variable beneath the body
//	@           application of the function beneath the argument
//
// Each program ends with ";" or the end of input, and is printed in normal
// form. Ending a program with ":name" instead binds its normal form to name
// in all later programs. With no file arguments, standard input is read.
//
// Example:
//
//	$ echo 'x x \ 1 @ ; + 2 @ 3 @' | lambdapost -delta
//	1
//	5
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/peterh/liner"
	"github.com/samber/lo"

	"github.com/jcorbin/lambda"
	"github.com/jcorbin/lambda/arith"
	"github.com/jcorbin/lambda/internal/fileinput"
	"github.com/jcorbin/lambda/internal/flushio"
	"github.com/jcorbin/lambda/internal/logio"
)

const historyFile = ".lambdapost_history"

func main() {
	ctx := context.Background()

	var (
		timeout     time.Duration
		trace       bool
		maxSteps    int
		delta       bool
		rename      bool
		tokens      bool
		tee         string
		interactive bool
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for each program")
	flag.BoolVar(&trace, "trace", false, "enable trace logging of every reduction step")
	flag.IntVar(&maxSteps, "max-steps", 0, "limit the reduction steps of each program")
	flag.BoolVar(&delta, "delta", false, "reduce applications of constants with their arithmetic")
	flag.BoolVar(&rename, "rename", false, "alpha-rename binders rather than fail on variable capture")
	flag.BoolVar(&tokens, "tokens", false, "print results as postfix words rather than lambda notation")
	flag.StringVar(&tee, "tee", "", "also write results into the named file")
	flag.BoolVar(&interactive, "i", false, "read programs interactively, line by line")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)

	if err := checkMaxSteps(maxSteps); err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}

	opts := []lambda.Option{
		lambda.WithMaxSteps(maxSteps),
		lambda.WithDelta(delta),
	}
	if trace {
		opts = append(opts, lambda.WithLogf(log.Leveledf("TRACE")))
	}

	out := flushio.NewWriteFlusher(os.Stdout)
	if tee != "" {
		f, err := os.Create(tee)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(log.ExitCode())
		}
		defer f.Close()
		out = flushio.WriteFlushers(out, flushio.NewWriteFlusher(f))
	}

	var renamer lambda.Renamer[string]
	if rename {
		renamer = arith.Fresh
		opts = append(opts, lambda.WithRenamer[string](renamer))
	}

	s := newSession(&log, out, opts...)
	s.rename = renamer
	s.timeout = timeout
	s.tokens = tokens
	s.stacks = trace

	if interactive {
		log.ErrorIf(runREPL(ctx, s))
	} else {
		inputs, err := openInputs(flag.Args())
		log.ErrorIf(err)
		log.ErrorIf(s.runInput(ctx, &fileinput.Input{Queue: inputs}))
	}

	if code := log.ExitCode(); code != 0 {
		out.Flush()
		os.Exit(code)
	}
}

func checkMaxSteps(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid -max-steps %v, must not be negative", n)
	}
	return nil
}

// openInputs opens each named file, or standard input for "-" or no names.
func openInputs(names []string) ([]io.Reader, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var errs []error
	inputs := lo.FilterMap(names, func(name string, _ int) (io.Reader, bool) {
		if name == "-" {
			return fileinput.NamedReader("<stdin>", os.Stdin), true
		}
		f, err := os.Open(name)
		if err != nil {
			errs = append(errs, err)
			return nil, false
		}
		return f, true
	})
	return inputs, errors.Join(errs...)
}

func runREPL(ctx context.Context, s *session) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	err := s.repl(ctx, ln)
	fmt.Println()

	if histPath != "" {
		if f, ferr := os.Create(histPath); ferr == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
	return err
}
