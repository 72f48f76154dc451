// gen_expects generates, for each `with*` and `expect*` builder method on a
// *TestCase type, a free function returning it as a wrapper usable with the
// test case's apply method.
//
// Usage: go run scripts/gen_expects.go -- [input.go [output.go]]
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		imports := exec.CommandContext(ctx, "goimports")
		pipe, err := imports.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		imports.Stdout = out
		imports.Stderr = os.Stderr

		out = pipe

		close(ready)
		if err := imports.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

var (
	packageClause = regexp.MustCompile(`^package (\w+)`)
	builderMethod = regexp.MustCompile(`^func \((\w+) (\w+)TestCase\) (expect|with)(\w+)\((.+?)\) (\w+)TestCase \{`)
)

func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(1024)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Bytes()

		if match := packageClause.FindSubmatch(line); len(match) > 0 {
			fmt.Fprintf(&buf, "package %s\n\n", match[1])
			fmt.Fprintf(&buf, "// @generated from %v\n\n", in.Name())
			if args := flag.Args(); len(args) >= 2 {
				fmt.Fprintf(&buf, "//go:generate go run scripts/gen_expects.go -- %v\n\n", strings.Join(args, " "))
			}
		}

		if match := builderMethod.FindSubmatch(line); len(match) > 0 {
			var (
				recv     = match[1]
				caseName = match[2]
				baseName = match[3]
				whatName = match[4]
				params   = match[5]
			)
			if !bytes.Equal(caseName, match[6]) {
				continue
			}
			caseType := string(caseName) + "TestCase"

			fmt.Fprintf(&buf, "func %s%s%s(%s) func(%s) %s {\n",
				baseName, exported(string(caseName)), whatName, params, caseType, caseType)
			fmt.Fprintf(&buf, "\treturn func(%s %s) %s {\n", recv, caseType, caseType)
			fmt.Fprintf(&buf, "\t\treturn %s.%s%s(", recv, baseName, whatName)
			for i, param := range bytes.Split(params, []byte(",")) {
				if i > 0 {
					buf.WriteString(", ")
				}
				fields := bytes.Fields(param)
				buf.Write(fields[0])
				if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
					buf.WriteString("...")
				}
			}
			buf.WriteString(")\n\t}\n}\n\n")
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

func exported(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}
