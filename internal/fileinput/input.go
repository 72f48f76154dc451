// Package fileinput reads words from a queue of named input streams, tracking
// line locations for error reporting.
package fileinput

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jcorbin/lambda/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer holding its content.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of input streams.
// Both the current and last scanned lines are tracked.
type Input struct {
	src   io.Reader
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// Comment starts a comment running to the end of its line, when it begins a
// word.
const Comment = '#'

// ScanWord skips space and comments, and then returns the next run of
// non-space runes, along with the location where it started. Returns io.EOF
// once all streams are exhausted.
func (in *Input) ScanWord() (string, Location, error) {
	var (
		sb      strings.Builder
		loc     Location
		comment bool
	)
	for {
		r, _, err := in.ReadRune()
		if r == 0 {
			if err == nil {
				// stream change ends any word or comment
				comment = false
				if sb.Len() > 0 {
					return sb.String(), loc, nil
				}
				continue
			}
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), loc, nil
			}
			return "", loc, err
		}

		switch {
		case comment:
			comment = r != '\n'
		case unicode.IsSpace(r) || unicode.IsControl(r):
			if sb.Len() > 0 {
				return sb.String(), loc, nil
			}
		case r == Comment && sb.Len() == 0:
			comment = true
		default:
			if sb.Len() == 0 {
				loc = in.Scan.Location
			}
			sb.WriteRune(r)
		}
	}
}

// ReadRune reads one rune from the current input stream, appending it into the
// Scan line, and rolling Scan over to Last after line feed. A 0 rune with nil
// error marks a switch to the next stream.
func (in *Input) ReadRune() (rune, int, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, 0, io.EOF
	}

	r, n, err := in.rr.ReadRune()
	if r == '\n' {
		in.nextLine()
	} else if n > 0 {
		in.Scan.WriteRune(r)
	}

	if n > 0 && err == nil {
		return r, n, nil
	}
	if err == io.EOF && in.nextIn() {
		err = nil
	}
	return 0, 0, err
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if cl, ok := in.src.(io.Closer); ok {
		cl.Close()
	}
	in.src, in.rr = nil, nil
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.src, in.rr = r, runeio.NewReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

// NamedReader attaches a name to a reader, for Location reporting.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
