// Package panicerr turns panics, and runtime.Goexit, within a function into
// plain error returns.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in its own goroutine, returning its error, or an error
// describing any panic or Goexit that cut it short. The name labels such
// errors.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			select {
			case errch <- exitError(name):
			default:
			}
		}()
		defer func() {
			if e := recover(); e != nil {
				select {
				case errch <- panicError{name, e, debug.Stack()}:
				default:
				}
			}
		}()
		errch <- f()
	}()
	return <-errch
}

type panicError struct {
	name  string
	value interface{}
	stack []byte
}

type exitError string

func (pe panicError) Error() string { return fmt.Sprint(pe) }

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "panicked: %v", pe.value)
	} else {
		fmt.Fprintf(f, "%v panicked: %v", pe.name, pe.value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\npanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe panicError) Unwrap() error {
	err, _ := pe.value.(error)
	return err
}

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsPanic returns true if err is, or wraps, a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// IsExit returns true if err is, or wraps, a recovered Goexit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}

// Stack returns the stack trace of a recovered panic, or "" if err is not one.
func Stack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
