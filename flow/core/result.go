package core

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// modulePrefix identifies frames that belong to this module's flow packages.
const modulePrefix = "github.com/lguimbarda/lambda-basics/flow/"

// ErrPanic wraps a recovered panic value as an error.
// It is produced when a user-provided function panics inside a stream stage.
// Stack holds the goroutine stack with flow-internal frames removed.
type ErrPanic struct {
	Value any
	Stack string
}

func (e ErrPanic) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// NewPanicError creates an ErrPanic from a recovered value.
// Must be called from the deferred function that recovered.
func NewPanicError(recovered any) ErrPanic {
	// skip: runtime.Callers, captureStack, NewPanicError, deferred func
	return ErrPanic{
		Value: recovered,
		Stack: cleanStack(captureStack(4)),
	}
}

func captureStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}

// cleanStack drops flow-internal frames (function line plus its file line)
// so that the first frame shown is user code.
func cleanStack(stack string) string {
	var kept []string
	skipFile := false
	for _, line := range strings.Split(stack, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "\t") {
			skipFile = strings.Contains(line, modulePrefix)
			if skipFile {
				continue
			}
		} else if skipFile {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// Result represents the outcome of processing an item in the stream.
// It exists in one of three states:
//   - Value: successful processing result (IsValue() returns true)
//   - Error: processing failure that is non-fatal (IsError() returns true)
//   - Sentinel: stream control signal like end-of-stream (IsSentinel() returns true)
//
// Errors do not stop a stream by themselves; terminals decide whether an
// error ends processing.
type Result[OUT any] struct {
	value      OUT
	err        error
	isSentinel bool
}

// NewResult creates a Result with explicit control over all fields.
// Prefer Ok(), Err(), Sentinel(), or EndOfStream() for common cases.
func NewResult[OUT any](value OUT, err error, isSentinel bool) Result[OUT] {
	return Result[OUT]{value: value, err: err, isSentinel: isSentinel}
}

// Ok creates a successful Result containing the given value.
func Ok[OUT any](value OUT) Result[OUT] {
	return Result[OUT]{value: value}
}

// Err creates an error Result.
func Err[OUT any](err error) Result[OUT] {
	return Result[OUT]{err: err}
}

// Sentinel creates a sentinel Result with an optional descriptive error.
func Sentinel[OUT any](err error) Result[OUT] {
	return Result[OUT]{err: err, isSentinel: true}
}

// ErrEndOfStream is the sentinel error indicating normal stream termination.
var ErrEndOfStream = errors.New("end of stream")

// EndOfStream creates a sentinel Result indicating the stream has ended normally.
func EndOfStream[OUT any]() Result[OUT] {
	return Sentinel[OUT](ErrEndOfStream)
}

// IsValue returns true if this Result contains a successful value.
func (r Result[OUT]) IsValue() bool {
	return r.err == nil && !r.isSentinel
}

// IsSentinel returns true if this Result is a sentinel (control signal).
func (r Result[OUT]) IsSentinel() bool {
	return r.isSentinel
}

// IsError returns true if this Result contains a processing error.
func (r Result[OUT]) IsError() bool {
	return r.err != nil && !r.isSentinel
}

// Value returns the contained value, or the zero value for errors and sentinels.
func (r Result[OUT]) Value() OUT {
	return r.value
}

// Error returns the error of an error Result and nil otherwise.
func (r Result[OUT]) Error() error {
	if r.isSentinel {
		return nil
	}
	return r.err
}

// Sentinel returns the sentinel's context error, or nil for non-sentinels.
func (r Result[OUT]) Sentinel() error {
	if !r.isSentinel {
		return nil
	}
	return r.err
}

// Unwrap returns the value and error together.
func (r Result[OUT]) Unwrap() (OUT, error) {
	return r.value, r.err
}
