package dxf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const resumableDefault = false

var (
	// ErrUnexpectedEndOfInput is returned when a mandatory field never
	// arrived because the source was exhausted.
	ErrUnexpectedEndOfInput error = errEndOfInput{}

	// ErrPutBackFull is returned when PutBack is called twice without an
	// intervening Next. The pair already held is kept.
	ErrPutBackFull error = errors.New("dxf: put-back slot already occupied")
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether the caller may skip to the next entity
	// boundary and keep reading. It is false when the stream itself is
	// unusable.
	Resumable() bool
}

// contextError allows Error instances to be enhanced with additional
// context about their origin.
type contextError interface {
	Error

	// withContext must not modify the error instance - it must clone and
	// return a new error with the context added.
	withContext(ctx string) error
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable returns whether or not the error leaves the stream positioned
// where the caller can skip to the next entity.
func Resumable(e error) bool {
	var de Error
	if errors.As(e, &de) {
		return de.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with additional context that allows the part of
// the entity that caused the problem to be identified. Underlying errors
// can be retrieved using Cause() or errors.Is/As.
//
// The input error is not modified - a new error is returned.
func WrapError(err error, ctx ...any) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case contextError:
		return e.withContext(ctxString(ctx))
	case errWrapped:
		return errWrapped{cause: e.cause, ctx: addCtx(e.ctx, ctxString(ctx))}
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

func ctxString(ctx []any) string {
	parts := make([]string, 0, len(ctx))
	for _, c := range ctx {
		parts = append(parts, fmt.Sprint(c))
	}
	return strings.Join(parts, "/")
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	}
	return add
}

// errWrapped allows arbitrary errors passed to WrapError to be enhanced with
// context and unwrapped with Cause()
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	}
	return e.cause.Error()
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

// errEndOfInput reports a structure cut short. When the cut was a code 0
// pair (the entity ended early) the stream is still usable.
type errEndOfInput struct {
	entityClosed bool
}

// ErrEntityClosed is the variant of ErrUnexpectedEndOfInput returned when
// a code 0 pair arrives where a mandatory field was expected. It matches
// ErrUnexpectedEndOfInput under errors.Is.
var ErrEntityClosed error = errEndOfInput{entityClosed: true}

func (e errEndOfInput) Error() string {
	if e.entityClosed {
		return "dxf: unexpected end of input (entity closed)"
	}
	return "dxf: unexpected end of input"
}

func (e errEndOfInput) Resumable() bool { return e.entityClosed }

// Is makes both variants match ErrUnexpectedEndOfInput. ErrEntityClosed
// matches only itself.
func (errEndOfInput) Is(target error) bool {
	return target == ErrUnexpectedEndOfInput
}

// UnexpectedCodeError is returned when a structurally required tag was
// expected but a different one was read.
type UnexpectedCodeError struct {
	Code int   // the tag that was read
	Want []int // the tags that would have been accepted, if known
	ctx  string
}

// Error implements the error interface
func (u UnexpectedCodeError) Error() string {
	out := "dxf: unexpected code " + strconv.Itoa(u.Code)
	if len(u.Want) > 0 {
		want := make([]string, len(u.Want))
		for i, w := range u.Want {
			want[i] = strconv.Itoa(w)
		}
		out += " (want " + strings.Join(want, " or ") + ")"
	}
	if u.ctx != "" {
		out += " at " + u.ctx
	}
	return out
}

// Resumable is always 'true' for UnexpectedCodeErrors: the offending pair
// is still in the stream.
func (u UnexpectedCodeError) Resumable() bool { return true }

func (u UnexpectedCodeError) withContext(ctx string) error { u.ctx = addCtx(u.ctx, ctx); return u }

// MalformedValueError is returned when a value is present but cannot be
// interpreted as the type the field requires.
type MalformedValueError struct {
	Code   int    // tag of the offending pair
	Want   Kind   // kind required by the field
	Got    Kind   // kind actually carried
	Reason string // optional detail, e.g. "negative count"
	ctx    string
}

// Error implements the error interface
func (m MalformedValueError) Error() string {
	out := "dxf: malformed value for code " + strconv.Itoa(m.Code)
	switch {
	case m.Reason != "":
		out += ": " + m.Reason
	case m.Want != m.Got:
		out += ": want " + m.Want.String() + ", got " + m.Got.String()
	}
	if m.ctx != "" {
		out += " at " + m.ctx
	}
	return out
}

// Resumable returns 'true' for MalformedValueErrors
func (m MalformedValueError) Resumable() bool { return true }

func (m MalformedValueError) withContext(ctx string) error { m.ctx = addCtx(m.ctx, ctx); return m }

// CountError is returned when two sequences that must pair up
// element-for-element have different lengths.
type CountError struct {
	Wanted int
	Got    int
	ctx    string
}

// Error implements the error interface
func (c CountError) Error() string {
	out := "dxf: wanted " + strconv.Itoa(c.Wanted) + " elements; got " + strconv.Itoa(c.Got)
	if c.ctx != "" {
		out += " at " + c.ctx
	}
	return out
}

// Resumable is always 'true' for CountErrors
func (c CountError) Resumable() bool { return true }

func (c CountError) withContext(ctx string) error { c.ctx = addCtx(c.ctx, ctx); return c }

// SyntaxError is returned by the tokenizer when a line cannot be parsed.
// The stream cannot be re-synchronised after it.
type SyntaxError struct {
	Line int    // 1-based line number
	Text string // offending line
	Msg  string
}

// Error implements the error interface
func (s SyntaxError) Error() string {
	return "dxf: line " + strconv.Itoa(s.Line) + ": " + s.Msg + " " + strconv.Quote(s.Text)
}

// Resumable returns 'false' for SyntaxErrors
func (s SyntaxError) Resumable() bool { return false }
