// Package langerr defines the structured error record the evaluator
// raises. Every error carries a Kind, a human message, and the
// source span of the offending AST node, and bubbles as a plain Go error
// to the nearest host entry point — the evaluator has no user-visible
// try/catch.
package langerr

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
)

// Kind is one of the six error categories the evaluator raises.
type Kind string

const (
	TypeError     Kind = "TypeError"
	NameError     Kind = "NameError"
	ArityError    Kind = "ArityError"
	RangeError    Kind = "RangeError"
	RuntimeError  Kind = "RuntimeError"
	InternalError Kind = "InternalError"
)

// Error is the structured record carried to the host.
type Error struct {
	Kind    Kind
	Message string
	Span    ast.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func new(kind Kind, span ast.Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}

func NewType(span ast.Span, format string, args ...any) *Error {
	return new(TypeError, span, format, args...)
}

func NewName(span ast.Span, format string, args ...any) *Error {
	return new(NameError, span, format, args...)
}

func NewArity(span ast.Span, format string, args ...any) *Error {
	return new(ArityError, span, format, args...)
}

func NewRange(span ast.Span, format string, args ...any) *Error {
	return new(RangeError, span, format, args...)
}

func NewRuntime(span ast.Span, format string, args ...any) *Error {
	return new(RuntimeError, span, format, args...)
}

func NewInternal(span ast.Span, format string, args ...any) *Error {
	return new(InternalError, span, format, args...)
}

// Wrap annotates err raised by an external callable with the call site's
// span and the name of the builtin that raised it.
func Wrap(span ast.Span, builtin string, err error) *Error {
	if le, ok := err.(*Error); ok {
		return &Error{Kind: RuntimeError, Message: fmt.Sprintf("%s: %s", builtin, le.Message), Span: span}
	}
	return new(RuntimeError, span, "%s: %s", builtin, err.Error())
}

// As reports whether err is a *Error of the given kind.
func As(err error, kind Kind) bool {
	le, ok := err.(*Error)
	return ok && le.Kind == kind
}

// Catalog of reusable message formats, matching the spirit (not the
// text) of a message catalog: category-qualified, present tense, with
// the offending operands named.
const (
	MsgUnknownOperator   = "unknown operator %s for %s and %s"
	MsgTypeMismatch      = "%s requires %s, got %s"
	MsgNotIterable       = "value of type %s is not iterable"
	MsgNotCallable       = "value of type %s is not callable"
	MsgNotAMap           = "value of type %s is not a map"
	MsgNotAList          = "value of type %s is not a list"
	MsgIdentifierMissing = "identifier %q not found"
	MsgArityMismatch     = "%s expects %d argument(s), got %d"
	MsgIndexOutOfRange   = "index %d out of range for list of length %d"
	MsgNegativeIndex     = "index %d is negative"
	MsgBadRange          = "range min %v must be <= max %v"
	MsgReentrantBorrow   = "external value is already borrowed"
	MsgCycleDetected     = "cannot serialize: cyclic reference detected"
)
