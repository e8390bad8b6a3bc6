package core

import (
	"errors"
	"fmt"
)

// General error codes
const (
	NOERROR       int = 0
	EMISSING      int = 122 // resource does not exist
	EINVALID      int = 123 // validation failed
	EPRECONDITION int = 124 // caller did not establish a precondition
	EINTERNAL     int = 125 // internal error
	ENEGATIVE     int = 126 // computed dimension is negative
	ECONVERGENCE  int = 127 // iterative process did not settle
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EPRECONDITION:
		return "precondition violated"
	case EINTERNAL:
		return "internal error"
	case ENEGATIVE:
		return "negative dimension"
	case ECONVERGENCE:
		return "no convergence"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting NOERROR is returned.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// --- Invariant violations --------------------------------------------------

// Violation is the panic value of the layout engine. Violations signal a
// caller or algorithm bug, never an environmental condition, and are not
// meant to be recovered from in production code.
type Violation struct {
	Code      int    // one of EPRECONDITION, ENEGATIVE, ECONVERGENCE, EINTERNAL
	Node      string // id (or kind) of the offending node
	Dimension string // "width", "height", … or empty
	Msg       string
}

func (v Violation) Error() string {
	if v.Dimension != "" {
		return fmt.Sprintf("[%d] %s: node %q, %s: %s", v.Code, errorText(v.Code),
			v.Node, v.Dimension, v.Msg)
	}
	return fmt.Sprintf("[%d] %s: node %q: %s", v.Code, errorText(v.Code), v.Node, v.Msg)
}

// ErrorCode is part of interface AppError.
func (v Violation) ErrorCode() int {
	return v.Code
}

// UserMessage is part of interface AppError.
func (v Violation) UserMessage() string {
	return v.Msg
}

var _ AppError = Violation{}

// Violate panics with a Violation.
func Violate(code int, node, dimension string, format string, args ...interface{}) {
	panic(Violation{
		Code:      code,
		Node:      node,
		Dimension: dimension,
		Msg:       fmt.Sprintf(format, args...),
	})
}
