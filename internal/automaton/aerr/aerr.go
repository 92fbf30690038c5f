// Package aerr holds the error kinds shared across the gomata core: malformed
// input, precondition violations, unknown algorithm selectors, and resource
// exhaustion. It mirrors the teacher's server/serr package: a typed Error
// that wraps one or more causes and stays compatible with errors.Is and
// errors.As so callers can test against the sentinels below without a type
// switch.
package aerr

import "errors"

var (
	// ErrMalformedInput marks an intermediate automaton of the wrong kind, a
	// transition body of the wrong arity, a formula referencing an undefined
	// name, or a colliding alphabet mapping.
	ErrMalformedInput = errors.New("malformed automaton input")

	// ErrPrecondition marks a caller violating an operation's precondition:
	// a non-deterministic automaton passed where determinism is required, or
	// a state/symbol referenced outside of capacity.
	ErrPrecondition = errors.New("operation precondition violated")

	// ErrUnknownAlgorithm marks a Params map requesting an algorithm
	// selector or value the operation does not recognize.
	ErrUnknownAlgorithm = errors.New("unrecognized algorithm selector")

	// ErrResourceExhausted marks memory-bound blowup the caller must guard
	// against externally (BDD minterm explosion, antichain worklist size).
	ErrResourceExhausted = errors.New("resource exhausted")
)

// Error is a typed error with a message and one or more causes. Calling
// errors.Is on an Error with any of its causes as the target returns true.
type Error struct {
	msg   string
	cause []error
}

// New returns an Error with the given message and causes. At least one cause
// should normally be one of the sentinels in this package so callers can
// discriminate the error kind with errors.Is.
func New(msg string, cause ...error) error {
	return &Error{msg: msg, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg == "" && len(e.cause) > 0 {
		return e.cause[0].Error()
	}
	if len(e.cause) > 0 {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

// Unwrap exposes the causes to the errors package.
func (e *Error) Unwrap() []error {
	if len(e.cause) == 0 {
		return nil
	}
	return e.cause
}
