// pkg/errs/errors.go
package errs

import "fmt"

// ParseError reports that the tokenizer or a statement parser could not
// interpret the input.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// NewParseError builds a ParseError from a format string.
func NewParseError(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a table, view or column does not exist.
type NotFoundError struct {
	Kind string // "table", "view" or "column"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// AlreadyExistsError reports a CREATE of a table or view that already
// exists.
type AlreadyExistsError struct {
	Kind string // "table" or "view"
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Kind, e.Name)
}

// ArityError reports an INSERT value count that is not a multiple of
// the column count, or an UPDATE reference to an unknown column.
type ArityError struct {
	Msg string
}

func (e *ArityError) Error() string { return e.Msg }

// NewArityError builds an ArityError from a format string.
func NewArityError(format string, args ...any) *ArityError {
	return &ArityError{Msg: fmt.Sprintf(format, args...)}
}

// JoinOrderError reports that no equi-join clause connects the next
// FROM-list table to the accumulated intermediate relation.
type JoinOrderError struct {
	Msg string
}

func (e *JoinOrderError) Error() string { return e.Msg }

// NewJoinOrderError returns the documented user-visible join-order
// error message.
func NewJoinOrderError() *JoinOrderError {
	return &JoinOrderError{Msg: "Join not found, try reordering tables"}
}

// SubqueryError reports that a scalar subquery returned zero or
// multiple rows/columns.
type SubqueryError struct {
	Msg string
}

func (e *SubqueryError) Error() string { return e.Msg }

// NewSubqueryError builds a SubqueryError from a format string.
func NewSubqueryError(format string, args ...any) *SubqueryError {
	return &SubqueryError{Msg: fmt.Sprintf(format, args...)}
}

// IOError wraps an underlying filesystem failure. Unwrap exposes the
// original error so callers can still errors.Is/As through it.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// NewIOError wraps err with the operation that failed. Returns nil if
// err is nil, so call sites can write `return errs.NewIOError(...)`
// unconditionally after an fallible call.
func NewIOError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}

// ConfigError reports a startup-time problem: a bad or missing
// database directory, or bad flags.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// NewConfigError builds a ConfigError from a format string.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
