package internal

import (
	"errors"
	"fmt"
	"strings"
)

// ProcessError reports a subprocess that could not be started or that exited
// without producing usable output.
type ProcessError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("run %s: %v", e.Command, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ", stderr: " + stderr
	}
	return msg
}

func (e *ProcessError) Unwrap() error { return e.Err }

// ParseError reports backend output that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse backend output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports valid JSON that lacks the expected structure.
type ShapeError struct {
	Field   string
	Message string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected backend output: field '%s' %s", e.Field, e.Message)
}

// FieldError reports a missing or malformed field on a single entry.
type FieldError struct {
	Index int
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("entry %d: field '%s': %v", e.Index, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// EmptyResultError reports a lookup that expected one hit and got none.
type EmptyResultError struct {
	Query string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no results for %q", e.Query)
}

// InputError reports a selection that is not a valid index.
type InputError struct {
	Input string
	Count int
	Err   error
}

func (e *InputError) Error() string {
	if e.Count <= 0 {
		return fmt.Sprintf("invalid selection %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid selection %q (expected 0-%d): %v", e.Input, e.Count-1, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

var (
	errMissing    = errors.New("missing")
	errOutOfRange = errors.New("out of range")
)

// IsProcess checks if an error is a ProcessError
func IsProcess(err error) bool {
	var target *ProcessError
	return errors.As(err, &target)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsShape checks if an error is a ShapeError
func IsShape(err error) bool {
	var target *ShapeError
	return errors.As(err, &target)
}

// IsField checks if an error is a FieldError
func IsField(err error) bool {
	var target *FieldError
	return errors.As(err, &target)
}

// IsEmptyResult checks if an error is an EmptyResultError
func IsEmptyResult(err error) bool {
	var target *EmptyResultError
	return errors.As(err, &target)
}

// IsInput checks if an error is an InputError
func IsInput(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}
