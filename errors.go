// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"errors"
	"fmt"
)

// An ErrorKind classifies the errors reported by this package.
type ErrorKind byte

const (
	KeyNotFound           ErrorKind = iota + 1 // object lookup of a missing key
	WrongIndex                                 // array lookup out of range
	WrongType                                  // operation on a node or value of the wrong type
	ParsingError                               // structurally invalid input
	ParsingErrorWrongType                      // a literal that matches no value type
	FilesystemError                            // failure to open, read, or write a file
)

var kindStr = [...]string{
	KeyNotFound:           "key not found",
	WrongIndex:            "wrong index",
	WrongType:             "wrong type",
	ParsingError:          "parsing error",
	ParsingErrorWrongType: "parsing error (wrong type)",
	FilesystemError:       "filesystem error",
}

// String returns the label of k, as used in error messages.
func (k ErrorKind) String() string {
	v := int(k)
	if v > 0 && v < len(kindStr) {
		return kindStr[v]
	}
	return fmt.Sprintf("ErrorKind(%d)", v)
}

// Error is the concrete type of errors reported by this package.
//
// Errors of the same kind compare equal under [errors.Is], so a caller may
// test for a kind using the sentinel values:
//
//	if errors.Is(err, ljson.ErrKeyNotFound) { ... }
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     LineCol // for parse errors, the location of the offending input

	err error
}

// Sentinel errors for each error kind, for use with [errors.Is].
var (
	ErrKeyNotFound      = &Error{Kind: KeyNotFound}
	ErrWrongIndex       = &Error{Kind: WrongIndex}
	ErrWrongType        = &Error{Kind: WrongType}
	ErrParsing          = &Error{Kind: ParsingError}
	ErrParsingWrongType = &Error{Kind: ParsingErrorWrongType}
	ErrFilesystem       = &Error{Kind: FilesystemError}
)

// Error satisfies the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("at %v: %s", e.Pos, msg)
	}
	return msg
}

// Unwrap reports the underlying error of e, if any.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same kind as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, msg string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(msg, args...)}
}

func wrongType(msg string, args ...any) *Error { return newError(WrongType, msg, args...) }

func fsError(err error, msg string, args ...any) *Error {
	e := newError(FilesystemError, msg, args...)
	e.Message += ": " + err.Error()
	e.err = err
	return e
}

// KindOf reports the kind of err if it is or wraps an *Error, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
