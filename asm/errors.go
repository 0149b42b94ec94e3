// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors reported by the assembler. Every error returned by Pass1, Pass2
// and Assemble wraps one of these, so callers can match with errors.Is.
var (
	ErrMalformedLine     = errors.New("malformed statement")
	ErrUnknownMnemonic   = errors.New("unknown mnemonic")
	ErrInvalidExtension  = errors.New("cannot be used with extended format")
	ErrDuplicateSymbol   = errors.New("duplicate symbol")
	ErrUndefinedSymbol   = errors.New("undefined symbol")
	ErrMissingStart      = errors.New("no START directive found")
	ErrNumericParse      = errors.New("invalid numeric operand")
	ErrDisplacementRange = errors.New("displacement out of range")
	ErrInvalidOperand    = errors.New("invalid operand")
	ErrAddressRange      = errors.New("address out of range")
)

// An Error describes a fatal problem found while assembling a source line.
type Error struct {
	Row   int    // 1-based source line number, or 0 if not tied to a line
	Token string // offending token, if any
	Err   error  // one of the Err* values
}

func newError(row int, token string, err error) *Error {
	return &Error{Row: row, Token: token, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Row == 0 && e.Token == "":
		return e.Err.Error()
	case e.Row == 0:
		return fmt.Sprintf("%v '%s'", e.Err, e.Token)
	case e.Token == "":
		return fmt.Sprintf("line %d: %v", e.Row, e.Err)
	case e.Err == ErrInvalidExtension:
		return fmt.Sprintf("line %d: '%s' %v", e.Row, e.Token, e.Err)
	default:
		return fmt.Sprintf("line %d: %v '%s'", e.Row, e.Err, e.Token)
	}
}

// Unwrap returns the underlying Err* value.
func (e *Error) Unwrap() error {
	return e.Err
}
