// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj reads and writes SIC/XE object programs. An object program
// is a sequence of text lines: one Header record, zero or more Text records
// and a final End record. All numeric fields are upper-case hexadecimal.
package obj

import "fmt"

// Record field widths.
const (
	NameLength    = 6  // program name in a Header record
	MaxTextLength = 30 // bytes of object code in one Text record
)

// A Record is one line of an object program.
type Record interface {
	Type() byte
	String() string
}

// A Header record names the program and gives its load address and length.
type Header struct {
	Name   string
	Start  uint32
	Length uint32
}

// Type returns 'H'.
func (h Header) Type() byte { return 'H' }

func (h Header) String() string {
	return fmt.Sprintf("H%-6s%06X%06X", programName(h.Name), h.Start&0xffffff, h.Length&0xffffff)
}

// A Text record holds up to MaxTextLength bytes of object code starting
// at a given address.
type Text struct {
	Start uint32
	Code  []byte
}

// Type returns 'T'.
func (t Text) Type() byte { return 'T' }

func (t Text) String() string {
	return fmt.Sprintf("T%06X%02X%X", t.Start&0xffffff, len(t.Code), t.Code)
}

// End returns the address one past the last byte in the record.
func (t Text) End() uint32 {
	return t.Start + uint32(len(t.Code))
}

// An End record gives the address of the first executable instruction.
type End struct {
	First uint32
}

// Type returns 'E'.
func (e End) Type() byte { return 'E' }

func (e End) String() string {
	return fmt.Sprintf("E%06X", e.First&0xffffff)
}

// Program names are truncated to NameLength characters.
func programName(s string) string {
	if len(s) > NameLength {
		s = s[:NameLength]
	}
	return s
}
