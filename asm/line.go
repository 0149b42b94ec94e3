// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"github.com/sicxe/sicasm/optab"
)

// Mode describes how an instruction's operand addresses memory.
type Mode byte

// All operand addressing modes
const (
	Simple    Mode = iota // LDA ALPHA
	Immediate             // LDA #ALPHA
	Indirect              // LDA @ALPHA
	Indexed               // LDA ALPHA,X
)

var modeName = []string{"SIMPLE", "IMMEDIATE", "INDIRECT", "INDEXED"}

func (m Mode) String() string {
	if int(m) < len(modeName) {
		return modeName[m]
	}
	return "???"
}

// A SourceLine is one assembled statement. Lines are produced by pass 1 and
// only read by pass 2.
type SourceLine struct {
	Address  uint32       // location counter at the start of the statement
	Size     uint32       // bytes occupied by the statement
	Row      int          // 1-based source line number
	Label    string       // label field, or empty
	Mnemonic string       // mnemonic without the '+' prefix
	Operand1 string       // first operand without its mode prefix, or empty
	Operand2 string       // second operand, or empty
	Entry    *optab.Entry // operation table entry (opcode or directive)
	Format   optab.Format // effective format after extension
	Mode     Mode         // operand addressing mode
}

// Extended returns true if the line uses the 4-byte extended format.
func (l *SourceLine) Extended() bool {
	return l.Format == optab.Fmt4
}

// IsDirective returns true if the line holds an assembler directive.
func (l *SourceLine) IsDirective() bool {
	return l.Entry.IsDirective()
}

// A lineBuilder accumulates the fields of a statement during pass 1 and
// produces the finished SourceLine.
type lineBuilder struct {
	line SourceLine
}

func newLineBuilder(st *statement, addr uint32) *lineBuilder {
	return &lineBuilder{line: SourceLine{
		Address: addr,
		Row:     st.row,
		Label:   st.label.str,
	}}
}

func (b *lineBuilder) operation(mnemonic string, e *optab.Entry, f optab.Format) *lineBuilder {
	b.line.Mnemonic = mnemonic
	b.line.Entry = e
	b.line.Format = f
	return b
}

// Record the statement's operands, deriving the addressing mode from the
// operand syntax of format-3/4 instructions.
func (b *lineBuilder) operands(st *statement) error {
	op1, op2 := st.operand(0), st.operand(1)

	switch b.line.Format {
	case optab.Fmt3, optab.Fmt4, optab.Fmt34:
		switch {
		case strings.HasPrefix(op1, "#"):
			b.line.Mode, op1 = Immediate, op1[1:]
		case strings.HasPrefix(op1, "@"):
			b.line.Mode, op1 = Indirect, op1[1:]
		}
		if op1 == "" && len(st.operands) > 0 {
			return newError(st.row, st.operand(0), ErrInvalidOperand)
		}
		if op2 != "" {
			if !strings.EqualFold(op2, "X") || b.line.Mode != Simple {
				return newError(st.row, op2, ErrInvalidOperand)
			}
			b.line.Mode = Indexed
		}
	}

	b.line.Operand1, b.line.Operand2 = op1, op2
	return nil
}

func (b *lineBuilder) size(n uint32) *lineBuilder {
	b.line.Size = n
	return b
}

func (b *lineBuilder) build() SourceLine {
	return b.line
}
