// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optab holds the static SIC/XE operation table: every machine
// instruction and assembler directive the assembler understands, along with
// its encoding format and opcode.
package optab

import "strings"

// Format describes the encoding width of an operation.
type Format byte

// All operation formats
const (
	Fmt0  Format = iota // Assembler directive, no machine code
	Fmt1                // 1 byte: opcode
	Fmt2                // 2 bytes: opcode, r1/r2
	Fmt3                // 3 bytes: opcode+ni, xbpe, 12-bit displacement
	Fmt4                // 4 bytes: opcode+ni, xbpe, 20-bit address
	Fmt34               // Format 3, or format 4 when prefixed with '+'
)

var formatName = []string{"FMT0", "FMT1", "FMT2", "FMT3", "FMT4", "FMT3/4"}

func (f Format) String() string {
	if int(f) < len(formatName) {
		return formatName[f]
	}
	return "FMT?"
}

// Size returns the number of bytes an operation of this format occupies.
// The dual format-3/4 kind counts as format 3 until it is extended.
func (f Format) Size() int {
	switch f {
	case Fmt1:
		return 1
	case Fmt2:
		return 2
	case Fmt3, Fmt34:
		return 3
	case Fmt4:
		return 4
	default:
		return 0
	}
}

// Directive identifies an assembler directive.
type Directive byte

// All assembler directives
const (
	NotDirective Directive = iota
	START
	END
	BYTE
	WORD
	RESB
	RESW
	BASE
	NOBASE
)

var directiveName = []string{"", "START", "END", "BYTE", "WORD", "RESB", "RESW", "BASE", "NOBASE"}

func (d Directive) String() string {
	if int(d) < len(directiveName) {
		return directiveName[d]
	}
	return "???"
}

// An Entry describes one operation in the table. Machine instructions carry
// an opcode; directives have format Fmt0 and carry a Directive instead.
type Entry struct {
	Mnemonic  string    // all-caps mnemonic
	Format    Format    // encoding format
	Opcode    byte      // machine opcode (zero for directives)
	Directive Directive // directive kind (NotDirective for instructions)
	Operands  int       // number of operands the operation requires
}

// IsDirective returns true if the entry is an assembler directive.
func (e *Entry) IsDirective() bool {
	return e.Format == Fmt0
}

// Extend returns the format produced by prefixing the mnemonic with '+'.
// Only the dual format-3/4 kind may be extended.
func (e *Entry) Extend() (Format, bool) {
	if e.Format == Fmt34 {
		return Fmt4, true
	}
	return e.Format, false
}

type opData struct {
	mnemonic  string
	format    Format
	opcode    byte
	directive Directive
	operands  int
}

// All operations
var data = []opData{
	{"ADD", Fmt34, 0x18, NotDirective, 1},
	{"ADDF", Fmt34, 0x58, NotDirective, 1},
	{"ADDR", Fmt2, 0x90, NotDirective, 2},
	{"AND", Fmt34, 0x40, NotDirective, 1},
	{"CLEAR", Fmt2, 0xb4, NotDirective, 1},
	{"COMP", Fmt34, 0x28, NotDirective, 1},
	{"COMPF", Fmt34, 0x88, NotDirective, 1},
	{"COMPR", Fmt2, 0xa0, NotDirective, 2},
	{"DIV", Fmt34, 0x24, NotDirective, 1},
	{"DIVF", Fmt34, 0x64, NotDirective, 1},
	{"DIVR", Fmt2, 0x9c, NotDirective, 2},
	{"FIX", Fmt1, 0xc4, NotDirective, 0},
	{"FLOAT", Fmt1, 0xc0, NotDirective, 0},
	{"HIO", Fmt1, 0xf4, NotDirective, 0},
	{"J", Fmt34, 0x3c, NotDirective, 1},
	{"JEQ", Fmt34, 0x30, NotDirective, 1},
	{"JGT", Fmt34, 0x34, NotDirective, 1},
	{"JLT", Fmt34, 0x38, NotDirective, 1},
	{"JSUB", Fmt34, 0x48, NotDirective, 1},
	{"LDA", Fmt34, 0x00, NotDirective, 1},
	{"LDB", Fmt34, 0x68, NotDirective, 1},
	{"LDCH", Fmt34, 0x50, NotDirective, 1},
	{"LDF", Fmt34, 0x70, NotDirective, 1},
	{"LDL", Fmt34, 0x08, NotDirective, 1},
	{"LDS", Fmt34, 0x6c, NotDirective, 1},
	{"LDT", Fmt34, 0x74, NotDirective, 1},
	{"LDX", Fmt34, 0x04, NotDirective, 1},
	{"LPS", Fmt34, 0xd0, NotDirective, 1},
	{"MUL", Fmt34, 0x20, NotDirective, 1},
	{"MULF", Fmt34, 0x60, NotDirective, 1},
	{"MULR", Fmt2, 0x98, NotDirective, 2},
	{"NORM", Fmt1, 0xc8, NotDirective, 0},
	{"OR", Fmt34, 0x44, NotDirective, 1},
	{"RD", Fmt34, 0xd8, NotDirective, 1},
	{"RMO", Fmt2, 0xac, NotDirective, 2},
	{"RSUB", Fmt34, 0x4c, NotDirective, 0},
	{"SHIFTL", Fmt2, 0xa4, NotDirective, 2},
	{"SHIFTR", Fmt2, 0xa8, NotDirective, 2},
	{"SIO", Fmt1, 0xf0, NotDirective, 0},
	{"SSK", Fmt34, 0xec, NotDirective, 1},
	{"STA", Fmt34, 0x0c, NotDirective, 1},
	{"STB", Fmt34, 0x78, NotDirective, 1},
	{"STCH", Fmt34, 0x54, NotDirective, 1},
	{"STF", Fmt34, 0x80, NotDirective, 1},
	{"STI", Fmt34, 0xd4, NotDirective, 1},
	{"STL", Fmt34, 0x14, NotDirective, 1},
	{"STS", Fmt34, 0x7c, NotDirective, 1},
	{"STSW", Fmt34, 0xe8, NotDirective, 1},
	{"STT", Fmt34, 0x84, NotDirective, 1},
	{"STX", Fmt34, 0x10, NotDirective, 1},
	{"SUB", Fmt34, 0x1c, NotDirective, 1},
	{"SUBF", Fmt34, 0x5c, NotDirective, 1},
	{"SUBR", Fmt2, 0x94, NotDirective, 2},
	{"SVC", Fmt2, 0xb0, NotDirective, 1},
	{"TD", Fmt34, 0xe0, NotDirective, 1},
	{"TIO", Fmt1, 0xf8, NotDirective, 0},
	{"TIX", Fmt34, 0x2c, NotDirective, 1},
	{"TIXR", Fmt2, 0xb8, NotDirective, 1},
	{"WD", Fmt34, 0xdc, NotDirective, 1},

	{"START", Fmt0, 0, START, 1},
	{"END", Fmt0, 0, END, 0},
	{"BYTE", Fmt0, 0, BYTE, 1},
	{"WORD", Fmt0, 0, WORD, 1},
	{"RESB", Fmt0, 0, RESB, 1},
	{"RESW", Fmt0, 0, RESW, 1},
	{"BASE", Fmt0, 0, BASE, 1},
	{"NOBASE", Fmt0, 0, NOBASE, 0},
}

// A Table maps mnemonics to operation entries. It is never modified after
// construction.
type Table struct {
	entries  map[string]*Entry // mnemonic -> entry
	byOpcode map[byte]*Entry   // opcode -> machine entry
}

// Lookup returns the entry for a mnemonic, ignoring case.
func (t *Table) Lookup(mnemonic string) (*Entry, bool) {
	e, ok := t.entries[strings.ToUpper(mnemonic)]
	return e, ok
}

// LookupOpcode returns the machine instruction whose opcode matches the
// upper six bits of op. The low two bits hold the n/i flags and are ignored.
func (t *Table) LookupOpcode(op byte) (*Entry, bool) {
	e, ok := t.byOpcode[op&0xfc]
	return e, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

func newTable() *Table {
	t := &Table{
		entries:  make(map[string]*Entry, len(data)),
		byOpcode: make(map[byte]*Entry),
	}
	for _, d := range data {
		e := &Entry{
			Mnemonic:  d.mnemonic,
			Format:    d.format,
			Opcode:    d.opcode,
			Directive: d.directive,
			Operands:  d.operands,
		}
		if _, dup := t.entries[e.Mnemonic]; dup {
			panic("duplicate mnemonic " + e.Mnemonic)
		}
		t.entries[e.Mnemonic] = e
		if !e.IsDirective() {
			t.byOpcode[e.Opcode] = e
		}
	}
	return t
}

var std = newTable()

// Default returns the standard SIC/XE operation table.
func Default() *Table {
	return std
}

// Lookup returns the standard table's entry for a mnemonic, ignoring case.
func Lookup(mnemonic string) (*Entry, bool) {
	return std.Lookup(mnemonic)
}
