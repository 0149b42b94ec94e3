// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"github.com/sicxe/sicasm/obj"
	"github.com/sicxe/sicasm/optab"
)

// Flag bits in the xbpe nibble of a format-3/4 instruction.
const (
	flagE = 1 << iota // extended format
	flagP             // program-counter relative
	flagB             // base relative
	flagX             // indexed
)

// Displacement limits for format-3 instructions. The PC-relative window is
// the signed 12-bit range, so +2048 needs base-relative addressing. The
// base-relative displacement uses the whole unsigned 12-bit field rather than
// stopping at 2048. maxAddress is the top of the 20-bit address space, which
// also bounds the location counter.
const (
	minPCDisp   = -2048
	maxPCDisp   = 2047
	maxBaseDisp = 4095
	maxAddress  = 1<<20 - 1
)

// The base register state. BASE loads it and NOBASE disables base-relative
// addressing until the next BASE.
type baseRegister struct {
	addr    uint32
	enabled bool
}

// Encode all instructions and data in the program and write the object
// records.
func (a *assembler) pass2(p *Program, base uint32, w RecordWriter) error {
	a.logSection("Generating code")

	start, ok := p.StartLine()
	if !ok {
		return &Error{Err: ErrMissingStart}
	}

	header := obj.Header{
		Name:   start.Label,
		Start:  start.Address,
		Length: p.Length(),
	}
	if err := w.WriteRecord(header); err != nil {
		return err
	}
	a.log("%s", header)

	text := &textRecord{w: w, a: a}
	b := baseRegister{addr: base, enabled: true}

	for i := range p.Lines {
		l := &p.Lines[i]

		var code []byte
		var err error
		switch l.Entry.Directive {
		case optab.NotDirective:
			code, err = a.encode(l, p.Symbols, b)
		case optab.BYTE, optab.WORD:
			code, err = encodeData(l)
		case optab.BASE:
			b.addr, err = resolve(l, l.Operand1, p.Symbols)
			b.enabled = true
			a.log("%06X-  BASE=%06X", l.Address, b.addr)
		case optab.NOBASE:
			b.enabled = false
			a.log("%06X-  NOBASE", l.Address)
		}
		if err != nil {
			return err
		}

		if len(code) > 0 {
			a.log("%06X-  %-8X  %-6s %s", l.Address, code, l.Mnemonic, operandString(l))
			if err := text.append(l.Address, code); err != nil {
				return err
			}
		}
	}

	if err := text.flush(); err != nil {
		return err
	}

	end := obj.End{First: start.Address}
	a.log("%s", end)
	return w.WriteRecord(end)
}

// Encode a single machine instruction.
func (a *assembler) encode(l *SourceLine, syms *SymbolTable, b baseRegister) ([]byte, error) {
	op := l.Entry.Opcode
	switch l.Format {
	case optab.Fmt1:
		return []byte{op}, nil
	case optab.Fmt2:
		return encodeFormat2(l)
	case optab.Fmt4:
		return encodeFormat4(l, syms)
	default:
		return encodeFormat3(l, syms, b)
	}
}

// Return the n and i bits for an addressing mode.
func niBits(m Mode) byte {
	switch m {
	case Immediate:
		return 0x1
	case Indirect:
		return 0x2
	default:
		return 0x3
	}
}

func xBit(m Mode) byte {
	if m == Indexed {
		return flagX
	}
	return 0
}

func encodeFormat3(l *SourceLine, syms *SymbolTable, b baseRegister) ([]byte, error) {
	ni := niBits(l.Mode)
	xbpe := byte(flagP) | xBit(l.Mode)

	var disp uint32
	switch {
	case l.Operand1 == "":
		// Operand-less instructions such as RSUB.

	case isDecimal(l.Operand1):
		// A numeric operand is encoded directly as the displacement.
		v, ok := parseDecimal(l.Operand1)
		if !ok || v > maxBaseDisp {
			return nil, newError(l.Row, l.Operand1, ErrDisplacementRange)
		}
		xbpe &^= flagP
		disp = v

	default:
		target, ok := syms.Lookup(l.Operand1)
		if !ok {
			return nil, newError(l.Row, l.Operand1, ErrUndefinedSymbol)
		}

		pc := l.Address + 3
		pcDisp := int64(target) - int64(pc)
		baseDisp := int64(target) - int64(b.addr)
		switch {
		case pcDisp >= minPCDisp && pcDisp <= maxPCDisp:
			disp = uint32(pcDisp) & 0xfff
		case b.enabled && baseDisp >= 0 && baseDisp <= maxBaseDisp:
			xbpe = xbpe&^flagP | flagB
			disp = uint32(baseDisp)
		default:
			return nil, newError(l.Row, l.Operand1, ErrDisplacementRange)
		}
	}

	return []byte{
		l.Entry.Opcode | ni,
		xbpe<<4 | byte(disp>>8)&0x0f,
		byte(disp),
	}, nil
}

func encodeFormat4(l *SourceLine, syms *SymbolTable) ([]byte, error) {
	ni := niBits(l.Mode)
	xbpe := byte(flagE) | xBit(l.Mode)

	addr, err := resolve(l, l.Operand1, syms)
	if err != nil {
		return nil, err
	}
	if addr > maxAddress {
		return nil, newError(l.Row, l.Operand1, ErrDisplacementRange)
	}

	return []byte{
		l.Entry.Opcode | ni,
		xbpe<<4 | byte(addr>>16)&0x0f,
		byte(addr >> 8),
		byte(addr),
	}, nil
}

func encodeFormat2(l *SourceLine) ([]byte, error) {
	var r1, r2 byte
	var ok bool

	operands := 0
	for _, o := range []string{l.Operand1, l.Operand2} {
		if o != "" {
			operands++
		}
	}
	if operands != l.Entry.Operands {
		return nil, newError(l.Row, l.Operand1, ErrInvalidOperand)
	}

	switch l.Entry.Mnemonic {
	case "SVC":
		var n uint32
		if n, ok = parseDecimal(l.Operand1); !ok || n > 15 {
			return nil, newError(l.Row, l.Operand1, ErrInvalidOperand)
		}
		r1 = byte(n)

	case "SHIFTL", "SHIFTR":
		if r1, ok = optab.Register(l.Operand1); !ok {
			return nil, newError(l.Row, l.Operand1, ErrInvalidOperand)
		}
		n, ok := parseDecimal(l.Operand2)
		if !ok || n < 1 || n > 16 {
			return nil, newError(l.Row, l.Operand2, ErrInvalidOperand)
		}
		r2 = byte(n - 1)

	default:
		if r1, ok = optab.Register(l.Operand1); !ok {
			return nil, newError(l.Row, l.Operand1, ErrInvalidOperand)
		}
		if l.Operand2 != "" {
			if r2, ok = optab.Register(l.Operand2); !ok {
				return nil, newError(l.Row, l.Operand2, ErrInvalidOperand)
			}
		}
	}

	return []byte{l.Entry.Opcode, r1<<4 | r2}, nil
}

// Encode the constant data of a BYTE or WORD directive.
func encodeData(l *SourceLine) ([]byte, error) {
	switch l.Entry.Directive {
	case optab.WORD:
		v, ok := parseWord(l.Operand1)
		if !ok {
			return nil, newError(l.Row, l.Operand1, ErrNumericParse)
		}
		return toBytes(3, uint32(v)), nil

	default:
		b, _, err := parseConstant(l.Operand1)
		if err != nil {
			return nil, newError(l.Row, l.Operand1, err)
		}
		return b, nil
	}
}

// Resolve an operand that is either a symbol or a decimal address.
func resolve(l *SourceLine, operand string, syms *SymbolTable) (uint32, error) {
	switch {
	case operand == "":
		return 0, nil
	case isDecimal(operand):
		v, ok := parseDecimal(operand)
		if !ok {
			return 0, newError(l.Row, operand, ErrNumericParse)
		}
		return v, nil
	default:
		addr, ok := syms.Lookup(operand)
		if !ok {
			return 0, newError(l.Row, operand, ErrUndefinedSymbol)
		}
		return addr, nil
	}
}

// Format a line's operands the way they appeared in the source.
func operandString(l *SourceLine) string {
	var prefix string
	switch l.Mode {
	case Immediate:
		prefix = "#"
	case Indirect:
		prefix = "@"
	}
	s := prefix + l.Operand1
	if l.Operand2 != "" {
		s += "," + l.Operand2
	}
	return strings.TrimSpace(s)
}

// A textRecord accumulates object code until it is flushed as a Text
// record.
type textRecord struct {
	w     RecordWriter
	a     *assembler
	start uint32
	code  []byte
}

// Append object code located at addr. The pending record is flushed first
// if the code would not fit or does not directly follow it.
func (t *textRecord) append(addr uint32, code []byte) error {
	if len(t.code) > 0 &&
		(len(t.code)+len(code) > obj.MaxTextLength || addr != t.start+uint32(len(t.code))) {
		if err := t.flush(); err != nil {
			return err
		}
	}

	// Only data constants can exceed the capacity of a single record.
	for len(code) > obj.MaxTextLength {
		t.start, t.code = addr, code[:obj.MaxTextLength]
		if err := t.flush(); err != nil {
			return err
		}
		addr, code = addr+obj.MaxTextLength, code[obj.MaxTextLength:]
	}

	if len(t.code) == 0 {
		t.start = addr
	}
	t.code = append(t.code, code...)
	return nil
}

func (t *textRecord) flush() error {
	if len(t.code) == 0 {
		return nil
	}
	rec := obj.Text{Start: t.start, Code: t.code}
	t.code = nil
	t.a.log("%s", rec)
	return t.w.WriteRecord(rec)
}
