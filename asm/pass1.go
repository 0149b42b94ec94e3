// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sicxe/sicasm/optab"
)

// Read the source, assign addresses to all statements and build the
// symbol table.
func (a *assembler) pass1(r io.Reader) (*Program, error) {
	a.logSection("Assigning addresses")

	p := &Program{Symbols: NewSymbolTable()}

	var locctr uint32
	var ended bool

	scanner := bufio.NewScanner(r)
	for row := 1; scanner.Scan(); row++ {
		st, ok, err := splitStatement(newFstring(row, scanner.Text()))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		line, err := a.assignAddress(&st, locctr)
		if err != nil {
			return nil, err
		}

		switch line.Entry.Directive {
		case optab.START:
			p.Start = line.Address
		case optab.END:
			p.End, ended = line.Address, true
		}

		if line.Label != "" {
			if err := p.Symbols.Define(line.Label, line.Address); err != nil {
				return nil, newError(st.row, line.Label, ErrDuplicateSymbol)
			}
			a.logLine(st.text, "label=%s addr=%06X", line.Label, line.Address)
		}

		a.logLine(st.text, "%06X %s %v +%d", line.Address, line.Mnemonic, line.Format, line.Size)

		locctr = line.Address + line.Size
		p.Lines = append(p.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading source")
	}

	// Without an END directive, the program ends at the last address
	// processed.
	if !ended {
		p.End = locctr
	}

	a.log("Program start=%06X end=%06X length=%06X symbols=%d",
		p.Start, p.End, p.Length(), p.Symbols.Len())
	return p, nil
}

// Resolve a statement's operation and compute its address and size. The
// returned line's address is the location counter before the statement,
// except for START, which resets the location counter.
func (a *assembler) assignAddress(st *statement, locctr uint32) (SourceLine, error) {
	mnemonic := st.mnemonic.str
	extended := strings.HasPrefix(mnemonic, "+")
	if extended {
		mnemonic = mnemonic[1:]
	}

	e, found := a.optab.Lookup(mnemonic)

	// Operations that take no operand still need a uniform 3-field shape.
	if found && st.fields == 2 && e.Operands == 0 {
		st.fields++
	}
	if st.fields != 3 {
		return SourceLine{}, newError(st.row, "", ErrMalformedLine)
	}
	if !found {
		return SourceLine{}, newError(st.row, mnemonic, ErrUnknownMnemonic)
	}
	if !e.IsDirective() && e.Operands == 0 && len(st.operands) > 0 {
		return SourceLine{}, newError(st.row, st.operand(0), ErrInvalidOperand)
	}

	format := e.Format
	if extended {
		var ok bool
		if format, ok = e.Extend(); !ok {
			return SourceLine{}, newError(st.row, mnemonic, ErrInvalidExtension)
		}
	}

	if e.Directive == optab.START {
		start, ok := parseDecimal(st.operand(0))
		if !ok {
			return SourceLine{}, newError(st.row, st.operand(0), ErrNumericParse)
		}
		if start > maxAddress {
			return SourceLine{}, newError(st.row, st.operand(0), ErrAddressRange)
		}
		locctr = start
	}

	b := newLineBuilder(st, locctr).operation(strings.ToUpper(mnemonic), e, format)
	if err := b.operands(st); err != nil {
		return SourceLine{}, err
	}

	size, err := statementSize(st, e, format)
	if err != nil {
		return SourceLine{}, err
	}

	// The statement must end at or before the top of memory.
	if uint64(locctr)+uint64(size) > maxAddress+1 {
		return SourceLine{}, newError(st.row, "", ErrAddressRange)
	}

	return b.size(size).build(), nil
}

// Compute the number of bytes a statement adds to the location counter.
func statementSize(st *statement, e *optab.Entry, format optab.Format) (uint32, error) {
	operand := st.operand(0)

	switch e.Directive {
	case optab.NotDirective:
		return uint32(format.Size()), nil

	case optab.WORD:
		if _, ok := parseWord(operand); !ok {
			return 0, newError(st.row, operand, ErrNumericParse)
		}
		return 3, nil

	case optab.RESW, optab.RESB:
		n, ok := parseDecimal(operand)
		if !ok {
			return 0, newError(st.row, operand, ErrNumericParse)
		}
		if n > maxAddress+1 {
			return 0, newError(st.row, operand, ErrAddressRange)
		}
		if e.Directive == optab.RESW {
			n *= 3
		}
		return n, nil

	case optab.BYTE:
		b, isConst, err := parseConstant(operand)
		switch {
		case err != nil:
			return 0, newError(st.row, operand, err)
		case !isConst:
			return 0, nil
		}
		return uint32(len(b)), nil

	default:
		return 0, nil
	}
}
