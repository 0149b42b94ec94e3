// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements a two-pass SIC/XE assembler. Pass 1 assigns
// addresses and builds the symbol table; pass 2 encodes instructions and
// emits Header, Text and End object records.
package asm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sicxe/sicasm/obj"
	"github.com/sicxe/sicasm/optab"
)

// Option type used by the assembler functions.
type Option uint

// Options for the assembler functions.
const (
	Verbose Option = 1 << iota // verbose output during assembly
)

// DefaultOutput is the name of the object file written by AssembleFile
// when no other name is requested.
const DefaultOutput = "output.txt"

// A RecordWriter receives object records in emission order.
type RecordWriter interface {
	WriteRecord(r obj.Record) error
}

// A Program is the result of pass 1: the assembled statements, the symbol
// table and the program bounds.
type Program struct {
	Lines   []SourceLine // statements in source order
	Symbols *SymbolTable // label -> address
	Start   uint32       // address given by the START directive
	End     uint32       // address at the END directive
}

// Length returns the size of the program in bytes.
func (p *Program) Length() uint32 {
	if p.End < p.Start {
		return 0
	}
	return p.End - p.Start
}

// StartLine returns the line holding the START directive.
func (p *Program) StartLine() (*SourceLine, bool) {
	for i := range p.Lines {
		if p.Lines[i].Entry.Directive == optab.START {
			return &p.Lines[i], true
		}
	}
	return nil, false
}

// The assembler is a state object shared by both passes.
type assembler struct {
	optab   *optab.Table // operation table
	out     io.Writer    // output used for verbose output
	verbose bool         // verbose output
}

func newAssembler(out io.Writer, options Option) *assembler {
	if out == nil {
		out = os.Stdout
	}
	return &assembler{
		optab:   optab.Default(),
		out:     out,
		verbose: (options & Verbose) != 0,
	}
}

// Pass1 reads SIC/XE source from r, assigns an address to every statement
// and builds the symbol table.
func Pass1(r io.Reader, out io.Writer, options Option) (*Program, error) {
	return newAssembler(out, options).pass1(r)
}

// Pass2 encodes the program's instructions and writes its object records
// to w. The base register starts out holding base and may be changed by
// BASE and NOBASE directives.
func Pass2(p *Program, base uint32, w RecordWriter, out io.Writer, options Option) error {
	return newAssembler(out, options).pass2(p, base, w)
}

// Assemble runs both passes over the source in r, writing object records
// to w.
func Assemble(r io.Reader, base uint32, w RecordWriter, out io.Writer, options Option) (*Program, error) {
	a := newAssembler(out, options)

	p, err := a.pass1(r)
	if err != nil {
		return nil, err
	}

	err = a.pass2(p, base, w)
	return p, err
}

// AssembleFile assembles the source file at path and writes the object
// module to outPath. The output file is created only after pass 1 succeeds
// and a START directive was found. It is flushed and closed on every exit path.
func AssembleFile(path, outPath string, base uint32, out io.Writer, options Option) (p *Program, err error) {
	a := newAssembler(out, options)

	inFile, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening '%s'", path)
	}
	defer inFile.Close()

	p, err = a.pass1(inFile)
	if err != nil {
		return nil, err
	}
	if _, ok := p.StartLine(); !ok {
		return p, &Error{Err: ErrMissingStart}
	}

	outFile, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return p, errors.Wrapf(err, "creating '%s'", outPath)
	}
	w := obj.NewWriter(outFile)
	defer func() {
		if ferr := w.Flush(); ferr != nil && err == nil {
			err = errors.Wrapf(ferr, "writing '%s'", outPath)
		}
		if cerr := outFile.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing '%s'", outPath)
		}
	}()

	err = a.pass2(p, base, w)
	if err != nil {
		return p, err
	}

	fmt.Fprintf(a.out, "Assembled '%s' to produce '%s'.\n",
		filepath.Base(path), filepath.Base(outPath))
	return p, nil
}

// In verbose mode, log a string to the output.
func (a *assembler) log(format string, args ...any) {
	if a.verbose {
		fmt.Fprintf(a.out, format, args...)
		fmt.Fprintf(a.out, "\n")
	}
}

// In verbose mode, log a string and its associated line of source.
func (a *assembler) logLine(line fstring, format string, args ...any) {
	if a.verbose {
		detail := fmt.Sprintf(format, args...)
		fmt.Fprintf(a.out, "%-3d | %-24s | %s\n", line.row, detail, line.full)
	}
}

// In verbose mode, log a section header to the output.
func (a *assembler) logSection(name string) {
	if a.verbose {
		fmt.Fprintln(a.out, strings.Repeat("-", len(name)+6))
		fmt.Fprintf(a.out, "-- %s --\n", name)
		fmt.Fprintln(a.out, strings.Repeat("-", len(name)+6))
	}
}
