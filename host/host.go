// Copyright 2018 Brett Vickers.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host provides an interactive or scripted command environment
// around the SIC/XE assembler.
//
// Within the host it is possible to assemble source files, list the symbol
// table and object records of the assembled program, disassemble its object
// code, pretty-print the assembler's internal state and change the settings
// used by the assembler.
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/term"
	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
	"github.com/sicxe/sicasm/asm"
	"github.com/sicxe/sicasm/disasm"
	"github.com/sicxe/sicasm/obj"
)

// Number of instruction lines disassembled when no count is given.
const defaultDisasmLines = 10

// A Host holds the most recently assembled program and the settings used
// to assemble it.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection
	settings    *settings
	source      string
	program     *asm.Program
	module      *obj.Module
}

// New creates a new assembler host.
func New() *Host {
	return &Host{
		settings: newSettings(),
		output:   bufio.NewWriter(os.Stdout),
	}
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c cmd.Selection
		if line != "" {
			c, err = cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		} else if h.lastCmd != nil {
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		entry := c.Command.Data.(*command)
		err = entry.handler(h, c)
		if err != nil {
			break
		}
	}
	h.flush()
}

// AssembleFile assembles a source file, writes its object program to the
// configured output file and keeps the result for later inspection.
func (h *Host) AssembleFile(filename string) error {
	var options asm.Option
	if h.settings.Verbose {
		options |= asm.Verbose
	}

	p, err := asm.AssembleFile(filename, h.settings.OutputFile, h.settings.BaseRegister, h.output, options)
	h.flush()
	if err != nil {
		return err
	}

	m, err := readObject(h.settings.OutputFile)
	if err != nil {
		return err
	}

	h.source, h.program, h.module = filename, p, m
	return nil
}

func readObject(filename string) (*obj.Module, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening '%s'", filename)
	}
	defer file.Close()

	m, err := obj.Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading '%s'", filename)
	}
	return m, nil
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return strings.TrimSpace(h.input.Text()), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

// Color output only makes sense when a person is watching a terminal.
func (h *Host) colorEnabled() bool {
	return h.settings.Color && h.interactive && term.IsTerminal(int(os.Stdout.Fd()))
}

func (h *Host) requireProgram() bool {
	if h.program == nil || h.module == nil {
		h.println("No program has been assembled.")
		return false
	}
	return true
}

func (h *Host) cmdAssemble(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c)
		return nil
	}

	filename := c.Args[0]
	if err := h.AssembleFile(filename); err != nil {
		h.printf("Failed to assemble '%s': %v\n", filepath.Base(filename), err)
	}
	return nil
}

func (h *Host) cmdSymbols(c cmd.Selection) error {
	if !h.requireProgram() {
		return nil
	}

	syms := h.program.Symbols.SortedByAddress()
	if len(syms) == 0 {
		h.println("No symbols defined.")
		return nil
	}

	h.println("Symbol    Addr")
	h.println("--------  ------")
	for _, s := range syms {
		h.printf("%-8s  %06X\n", s.Name, s.Address)
	}
	return nil
}

func (h *Host) cmdRecords(c cmd.Selection) error {
	if !h.requireProgram() {
		return nil
	}

	for _, r := range h.module.Records() {
		h.println(r.String())
	}
	return nil
}

func (h *Host) cmdDisassemble(c cmd.Selection) error {
	if !h.requireProgram() {
		return nil
	}

	if len(c.Args) == 0 {
		for _, t := range h.module.Text {
			h.disassemble(t.Code, t.Start, -1)
		}
		return nil
	}

	addr, err := parseNumber(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	lines := defaultDisasmLines
	if len(c.Args) >= 2 {
		n, err := parseNumber(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		lines = int(n)
	}

	start := h.module.Header.Start
	img := h.module.Image()
	if addr < start || addr >= start+uint32(len(img)) {
		h.printf("Address $%06X is outside the program.\n", addr)
		return nil
	}

	h.disassemble(img[addr-start:], addr, lines)
	return nil
}

// Disassemble code located at addr, stopping after the given number of
// lines. A negative count disassembles all of the code.
func (h *Host) disassemble(code []byte, addr uint32, lines int) {
	base := addr
	for n := 0; int(addr-base) < len(code) && n != lines; n++ {
		off := addr - base
		line, next := disasm.Disassemble(code[off:], addr)
		fmt.Fprintf(h.output, "%06X-  %-12s  %s\n", addr, codeString(code[off:off+next-addr]), line)
		addr = next
	}
	h.flush()
}

func (h *Host) cmdDump(c cmd.Selection) error {
	if !h.requireProgram() {
		return nil
	}

	item := "program"
	if len(c.Args) > 0 {
		item = strings.ToLower(c.Args[0])
	}

	var v any
	switch item {
	case "program":
		v = struct {
			Source string
			Start  uint32
			End    uint32
			Length uint32
			Lines  int
		}{h.source, h.program.Start, h.program.End, h.program.Length(), len(h.program.Lines)}
	case "lines":
		v = h.program.Lines
	case "symbols":
		v = h.program.Symbols.SortedByAddress()
	case "module":
		v = h.module
	default:
		h.displayUsage(c)
		return nil
	}

	printer := pp.New()
	printer.SetOutput(h.output)
	printer.SetColoringEnabled(h.colorEnabled())
	printer.Println(v)
	h.flush()
	return nil
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.displayCommands()
		return nil
	}

	s, err := cmds.Lookup(strings.Join(c.Args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	entry := s.Command.Data.(*command)
	if entry.usage != "" {
		h.printf("Syntax: %s\n\n", entry.usage)
	}
	switch {
	case entry.description != "":
		h.printf("Description:\n%s\n\n", indentWrap(3, entry.description))
	case entry.brief != "":
		h.printf("Description:\n%s.\n\n", indentWrap(3, entry.brief))
	}
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errors.New("Exiting program")
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayUsage(c)

	default:
		key, value := c.Args[0], strings.Join(c.Args[1:], " ")

		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = errors.Errorf("Setting '%s' not found", key)
		case reflect.String:
			err = h.settings.Set(key, value)
		case reflect.Bool:
			var v bool
			v, err = stringToBool(value)
			if err == nil {
				err = h.settings.Set(key, v)
			}
		default:
			var v uint32
			v, err = parseNumber(value)
			if err == nil {
				err = h.settings.Set(key, v)
			}
		}

		if err == nil {
			h.println("Setting updated.")
		} else {
			h.printf("%v\n", err)
		}
	}

	return nil
}

func (h *Host) displayUsage(c cmd.Selection) {
	entry := c.Command.Data.(*command)
	if entry.usage != "" {
		h.printf("Syntax: %s\n", entry.usage)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) displayCommands() {
	h.println("sicasm commands:")
	for _, c := range commands {
		if c.brief != "" {
			h.printf("    %-15s  %s\n", c.name, c.brief)
		}
	}
}
