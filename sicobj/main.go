// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sicobj reads a SIC/XE object program and disassembles the code in
// its text records.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/sicxe/sicasm/disasm"
	"github.com/sicxe/sicasm/obj"
)

var raw bool

func init() {
	flag.BoolVar(&raw, "raw", false, "dump the decoded records instead of disassembling")
	flag.CommandLine.Usage = func() {
		fmt.Println("Syntax: sicobj [-raw] [file]")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	var r io.Reader = os.Stdin
	if flag.NArg() > 0 {
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			exitOnError(err)
		}
		defer file.Close()
		r = file
	}

	m, err := obj.Read(r)
	if err != nil {
		exitOnError(err)
	}

	if raw {
		pp.Println(m)
		return
	}
	dump(os.Stdout, m)
}

func dump(w io.Writer, m *obj.Module) {
	fmt.Fprintf(w, "Program '%s' start=%06X length=%06X entry=%06X\n\n",
		m.Header.Name, m.Header.Start, m.Header.Length, m.End.First)

	for _, t := range m.Text {
		for addr := t.Start; addr < t.End(); {
			off := addr - t.Start
			line, next := disasm.Disassemble(t.Code[off:], addr)
			fmt.Fprintf(w, "%06X-   %-8X  %s\n", addr, t.Code[off:next-t.Start], line)
			addr = next
		}
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
