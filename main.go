// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sicxe/sicasm/asm"
	"github.com/sicxe/sicasm/host"
)

var (
	verbose     bool
	interactive bool
)

func init() {
	flag.BoolVar(&verbose, "v", false, "trace both assembler passes")
	flag.BoolVar(&interactive, "i", false, "start the interactive host")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: sicasm [options] <source file>\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	args := flag.Args()

	if interactive {
		h := host.New()
		if len(args) > 0 {
			if err := h.AssembleFile(args[0]); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			}
		}
		h.RunCommands(os.Stdin, os.Stdout, true)
		return
	}

	if len(args) == 0 {
		flag.CommandLine.Usage()
		os.Exit(0)
	}

	var options asm.Option
	if verbose {
		options |= asm.Verbose
	}

	_, err := asm.AssembleFile(args[0], asm.DefaultOutput, 0, os.Stdout, options)
	if err != nil {
		exitOnError(err)
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
