// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command app runs assembler host scripts. Each argument names a file of
// host commands, which are run in order before the interactive prompt
// starts.
package main

import (
	"fmt"
	"os"

	"github.com/sicxe/sicasm/host"
)

func main() {
	h := host.New()

	// Run commands contained in command-line files.
	for _, filename := range os.Args[1:] {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	// Run commands interactively.
	h.RunCommands(os.Stdin, os.Stdout, true)
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
