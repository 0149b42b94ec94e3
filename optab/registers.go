// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optab

import "strings"

// Register numbers used by format-2 instructions.
var registers = map[string]byte{
	"A":  0,
	"X":  1,
	"L":  2,
	"B":  3,
	"S":  4,
	"T":  5,
	"F":  6,
	"PC": 8,
	"SW": 9,
}

var registerNames [16]string

func init() {
	for name, n := range registers {
		registerNames[n] = name
	}
}

// Register returns the register number for a register name, ignoring case.
func Register(name string) (byte, bool) {
	n, ok := registers[strings.ToUpper(name)]
	return n, ok
}

// RegisterName returns the name of a register number, or the empty string
// if no register has that number.
func RegisterName(n byte) string {
	if int(n) < len(registerNames) {
		return registerNames[n]
	}
	return ""
}
