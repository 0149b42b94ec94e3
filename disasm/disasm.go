// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a SIC/XE instruction set
// disassembler.
package disasm

import (
	"fmt"

	"github.com/sicxe/sicasm/optab"
)

// Bits of the second byte of a format-3/4 instruction.
const (
	bitX = 0x80
	bitB = 0x40
	bitP = 0x20
	bitE = 0x10
)

// Disassembler formatting for addressing modes, indexed by the n/i bits.
var modeFormat = []string{
	"%s",  // SIC (n=0 i=0)
	"#%s", // immediate
	"@%s", // indirect
	"%s",  // simple
}

var hex = "0123456789ABCDEF"

// Return a hexadecimal string representation of the byte slice.
func hexString(b []byte) string {
	hexbuf := make([]byte, len(b)*2)
	for i, n := range b {
		hexbuf[i*2] = hex[n>>4]
		hexbuf[i*2+1] = hex[n&0xf]
	}
	return string(hexbuf)
}

// Disassemble the instruction at the start of 'code', which is located at
// address 'addr'. Return a 'line' string representing the disassembled
// instruction and a 'next' address that starts the following line of
// machine code. Bytes that do not form a valid instruction are shown as a
// single BYTE constant.
func Disassemble(code []byte, addr uint32) (line string, next uint32) {
	if len(code) == 0 {
		return "", addr
	}

	inst, ok := optab.Default().LookupOpcode(code[0])
	if !ok {
		return data(code[:1], addr)
	}

	switch inst.Format {
	case optab.Fmt1:
		if code[0]&0x03 != 0 {
			return data(code[:1], addr)
		}
		return inst.Mnemonic, addr + 1

	case optab.Fmt2:
		if len(code) < 2 || code[0]&0x03 != 0 {
			return data(code[:1], addr)
		}
		return inst.Mnemonic + " " + registers(inst, code[1]), addr + 2

	default:
		return format34(inst, code, addr)
	}
}

// Decode the operands of a format-2 instruction.
func registers(inst *optab.Entry, b byte) string {
	r1, r2 := b>>4, b&0x0f
	switch inst.Mnemonic {
	case "SVC":
		return fmt.Sprintf("%d", r1)
	case "SHIFTL", "SHIFTR":
		return fmt.Sprintf("%s,%d", regName(r1), r2+1)
	}
	if inst.Operands == 1 {
		return regName(r1)
	}
	return regName(r1) + "," + regName(r2)
}

func regName(n byte) string {
	if name := optab.RegisterName(n); name != "" {
		return name
	}
	return fmt.Sprintf("R%d", n)
}

func format34(inst *optab.Entry, code []byte, addr uint32) (string, uint32) {
	if len(code) < 3 {
		return data(code[:1], addr)
	}

	ni := code[0] & 0x03
	flags := code[1] & 0xf0
	mnemonic := inst.Mnemonic

	var size uint32 = 3
	var target uint32
	var operand string

	switch {
	case ni == 0:
		// SIC-compatible instruction with a 15-bit address.
		target = uint32(code[1]&0x7f)<<8 | uint32(code[2])
		flags &= bitX
		operand = fmt.Sprintf("$%06X", target)

	case flags&bitE != 0:
		if len(code) < 4 || flags&(bitB|bitP) != 0 {
			return data(code[:1], addr)
		}
		size = 4
		mnemonic = "+" + mnemonic
		target = uint32(code[1]&0x0f)<<16 | uint32(code[2])<<8 | uint32(code[3])
		operand = fmt.Sprintf("$%06X", target)

	default:
		disp := uint32(code[1]&0x0f)<<8 | uint32(code[2])
		switch flags & (bitB | bitP) {
		case bitP:
			// Sign-extend the 12-bit displacement.
			if disp&0x800 != 0 {
				disp |= 0xfffff000
			}
			target = (addr + 3 + disp) & 0xffffff
			operand = fmt.Sprintf("$%06X", target)
		case bitB:
			operand = fmt.Sprintf("B+$%03X", disp)
		case 0:
			operand = fmt.Sprintf("$%X", disp)
		default:
			return data(code[:1], addr)
		}
	}

	// RSUB carries no operand.
	if inst.Operands == 0 {
		return mnemonic, addr + size
	}

	operand = fmt.Sprintf(modeFormat[ni], operand)
	if flags&bitX != 0 {
		operand += ",X"
	}
	return mnemonic + " " + operand, addr + size
}

func data(b []byte, addr uint32) (string, uint32) {
	return "BYTE X'" + hexString(b) + "'", addr + uint32(len(b))
}
