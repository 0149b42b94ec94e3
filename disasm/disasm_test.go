// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import "testing"

func TestDisassemble(t *testing.T) {
	tests := []struct {
		addr uint32
		code []byte
		line string
		next uint32
	}{
		{0x64, []byte{0x03, 0x20, 0x00}, "LDA $000067", 0x67},
		{0x00, []byte{0x4f, 0x20, 0x00}, "RSUB", 0x03},
		{0x00, []byte{0x01, 0x00, 0x05}, "LDA #$5", 0x03},
		{0x00, []byte{0x02, 0x20, 0x03}, "LDA @$000006", 0x03},
		{0x10, []byte{0x0f, 0x2f, 0xfd}, "STA $000010", 0x13},
		{0x00, []byte{0x03, 0xc0, 0x03}, "LDA B+$003,X", 0x03},
		{0x06, []byte{0x4b, 0x10, 0x10, 0x36}, "+JSUB $001036", 0x0a},
		{0x00, []byte{0x00, 0x80, 0x10}, "LDA $000010,X", 0x03},
		{0x00, []byte{0xb4, 0x10}, "CLEAR X", 0x02},
		{0x00, []byte{0xa0, 0x04}, "COMPR A,S", 0x02},
		{0x00, []byte{0xa4, 0x31}, "SHIFTL B,2", 0x02},
		{0x00, []byte{0xb0, 0x50}, "SVC 5", 0x02},
		{0x00, []byte{0xc4}, "FIX", 0x01},
		{0x00, []byte{0xff, 0x00}, "BYTE X'FF'", 0x01},
		{0x00, []byte{0x03}, "BYTE X'03'", 0x01},
		{0x00, []byte{0x03, 0x60, 0x00}, "BYTE X'03'", 0x01},
	}

	for _, test := range tests {
		line, next := Disassemble(test.code, test.addr)
		if line != test.line || next != test.next {
			t.Errorf("% X: got (%q, %06X), want (%q, %06X)",
				test.code, line, next, test.line, test.next)
		}
	}
}

func TestDisassembleSequence(t *testing.T) {
	code := []byte{0x17, 0x20, 0x2d, 0xb4, 0x10, 0x4f, 0x20, 0x00}
	want := []string{"STL $000030", "CLEAR X", "RSUB"}

	addr := uint32(0)
	for i, w := range want {
		line, next := Disassemble(code[addr:], addr)
		if line != w {
			t.Errorf("line %d: got %q, want %q", i, line, w)
		}
		addr = next
	}
	if addr != uint32(len(code)) {
		t.Errorf("end address: got %d, want %d", addr, len(code))
	}
}

func TestDisassembleEmpty(t *testing.T) {
	if line, next := Disassemble(nil, 5); line != "" || next != 5 {
		t.Errorf("got (%q, %d)", line, next)
	}
}
