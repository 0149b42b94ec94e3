// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optab

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		mnemonic string
		format   Format
		opcode   byte
	}{
		{"LDA", Fmt34, 0x00},
		{"lda", Fmt34, 0x00},
		{"Stl", Fmt34, 0x14},
		{"RSUB", Fmt34, 0x4c},
		{"CLEAR", Fmt2, 0xb4},
		{"TIXR", Fmt2, 0xb8},
		{"FIX", Fmt1, 0xc4},
		{"WD", Fmt34, 0xdc},
	}
	for _, tc := range tests {
		e, ok := Lookup(tc.mnemonic)
		if !ok {
			t.Errorf("Lookup(%q) failed", tc.mnemonic)
			continue
		}
		if e.Format != tc.format || e.Opcode != tc.opcode {
			t.Errorf("Lookup(%q) = %v/%02X; want %v/%02X",
				tc.mnemonic, e.Format, e.Opcode, tc.format, tc.opcode)
		}
		if e.IsDirective() {
			t.Errorf("Lookup(%q) reported a directive", tc.mnemonic)
		}
	}
}

func TestLookupMissing(t *testing.T) {
	for _, m := range []string{"", "FOO", "LDAX", "+LDA"} {
		if _, ok := Lookup(m); ok {
			t.Errorf("Lookup(%q) succeeded; want failure", m)
		}
	}
}

func TestDirectives(t *testing.T) {
	directives := map[string]Directive{
		"START":  START,
		"END":    END,
		"BYTE":   BYTE,
		"WORD":   WORD,
		"RESB":   RESB,
		"RESW":   RESW,
		"BASE":   BASE,
		"NOBASE": NOBASE,
	}
	for name, d := range directives {
		e, ok := Lookup(name)
		if !ok {
			t.Fatalf("directive %s missing", name)
		}
		if e.Format != Fmt0 || !e.IsDirective() {
			t.Errorf("directive %s has format %v; want %v", name, e.Format, Fmt0)
		}
		if e.Directive != d {
			t.Errorf("directive %s has kind %v; want %v", name, e.Directive, d)
		}
		if d.String() != name {
			t.Errorf("Directive(%d).String() = %q; want %q", d, d.String(), name)
		}
	}

	// Every Fmt0 entry must be a directive and vice versa.
	for _, d := range data {
		if (d.format == Fmt0) != (d.directive != NotDirective) {
			t.Errorf("entry %s mixes format %v with directive %v", d.mnemonic, d.format, d.directive)
		}
	}
}

func TestExtend(t *testing.T) {
	e, _ := Lookup("JSUB")
	if f, ok := e.Extend(); !ok || f != Fmt4 {
		t.Errorf("JSUB.Extend() = %v, %v; want %v, true", f, ok, Fmt4)
	}

	for _, m := range []string{"ADDR", "FIX", "WORD"} {
		e, _ := Lookup(m)
		if _, ok := e.Extend(); ok {
			t.Errorf("%s.Extend() succeeded; want failure", m)
		}
	}
}

func TestFormatSize(t *testing.T) {
	sizes := map[Format]int{Fmt0: 0, Fmt1: 1, Fmt2: 2, Fmt3: 3, Fmt34: 3, Fmt4: 4}
	for f, n := range sizes {
		if f.Size() != n {
			t.Errorf("%v.Size() = %d; want %d", f, f.Size(), n)
		}
	}
}

func TestLookupOpcode(t *testing.T) {
	tab := Default()
	for _, d := range data {
		if d.format == Fmt0 {
			continue
		}
		for ni := byte(0); ni < 4; ni++ {
			e, ok := tab.LookupOpcode(d.opcode | ni)
			if !ok || e.Mnemonic != d.mnemonic {
				t.Errorf("LookupOpcode(%02X) = %v; want %s", d.opcode|ni, e, d.mnemonic)
			}
		}
	}
}

func TestRegisters(t *testing.T) {
	for name, n := range map[string]byte{"A": 0, "x": 1, "L": 2, "b": 3, "S": 4, "T": 5, "F": 6, "pc": 8, "SW": 9} {
		got, ok := Register(name)
		if !ok || got != n {
			t.Errorf("Register(%q) = %d, %v; want %d", name, got, ok, n)
		}
	}
	if _, ok := Register("Q"); ok {
		t.Error("Register(\"Q\") succeeded; want failure")
	}
	if RegisterName(8) != "PC" || RegisterName(7) != "" {
		t.Errorf("RegisterName mismatch: %q %q", RegisterName(8), RegisterName(7))
	}
}
