// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"testing"

	"github.com/pkg/errors"
)

func TestSplitStatement(t *testing.T) {
	tests := []struct {
		line     string
		ok       bool
		label    string
		mnemonic string
		operands []string
		fields   int
	}{
		{"", false, "", "", nil, 0},
		{"   \t ", false, "", "", nil, 0},
		{". whole line comment", false, "", "", nil, 0},
		{"\t. indented comment", false, "", "", nil, 0},
		{"LOOP\tLDA\tALPHA", true, "LOOP", "LDA", []string{"ALPHA"}, 3},
		{"\tLDA\tALPHA . load", true, "", "LDA", []string{"ALPHA"}, 3},
		{"\tRSUB", true, "", "RSUB", nil, 2},
		{"END", true, "END", "", nil, 1},
		{"\t+JSUB\tRDREC", true, "", "+JSUB", []string{"RDREC"}, 3},
		{"\tSTCH\tBUF, X", true, "", "STCH", []string{"BUF", "X"}, 3},
		{"EOF\tBYTE\tC'A. B'", true, "EOF", "BYTE", []string{"C'A. B'"}, 3},
		{"\tBYTE\tC'x,y' . data", true, "", "BYTE", []string{"C'x,y'"}, 3},
		{"\tCOMPR\tA,S\r", true, "", "COMPR", []string{"A", "S"}, 3},
	}

	for _, test := range tests {
		st, ok, err := splitStatement(newFstring(7, test.line))
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.line, err)
			continue
		}
		if ok != test.ok {
			t.Errorf("%q: got ok=%v", test.line, ok)
			continue
		}
		if !ok {
			continue
		}

		if st.row != 7 || st.label.str != test.label || st.mnemonic.str != test.mnemonic || st.fields != test.fields {
			t.Errorf("%q: got row=%d label=%q mnemonic=%q fields=%d", test.line,
				st.row, st.label.str, st.mnemonic.str, st.fields)
		}
		if len(st.operands) != len(test.operands) {
			t.Errorf("%q: got %d operands, want %d", test.line, len(st.operands), len(test.operands))
			continue
		}
		for i, o := range test.operands {
			if st.operand(i) != o {
				t.Errorf("%q: operand %d: got %q, want %q", test.line, i, st.operand(i), o)
			}
		}
	}
}

func TestSplitStatementErrors(t *testing.T) {
	tests := []string{
		"\tLDA\tA B",
		"\tLDA\tA,",
		"\tLDA\t,X",
		"\tLDA\tA,X,X",
	}

	for _, line := range tests {
		_, _, err := splitStatement(newFstring(1, line))
		if !errors.Is(err, ErrMalformedLine) {
			t.Errorf("%q: got %v, want ErrMalformedLine", line, err)
		}
	}
}

func TestFstringColumns(t *testing.T) {
	l := newFstring(1, "\tLDA\tX")
	l = l.consumeWhitespace()
	if l.column != 8 {
		t.Errorf("column after tab: got %d, want 8", l.column)
	}
	_, l = l.consumeWhile(wordChar)
	l = l.consumeWhitespace()
	if l.column != 16 || l.str != "X" {
		t.Errorf("got column=%d str=%q", l.column, l.str)
	}
}

func TestParseConstant(t *testing.T) {
	tests := []struct {
		s       string
		b       string
		isConst bool
		err     error
	}{
		{"C'EOF'", "EOF", true, nil},
		{"c'ok'", "ok", true, nil},
		{"X'05'", "\x05", true, nil},
		{"x'5'", "\x05", true, nil},
		{"X'GG'", "", true, ErrNumericParse},
		{"C'EOF", "", true, ErrInvalidOperand},
		{"5", "", false, nil},
		{"Z'00'", "", false, nil},
	}

	for _, test := range tests {
		b, isConst, err := parseConstant(test.s)
		if string(b) != test.b || isConst != test.isConst || err != test.err {
			t.Errorf("%q: got (%q, %v, %v)", test.s, b, isConst, err)
		}
	}
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		s  string
		v  int64
		ok bool
	}{
		{"0", 0, true},
		{"-8388608", -8388608, true},
		{"-8388609", 0, false},
		{"16777215", 16777215, true},
		{"16777216", 0, false},
		{"abc", 0, false},
	}

	for _, test := range tests {
		v, ok := parseWord(test.s)
		if v != test.v || ok != test.ok {
			t.Errorf("%q: got (%d, %v)", test.s, v, ok)
		}
	}
}

func TestSymbolTable(t *testing.T) {
	s := NewSymbolTable()
	if err := s.Define("B", 6); err != nil {
		t.Fatal(err)
	}
	if err := s.Define("A", 6); err != nil {
		t.Fatal(err)
	}
	if err := s.Define("C", 3); err != nil {
		t.Fatal(err)
	}
	if err := s.Define("A", 9); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("got %v, want ErrDuplicateSymbol", err)
	}

	if addr, ok := s.Lookup("A"); !ok || addr != 6 {
		t.Errorf("A: got %d, %v", addr, ok)
	}
	if _, ok := s.Lookup("a"); ok {
		t.Error("symbols should be case sensitive")
	}

	sorted := s.SortedByAddress()
	want := []string{"C", "A", "B"}
	for i, w := range want {
		if sorted[i].Name != w {
			t.Errorf("sorted %d: got %s, want %s", i, sorted[i].Name, w)
		}
	}
	if s.Len() != 3 {
		t.Errorf("len: got %d", s.Len())
	}
}
