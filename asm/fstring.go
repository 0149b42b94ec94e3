// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// An fstring is a string that keeps track of its position within the
// source from which it was read.
type fstring struct {
	row    int    // 1-based line number of substring
	column int    // 0-based column of start of substring
	str    string // the actual substring of interest
	full   string // the full line as originally read from the source
}

func newFstring(row int, str string) fstring {
	return fstring{row, 0, str, str}
}

func (l fstring) String() string {
	return l.str
}

func (l *fstring) advanceColumn(n int) int {
	c := l.column
	for i := 0; i < n; i++ {
		if l.str[i] == '\t' {
			c += 8 - (c % 8)
		} else {
			c++
		}
	}
	return c
}

func (l fstring) consume(n int) fstring {
	col := l.advanceColumn(n)
	return fstring{l.row, col, l.str[n:], l.full}
}

func (l fstring) trunc(n int) fstring {
	return fstring{l.row, l.column, l.str[:n], l.full}
}

func (l *fstring) isEmpty() bool {
	return len(l.str) == 0
}

func (l *fstring) startsWith(fn func(c byte) bool) bool {
	return len(l.str) > 0 && fn(l.str[0])
}

func (l *fstring) startsWithChar(c byte) bool {
	return len(l.str) > 0 && l.str[0] == c
}

func (l fstring) consumeWhitespace() fstring {
	return l.consume(l.scanWhile(whitespace))
}

func (l *fstring) scanWhile(fn func(c byte) bool) int {
	i := 0
	for ; i < len(l.str) && fn(l.str[i]); i++ {
	}
	return i
}

func (l *fstring) consumeWhile(fn func(c byte) bool) (consumed, remain fstring) {
	i := l.scanWhile(fn)
	consumed, remain = l.trunc(i), l.consume(i)
	return
}

// Consume characters up to the first occurrence of c that is not inside a
// quoted constant such as C'A,B'.
func (l *fstring) consumeUntilUnquotedChar(c byte) (consumed, remain fstring) {
	var quoted bool
	i := 0
	for ; i < len(l.str); i++ {
		switch {
		case quoted:
			quoted = !stringQuote(l.str[i])
		case l.str[i] == c:
			consumed, remain = l.trunc(i), l.consume(i)
			return
		case stringQuote(l.str[i]):
			quoted = true
		}
	}
	consumed, remain = l.trunc(i), l.consume(i)
	return
}

// Return true if the string contains whitespace outside of a quoted
// constant.
func (l *fstring) hasUnquotedWhitespace() bool {
	var quoted bool
	for i := 0; i < len(l.str); i++ {
		switch {
		case quoted:
			quoted = !stringQuote(l.str[i])
		case whitespace(l.str[i]):
			return true
		case stringQuote(l.str[i]):
			quoted = true
		}
	}
	return false
}

// Strip a trailing comment and any whitespace preceding it.
func (l fstring) stripTrailingComment() fstring {
	lastNonWS := 0
	for i := 0; i < len(l.str); i++ {
		if comment(l.str[i]) {
			break
		}
		if stringQuote(l.str[i]) {
			i++
			for ; i < len(l.str) && !stringQuote(l.str[i]); i++ {
			}
			lastNonWS = i
			if i == len(l.str) {
				break
			}
		}
		if !whitespace(l.str[i]) {
			lastNonWS = i + 1
		}
	}
	return l.trunc(lastNonWS)
}

// Strip trailing whitespace.
func (l fstring) trimRight() fstring {
	n := len(l.str)
	for n > 0 && whitespace(l.str[n-1]) {
		n--
	}
	return l.trunc(n)
}

//
// character helper functions
//

func whitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func wordChar(c byte) bool {
	return !whitespace(c)
}

func decimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexadecimal(c byte) bool {
	return decimal(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func comment(c byte) bool {
	return c == '.'
}

func stringQuote(c byte) bool {
	return c == '\''
}
