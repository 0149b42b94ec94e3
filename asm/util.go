// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strconv"

const (
	minWord = -(1 << 23)
	maxWord = 1<<24 - 1
)

func hexchar(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

func hexToByte(s string) byte {
	return hexchar(s[0])<<4 | hexchar(s[1])
}

// Return true if every character in the string is a decimal digit.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !decimal(s[i]) {
			return false
		}
	}
	return true
}

// Parse an unsigned decimal operand.
func parseDecimal(s string) (uint32, bool) {
	if !isDecimal(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err == nil
}

// Parse a WORD operand, a signed decimal value that must fit in 24 bits.
func parseWord(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v < minWord || v > maxWord {
		return 0, false
	}
	return v, true
}

// Return a big-endian representation of a value using the requested
// number of bytes.
func toBytes(bytes int, value uint32) []byte {
	b := make([]byte, bytes)
	for i := bytes - 1; i >= 0; i-- {
		b[i] = byte(value)
		value >>= 8
	}
	return b
}

// Parse a BYTE operand of the form C'...' or X'...'. Return isConst=false
// if the operand is neither.
func parseConstant(s string) (b []byte, isConst bool, err error) {
	if len(s) < 2 || s[1] != '\'' {
		return nil, false, nil
	}

	kind := s[0] | 0x20 // lower case
	if kind != 'c' && kind != 'x' {
		return nil, false, nil
	}
	if len(s) < 3 || s[len(s)-1] != '\'' {
		return nil, true, ErrInvalidOperand
	}

	body := s[2 : len(s)-1]
	if kind == 'c' {
		return []byte(body), true, nil
	}

	for i := 0; i < len(body); i++ {
		if !hexadecimal(body[i]) {
			return nil, true, ErrNumericParse
		}
	}
	if len(body)%2 != 0 {
		body = "0" + body
	}
	b = make([]byte, 0, len(body)/2)
	for i := 0; i < len(body); i += 2 {
		b = append(b, hexToByte(body[i:]))
	}
	return b, true, nil
}
