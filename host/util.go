// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Return the bytes of an instruction as space-separated hex pairs.
func codeString(b []byte) string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", v)
	}
	return sb.String()
}

func stringToBool(s string) (bool, error) {
	s = strings.ToLower(s)
	switch s {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, errors.Errorf("invalid bool value '%s'", s)
	}
}

// Parse a numeric argument. A '$' prefix selects hexadecimal; otherwise
// the usual Go prefixes (0x, 0o, 0b) apply and the default is decimal.
func parseNumber(s string) (uint32, error) {
	var v uint64
	var err error
	if strings.HasPrefix(s, "$") {
		v, err = strconv.ParseUint(s[1:], 16, 32)
	} else {
		v, err = strconv.ParseUint(s, 0, 32)
	}
	if err != nil {
		return 0, errors.Errorf("invalid number '%s'", s)
	}
	return uint32(v), nil
}

// Wrap text at 80 columns, indenting every line.
func indentWrap(indent int, s string) string {
	const width = 80
	pad := strings.Repeat(" ", indent)

	var lines []string
	line := pad
	for _, word := range strings.Fields(s) {
		if len(line) > indent && len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = pad
		}
		if len(line) > indent {
			line += " "
		}
		line += word
	}
	if len(line) > indent {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
