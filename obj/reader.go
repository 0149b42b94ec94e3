// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"bufio"
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Read parses an object program from r.
func Read(r io.Reader) (*Module, error) {
	m := &Module{}

	scanner := bufio.NewScanner(r)
	for row := 1; scanner.Scan(); row++ {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}

		rec, err := ParseRecord(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", row)
		}
		if err := m.WriteRecord(rec); err != nil {
			return nil, errors.Wrapf(err, "line %d", row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading object program")
	}

	if !m.hasHeader {
		return nil, errors.New("missing header record")
	}
	if !m.hasEnd {
		return nil, errors.New("missing end record")
	}
	return m, nil
}

// ParseRecord parses a single line of an object program.
func ParseRecord(line string) (Record, error) {
	if line == "" {
		return nil, errors.New("empty record")
	}

	switch line[0] {
	case 'H':
		if len(line) != 1+NameLength+12 {
			return nil, errors.Errorf("header record has length %d", len(line))
		}
		start, err := parseHex(line[7:13])
		if err != nil {
			return nil, err
		}
		length, err := parseHex(line[13:19])
		if err != nil {
			return nil, err
		}
		return Header{
			Name:   strings.TrimRight(line[1:7], " "),
			Start:  start,
			Length: length,
		}, nil

	case 'T':
		if len(line) < 9 {
			return nil, errors.New("text record too short")
		}
		start, err := parseHex(line[1:7])
		if err != nil {
			return nil, err
		}
		n, err := parseHex(line[7:9])
		if err != nil {
			return nil, err
		}
		if n > MaxTextLength {
			return nil, errors.Errorf("text record length %d exceeds %d", n, MaxTextLength)
		}
		code, err := hex.DecodeString(line[9:])
		if err != nil {
			return nil, errors.Wrap(err, "text record code")
		}
		if uint32(len(code)) != n {
			return nil, errors.Errorf("text record declares %d bytes but holds %d", n, len(code))
		}
		return Text{Start: start, Code: code}, nil

	case 'E':
		if len(line) != 7 {
			return nil, errors.Errorf("end record has length %d", len(line))
		}
		first, err := parseHex(line[1:7])
		if err != nil {
			return nil, err
		}
		return End{First: first}, nil

	default:
		return nil, errors.Errorf("unknown record type '%c'", line[0])
	}
}

func parseHex(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid hex field '%s'", s)
	}
	return uint32(v), nil
}
