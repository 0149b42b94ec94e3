// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// A statement is a single source line split into its label, mnemonic and
// operand fields.
type statement struct {
	row      int       // 1-based source line number
	text     fstring   // line with any trailing comment removed
	label    fstring   // label field (may be empty)
	mnemonic fstring   // mnemonic field, including any '+' prefix
	operands []fstring // comma-separated operands (at most 2)
	fields   int       // number of fields present, counting the label slot
}

const maxOperands = 2

// Split a line of source into statement fields. Return ok=false if the line
// is blank or contains only a comment.
func splitStatement(line fstring) (st statement, ok bool, err error) {
	line = line.stripTrailingComment()
	if l := line.consumeWhitespace(); l.isEmpty() {
		return st, false, nil
	}

	st.row = line.row
	st.text = line
	st.fields = 1

	// A line beginning with whitespace has no label.
	if !line.startsWith(whitespace) {
		st.label, line = line.consumeWhile(wordChar)
	}
	line = line.consumeWhitespace()

	if !line.isEmpty() {
		st.mnemonic, line = line.consumeWhile(wordChar)
		st.fields++
		line = line.consumeWhitespace()
	}

	if !line.isEmpty() {
		st.fields++
		st.operands, err = splitOperands(line)
		if err != nil {
			return st, false, err
		}
	}

	return st, true, nil
}

// Split an operand field into its comma-separated operands.
func splitOperands(line fstring) ([]fstring, error) {
	var operands []fstring
	remain := line
	for {
		var item fstring
		item, remain = remain.consumeUntilUnquotedChar(',')
		item = item.consumeWhitespace().trimRight()
		if item.isEmpty() || item.hasUnquotedWhitespace() {
			return nil, newError(line.row, line.str, ErrMalformedLine)
		}
		operands = append(operands, item)

		if remain.isEmpty() {
			break
		}
		remain = remain.consume(1)
	}

	if len(operands) > maxOperands {
		return nil, newError(line.row, line.str, ErrMalformedLine)
	}
	return operands, nil
}

func (st *statement) operand(i int) string {
	if i < len(st.operands) {
		return st.operands[i].str
	}
	return ""
}
