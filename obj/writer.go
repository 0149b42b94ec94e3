// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// A Writer writes object records as newline-terminated text lines. Output
// is buffered; call Flush when done.
type Writer struct {
	w *bufio.Writer
	n int // records written
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteRecord writes a single record.
func (w *Writer) WriteRecord(r Record) error {
	if t, ok := r.(Text); ok && len(t.Code) > MaxTextLength {
		return errors.Errorf("text record at %06X holds %d bytes", t.Start, len(t.Code))
	}
	if _, err := w.w.WriteString(r.String()); err != nil {
		return errors.Wrap(err, "writing record")
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "writing record")
	}
	w.n++
	return nil
}

// Records returns the number of records written so far.
func (w *Writer) Records() int {
	return w.n
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// A Module is an object program held in memory. It collects records as a
// record writer and can be read back from text with Read.
type Module struct {
	Header Header
	Text   []Text
	End    End

	hasHeader bool
	hasEnd    bool
}

// WriteRecord adds a record to the module. Text records are copied.
func (m *Module) WriteRecord(r Record) error {
	switch r := r.(type) {
	case Header:
		if m.hasHeader {
			return errors.New("duplicate header record")
		}
		m.Header, m.hasHeader = r, true
	case Text:
		if m.hasEnd {
			return errors.New("text record after end record")
		}
		code := make([]byte, len(r.Code))
		copy(code, r.Code)
		m.Text = append(m.Text, Text{Start: r.Start, Code: code})
	case End:
		if m.hasEnd {
			return errors.New("duplicate end record")
		}
		m.End, m.hasEnd = r, true
	default:
		return errors.Errorf("unknown record type '%c'", r.Type())
	}
	return nil
}

// Complete returns true if the module has both a Header and an End record.
func (m *Module) Complete() bool {
	return m.hasHeader && m.hasEnd
}

// Records returns the module's records in object program order.
func (m *Module) Records() []Record {
	var recs []Record
	if m.hasHeader {
		recs = append(recs, m.Header)
	}
	for _, t := range m.Text {
		recs = append(recs, t)
	}
	if m.hasEnd {
		recs = append(recs, m.End)
	}
	return recs
}

// WriteTo writes the module's records to w as text.
func (m *Module) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	ow := NewWriter(cw)
	for _, r := range m.Records() {
		if err := ow.WriteRecord(r); err != nil {
			return cw.n, err
		}
	}
	err := ow.Flush()
	return cw.n, err
}

// Image returns the module's code as a contiguous memory image starting at
// the header's load address. Reserved gaps are zero-filled.
func (m *Module) Image() []byte {
	img := make([]byte, m.Header.Length)
	for _, t := range m.Text {
		if t.Start < m.Header.Start {
			continue
		}
		off := t.Start - m.Header.Start
		if off >= uint32(len(img)) {
			continue
		}
		copy(img[off:], t.Code)
	}
	return img
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
