// Package emit builds generated text documents and writes them to disk
// without disturbing files whose content has not changed.
package emit

import (
	"fmt"
	"strings"
)

const (
	// eol is the line ending used for every generated file.
	eol = "\n"
	// indentUnit is one level of indentation inside conditional blocks.
	indentUnit = "  "
)

// Document accumulates the ordered lines of one generated file together
// with the current indentation depth. It is transient: built up by a
// render pass, serialized once, then discarded.
//
// A Document is always threaded explicitly through the code that writes to
// it; indentation is never ambient state.
type Document struct {
	lines []string
	level int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Line appends one formatted line at the current indentation level.
func (d *Document) Line(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	d.lines = append(d.lines, strings.Repeat(indentUnit, d.level)+text)
}

// Blank appends an empty line. Blank lines carry no indentation.
func (d *Document) Blank() {
	d.lines = append(d.lines, "")
}

// Indent increases the indentation depth by one level.
func (d *Document) Indent() {
	d.level++
}

// Outdent decreases the indentation depth by one level. Calls must pair
// with Indent; dropping below zero is a generator bug, not an input
// condition, so it panics.
func (d *Document) Outdent() {
	if d.level == 0 {
		panic("emit: Outdent without matching Indent")
	}
	d.level--
}

// Level returns the current indentation depth.
func (d *Document) Level() int {
	return d.level
}

// Len returns the number of lines emitted so far.
func (d *Document) Len() int {
	return len(d.lines)
}

// Render serializes the document using the fixed line-ending convention.
// Every line, including the last, is terminated.
func (d *Document) Render() []byte {
	var b strings.Builder
	for _, line := range d.lines {
		b.WriteString(line)
		b.WriteString(eol)
	}
	return []byte(b.String())
}
