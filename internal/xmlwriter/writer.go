// =============================================================================
// XML Report Generator - Streaming XML Writer
// =============================================================================
//
// This module writes nested tagged elements straight to an io.Writer in call
// order. Nothing below the current element is buffered: memory use is O(1)
// beyond a fixed bufio layer, regardless of document size, which is what lets
// the generator produce arbitrarily large reports in a single forward pass.
//
// PRIMITIVES:
//   OpenTag(name, attrs...)        <name a="v">
//   CloseTag(name)                 </name>
//   TextLeaf(name, value, attrs...) <name a="v">value</name>
//
// ESCAPING:
//   The five XML metacharacters (& < > " ') are escaped in every text and
//   attribute value. Element and attribute names are trusted — they come
//   from compiled-in layout tables, never from generated data.
//
// ERROR MODEL:
//   The first write error sticks. Subsequent calls become no-ops and the
//   error surfaces from Err and Flush, so callers check once per section
//   instead of on every call. The sink's lifecycle (open, close) belongs to
//   the caller.
//
// =============================================================================

package xmlwriter

import (
	"bufio"
	"io"
	"strings"
)

// =============================================================================
// ATTRIBUTES
// =============================================================================

// Attr is a single name="value" attribute.
type Attr struct {
	Name  string
	Value string
}

// =============================================================================
// WRITER
// =============================================================================

// Writer streams tagged elements to a sink.
type Writer struct {
	w   *bufio.Writer
	err error
}

// New creates a Writer over the given sink.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Declaration writes the XML declaration. Call once, before anything else.
func (x *Writer) Declaration() {
	x.writeString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
}

// OpenTag writes an opening tag with optional attributes.
func (x *Writer) OpenTag(name string, attrs ...Attr) {
	x.writeString("<")
	x.writeString(name)
	for _, attr := range attrs {
		x.writeString(" ")
		x.writeString(attr.Name)
		x.writeString("=\"")
		x.writeString(Escape(attr.Value))
		x.writeString("\"")
	}
	x.writeString(">")
}

// CloseTag writes a closing tag.
func (x *Writer) CloseTag(name string) {
	x.writeString("</")
	x.writeString(name)
	x.writeString(">")
}

// TextLeaf writes a complete element containing only escaped text.
func (x *Writer) TextLeaf(name, value string, attrs ...Attr) {
	x.OpenTag(name, attrs...)
	x.writeString(Escape(value))
	x.CloseTag(name)
}

// Err returns the first write error, if any.
func (x *Writer) Err() error {
	return x.err
}

// Flush drains the buffer to the sink and returns the first error seen.
func (x *Writer) Flush() error {
	if x.err != nil {
		return x.err
	}
	if err := x.w.Flush(); err != nil {
		x.err = err
	}
	return x.err
}

// writeString appends to the sink unless a previous write already failed.
func (x *Writer) writeString(s string) {
	if x.err != nil {
		return
	}
	if _, err := x.w.WriteString(s); err != nil {
		x.err = err
	}
}

// =============================================================================
// ESCAPING
// =============================================================================

// Escape escapes the five XML metacharacters for use in text and attribute
// values. Escaping is its own inverse under any conformant XML parser.
func Escape(s string) string {
	if !strings.ContainsAny(s, "&<>\"'") {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + 8)

	for _, r := range s {
		switch r {
		case '&':
			builder.WriteString("&amp;")
		case '<':
			builder.WriteString("&lt;")
		case '>':
			builder.WriteString("&gt;")
		case '"':
			builder.WriteString("&quot;")
		case '\'':
			builder.WriteString("&apos;")
		default:
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
