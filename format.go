// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"bufio"
	"io"
	"math"
	"os"
	"strings"

	"github.com/creachadair/ljson/internal/escape"
)

// A Formatter carries the settings for rendering a node tree as indented
// JSON text. A zero value is ready for use with default settings, indenting
// each level by four spaces.
type Formatter struct {
	Pad   byte // the indentation character (default ' ')
	Width int  // the number of pad characters per level (default 4)
}

func (f Formatter) pad() byte {
	if f.Pad == 0 {
		return ' '
	}
	return f.Pad
}

func (f Formatter) width() int {
	if f.Width <= 0 {
		return 4
	}
	return f.Width
}

// Format renders n to w with default settings.
func Format(w io.Writer, n *Node) error {
	var f Formatter
	return f.Format(w, n)
}

// FormatToString renders n to a string with default settings.
func FormatToString(n *Node) string {
	var f Formatter
	return f.FormatToString(n)
}

// Format renders n to w using the settings from f.
func (f Formatter) Format(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	var err error
	f.Dump(n, func(s string) {
		if err == nil {
			_, err = bw.WriteString(s)
		}
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// FormatToString renders n to a string using the settings from f.
func (f Formatter) FormatToString(n *Node) string {
	var sb strings.Builder
	f.Dump(n, func(s string) { sb.WriteString(s) })
	return sb.String()
}

// Dump walks n depth-first and passes its rendered text to emit in order.
// Object members are rendered in key order. The concatenation of the
// strings passed to emit is the complete formatted text; no trailing newline
// is added.
//
// Text parsed by this package always formats as valid JSON. For values built
// by the caller, a backslash in string text that does not begin a complete
// escape sequence is escaped, and a NaN or infinite double is rendered as
// null, since JSON has no spelling for it.
func (f Formatter) Dump(n *Node, emit func(string)) {
	f.dumpNode(n, emit, 0)
}

func (f Formatter) indent(depth int) string {
	return strings.Repeat(string(f.pad()), depth*f.width())
}

func (f Formatter) dumpNode(n *Node, emit func(string), depth int) {
	switch n.typ {
	case ValueNode:
		dumpValue(n.val, emit)

	case ArrayNode:
		if n.arr.Len() == 0 {
			emit("[]")
			return
		}
		emit("[\n")
		in := f.indent(depth + 1)
		for i, e := range n.arr.elts {
			emit(in)
			f.dumpNode(e, emit, depth+1)
			if i+1 < n.arr.Len() {
				emit(",")
			}
			emit("\n")
		}
		emit(f.indent(depth) + "]")

	default:
		if n.object().Len() == 0 {
			emit("{}")
			return
		}
		emit("{\n")
		in := f.indent(depth + 1)
		i := 0
		for key, c := range n.object().All() {
			emit(in + `"` + escape.QuoteString(key) + `": `)
			f.dumpNode(c, emit, depth+1)
			if i++; i < n.object().Len() {
				emit(",")
			}
			emit("\n")
		}
		emit(f.indent(depth) + "}")
	}
}

func dumpValue(v *Value, emit func(string)) {
	if v.IsString() {
		emit(`"` + escape.QuoteString(v.str) + `"`)
	} else if v.IsEmpty() || (v.IsDouble() && (math.IsNaN(v.dbl) || math.IsInf(v.dbl, 0))) {
		emit("null")
	} else {
		emit(v.Stringify())
	}
}

// Dump renders n with default settings, passing its text to emit.
func (n *Node) Dump(emit func(string)) { Formatter{}.Dump(n, emit) }

// String renders n as formatted JSON text with default settings.
func (n *Node) String() string { return FormatToString(n) }

// WriteTo renders n to w with default settings, followed by a newline.
// It implements [io.WriterTo].
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	if err := Format(cw, n); err != nil {
		return cw.n, err
	}
	_, err := io.WriteString(cw, "\n")
	return cw.n, err
}

// WriteFile renders n with the settings of f to the named file, creating or
// truncating it. Errors are reported with kind FilesystemError.
func (f Formatter) WriteFile(path string, n *Node) error {
	out, err := os.Create(path)
	if err != nil {
		return fsError(err, "cannot create %q", path)
	}
	if err := f.Format(out, n); err != nil {
		out.Close()
		return fsError(err, "writing %q", path)
	}
	if err := out.Close(); err != nil {
		return fsError(err, "closing %q", path)
	}
	return nil
}

// WriteFile renders n with default settings to the named file.
func (n *Node) WriteFile(path string) error { return Formatter{}.WriteFile(path, n) }

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(data []byte) (int, error) {
	nw, err := c.w.Write(data)
	c.n += int64(nw)
	return nw, err
}
