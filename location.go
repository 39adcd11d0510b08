// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ljson

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

// IsValid reports whether lc describes a location in source text.
func (lc LineCol) IsValid() bool { return lc.Line > 0 }

// String renders lc as line:column.
func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
