// Package testutil defines support code for unit tests.
package testutil

import (
	"strings"

	"github.com/creachadair/ljson"
)

// Shape renders a compact one-line description of the kinds and values in
// the tree rooted at n, for comparison in tests. Objects render as
// {key:shape ...} in key order, arrays as [shape ...], and values as
// type(text), for example:
//
//	{age:integer(5) tags:[string(a) null()]}
func Shape(n *ljson.Node) string {
	var sb strings.Builder
	writeShape(&sb, n)
	return sb.String()
}

func writeShape(sb *strings.Builder, n *ljson.Node) {
	switch n.Type() {
	case ljson.ValueNode:
		v := n.AsValue()
		sb.WriteString(v.TypeName())
		sb.WriteByte('(')
		if !v.IsNull() {
			sb.WriteString(v.Stringify())
		}
		sb.WriteByte(')')
	case ljson.ArrayNode:
		sb.WriteByte('[')
		for i, e := range n.AsArray().All() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeShape(sb, e)
		}
		sb.WriteByte(']')
	default:
		sb.WriteByte('{')
		first := true
		for k, c := range n.AsObject().All() {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			sb.WriteString(k)
			sb.WriteByte(':')
			writeShape(sb, c)
		}
		sb.WriteByte('}')
	}
}
