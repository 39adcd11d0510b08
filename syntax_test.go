// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// at returns a context positioned at the first character of seg, with the
// given hierarchy of open contexts.
func at(seg string, tags ...syntax) *parseContext {
	c := newParseContext()
	c.seg = []byte(seg)
	for _, tag := range tags {
		c.push(tag)
	}
	return c
}

func tags(c *parseContext) []syntax {
	var out []syntax
	for _, f := range c.hier.ToSlice() {
		out = append(out, f.tag)
	}
	return out
}

// withObject sets up c as if inside the root object, with an empty key.
func withObject(c *parseContext) *parseContext {
	c.root = New()
	c.nodes.Push(c.root)
	c.keys.Push(keyFrame{})
	return c
}

func TestResolveTrailing(t *testing.T) {
	for _, seg := range []string{",", "\n"} {
		c := at(seg, openingBrace, trailingSpace)
		ok, err := resolveTrailing(c)
		if !ok || err != nil {
			t.Errorf("resolveTrailing(%q): got %v, %v; want true, nil", seg, ok, err)
		}
		if diff := cmp.Diff([]syntax{openingBrace}, tags(c)); diff != "" {
			t.Errorf("Hierarchy (-want, +got):\n%s", diff)
		}
	}
	if ok, _ := resolveTrailing(at("}", openingBrace, trailingSpace)); ok {
		t.Error("resolveTrailing('}'): claimed the closing brace")
	}
	if ok, _ := resolveTrailing(at(",", openingBrace)); ok {
		t.Error("resolveTrailing: claimed without a trailingSpace context")
	}
}

func TestSkipSpace(t *testing.T) {
	// Plain space is consumed.
	if ok, err := skipSpace(at(" ", column)); !ok || err != nil {
		t.Errorf("skipSpace: got %v, %v; want true, nil", ok, err)
	}
	// Space inside a string is not.
	if ok, _ := skipSpace(at(" ", stringValue)); ok {
		t.Error("skipSpace: claimed a space inside a string")
	}

	// Space after a bare literal marks it for flushing.
	c := at(" \t}", column)
	c.value = literal{text: []byte("12"), typ: bareLiteral}
	if ok, err := skipSpace(c); ok || err != nil {
		t.Errorf("skipSpace after literal: got %v, %v; want false, nil", ok, err)
	}
	if c.top() != flushValue {
		t.Errorf("skipSpace after literal: top is %v, want %v", c.top(), flushValue)
	}

	// Unless more literal text follows.
	c = at(" 5}", column)
	c.value = literal{text: []byte("3"), typ: bareLiteral}
	if _, err := skipSpace(c); !errors.Is(err, ErrParsingWrongType) {
		t.Errorf("skipSpace inside literal: got %v, want %v", err, ErrParsingWrongType)
	}
}

func TestToggleQuote(t *testing.T) {
	// A quote in the root object opens a key.
	c := withObject(at(`"`, openingBrace))
	if ok, err := toggleQuote(c); !ok || err != nil {
		t.Fatalf("toggleQuote open key: got %v, %v", ok, err)
	}
	if c.top() != quote || c.key().kind != simpleKey {
		t.Errorf("Open key: top %v, key kind %v", c.top(), c.key().kind)
	}

	// An escaped quote in a key is left for readKey.
	c.key().escape = true
	if ok, _ := toggleQuote(c); ok {
		t.Error("toggleQuote: claimed an escaped quote")
	}
	c.key().escape = false
	if ok, _ := toggleQuote(c); !ok || c.top() != openingBrace {
		t.Errorf("toggleQuote close key: got %v, top %v", ok, c.top())
	}

	// A second key may not begin before the first is used.
	if ok, _ := toggleQuote(c); ok {
		t.Error("toggleQuote: opened a second key")
	}

	// A quote after a colon opens a string value, and the next one closes it.
	c.push(column)
	if ok, _ := toggleQuote(c); !ok || c.top() != stringValue {
		t.Fatalf("toggleQuote open value: got %v, top %v", ok, c.top())
	}
	c.value.text = append(c.value.text, "cat"...)
	if ok, err := toggleQuote(c); !ok || err != nil {
		t.Fatalf("toggleQuote close value: got %v, %v", ok, err)
	}
	if diff := cmp.Diff([]syntax{openingBrace, trailingSpace}, tags(c)); diff != "" {
		t.Errorf("Hierarchy (-want, +got):\n%s", diff)
	}
	if got := c.root.At("").AsValue().AsString(); got != "cat" {
		t.Errorf("Stored value: got %q, want cat", got)
	}
}

func TestReadKey(t *testing.T) {
	c := withObject(at(`a\n"`, openingBrace, quote))
	for c.pos = 0; c.pos < 3; c.pos++ {
		if ok, err := readKey(c); !ok || err != nil {
			t.Fatalf("readKey(%q): got %v, %v", c.ch(), ok, err)
		}
	}
	if got := string(c.key().text); got != `a\n` {
		t.Errorf("Key text: got %q, want %q", got, `a\n`)
	}

	c = withObject(at(`\x`, openingBrace, quote))
	readKey(c)
	c.pos++
	if _, err := readKey(c); !errors.Is(err, ErrParsing) {
		t.Errorf("readKey bad escape: got %v, want %v", err, ErrParsing)
	}

	if ok, _ := readKey(withObject(at("a", openingBrace))); ok {
		t.Error("readKey: claimed a character outside a key")
	}
}

func TestReadColon(t *testing.T) {
	c := withObject(at(":", openingBrace))
	c.key().kind = simpleKey
	if ok, err := readColon(c); !ok || err != nil || c.top() != column {
		t.Errorf("readColon: got %v, %v, top %v", ok, err, c.top())
	}
	if _, err := readColon(c); !errors.Is(err, ErrParsing) {
		t.Errorf("readColon twice: got %v, want %v", err, ErrParsing)
	}
	if ok, _ := readColon(at(":", stringValue)); ok {
		t.Error("readColon: claimed a colon inside a string")
	}
	if _, err := readColon(withObject(at(":", openingBrace))); !errors.Is(err, ErrParsing) {
		t.Errorf("readColon without key: got %v, want %v", err, ErrParsing)
	}
}

func TestReadValue(t *testing.T) {
	c := at(`t\"`, stringValue)
	c.value.typ = openString
	for c.pos = 0; c.pos < 3; c.pos++ {
		if ok, err := readValue(c); !ok || err != nil {
			t.Fatalf("readValue(%q): got %v, %v", c.ch(), ok, err)
		}
	}
	if got := string(c.value.text); got != `t\"` || c.value.typ != openString {
		t.Errorf("Value: got %q (%v), want %q", got, c.value.typ, `t\"`)
	}

	c = at(`\z`, stringValue)
	c.value.typ = openString
	readValue(c)
	c.pos++
	if _, err := readValue(c); !errors.Is(err, ErrParsing) {
		t.Errorf("readValue bad escape: got %v, want %v", err, ErrParsing)
	}

	c = at("\n", stringValue)
	if _, err := readValue(c); !errors.Is(err, ErrParsing) {
		t.Errorf("readValue newline in string: got %v, want %v", err, ErrParsing)
	}

	for _, ch := range []string{"{", "}", "[", "]", ",", "\n", `"`, ":"} {
		if ok, _ := readValue(at(ch, column)); ok {
			t.Errorf("readValue: claimed %q after a colon", ch)
		}
	}
	c = at("7", arrayScope)
	if ok, _ := readValue(c); !ok || c.value.typ != bareLiteral {
		t.Errorf("readValue in array: got %v, type %v", ok, c.value.typ)
	}
}

func TestEndStatement(t *testing.T) {
	c := withObject(at(",", openingBrace, column))
	c.key().text = []byte("n")
	c.value = literal{text: []byte("42"), typ: bareLiteral}
	if ok, err := endStatement(c); !ok || err != nil {
		t.Fatalf("endStatement: got %v, %v", ok, err)
	}
	if got := c.root.At("n").AsValue().AsInteger(); got != 42 {
		t.Errorf("Stored value: got %d, want 42", got)
	}
	if diff := cmp.Diff([]syntax{openingBrace}, tags(c)); diff != "" {
		t.Errorf("Hierarchy (-want, +got):\n%s", diff)
	}

	// Empty lines and empty elements are skipped.
	if ok, err := endStatement(at("\n", arrayScope)); !ok || err != nil {
		t.Errorf("endStatement empty line: got %v, %v", ok, err)
	}
	if ok, err := endStatement(at(",", arrayScope)); !ok || err != nil {
		t.Errorf("endStatement empty element: got %v, %v", ok, err)
	}
	if ok, err := endStatement(withObject(at(",", openingBrace))); !ok || err != nil {
		t.Errorf("endStatement empty member: got %v, %v", ok, err)
	}

	// A comma may not replace a value, nor follow a bare key.
	if _, err := endStatement(withObject(at(",", openingBrace, column))); !errors.Is(err, ErrParsing) {
		t.Errorf("endStatement missing value: got %v, want %v", err, ErrParsing)
	}
	c = withObject(at(",", objectScope))
	c.key().kind = simpleKey
	if _, err := endStatement(c); !errors.Is(err, ErrParsing) {
		t.Errorf("endStatement after key: got %v, want %v", err, ErrParsing)
	}
	if _, err := endStatement(at(",", closingBrace)); !errors.Is(err, ErrParsing) {
		t.Errorf("endStatement after root: got %v, want %v", err, ErrParsing)
	}

	// A flush marker ends the value and expects a separator.
	c = at(" ", arrayScope, flushValue)
	c.nodes.Push(NewNode(ArrayNode))
	c.value = literal{text: []byte("null"), typ: bareLiteral}
	if ok, err := endStatement(c); !ok || err != nil {
		t.Fatalf("endStatement marked: got %v, %v", ok, err)
	}
	if diff := cmp.Diff([]syntax{arrayScope, trailingSpace}, tags(c)); diff != "" {
		t.Errorf("Hierarchy (-want, +got):\n%s", diff)
	}
}

func TestReadBrace(t *testing.T) {
	c := at("{")
	if ok, err := readBrace(c); !ok || err != nil || c.top() != openingBrace || c.root == nil {
		t.Fatalf("readBrace open: got %v, %v, top %v", ok, err, c.top())
	}
	c.seg = []byte("}")
	if ok, err := readBrace(c); !ok || err != nil || c.top() != closingBrace {
		t.Fatalf("readBrace close: got %v, %v, top %v", ok, err, c.top())
	}
	if _, err := readBrace(c); !errors.Is(err, ErrParsing) {
		t.Errorf("readBrace extra: got %v, want %v", err, ErrParsing)
	}
}

func TestReadArray(t *testing.T) {
	c := at("[")
	if ok, err := readArray(c); !ok || err != nil || c.top() != arrayScope {
		t.Fatalf("readArray open root: got %v, %v, top %v", ok, err, c.top())
	}
	if ok, err := readArray(c); !ok || err != nil {
		t.Fatalf("readArray open nested: got %v, %v", ok, err)
	}
	c.seg = []byte("]")
	if ok, err := readArray(c); !ok || err != nil {
		t.Fatalf("readArray close nested: got %v, %v", ok, err)
	}
	if diff := cmp.Diff([]syntax{arrayScope, trailingSpace}, tags(c)); diff != "" {
		t.Errorf("Hierarchy (-want, +got):\n%s", diff)
	}
	if ok, err := readArray(c); !ok || err != nil || c.top() != closingBrace {
		t.Fatalf("readArray close root: got %v, %v, top %v", ok, err, c.top())
	}
	if !c.root.IsArray() || c.root.Len() != 1 || !c.root.Index(0).IsArray() {
		t.Errorf("Root: got %v, want [[]]", c.root)
	}

	// An array value is attached under the pending key.
	c = withObject(at("[", openingBrace, column))
	c.key().text = []byte("k")
	if ok, err := readArray(c); !ok || err != nil {
		t.Fatalf("readArray member: got %v, %v", ok, err)
	}
	if !c.root.At("k").IsArray() || c.key().kind != arrayKey {
		t.Errorf("Member: got %v, key kind %v", c.root.At("k"), c.key().kind)
	}

	// A bracket inside a literal or in key position is not an array.
	c = at("[", arrayScope)
	c.value = literal{text: []byte("x"), typ: bareLiteral}
	if ok, _ := readArray(c); ok {
		t.Error("readArray: claimed '[' inside a literal")
	}
	if ok, _ := readArray(withObject(at("[", openingBrace))); ok {
		t.Error("readArray: claimed '[' in key position")
	}
	if _, err := readArray(withObject(at("]", openingBrace))); !errors.Is(err, ErrParsing) {
		t.Errorf("readArray mismatched: got %v, want %v", err, ErrParsing)
	}
}

func TestReadObject(t *testing.T) {
	c := withObject(at("{", openingBrace, column))
	c.key().text = []byte("o")
	if ok, err := readObject(c); !ok || err != nil || c.top() != objectScope {
		t.Fatalf("readObject open: got %v, %v, top %v", ok, err, c.top())
	}
	if n := len(c.keys.ToSlice()); n != 2 {
		t.Errorf("Key frames: got %d, want 2", n)
	}
	c.seg = []byte("}")
	if ok, err := readObject(c); !ok || err != nil {
		t.Fatalf("readObject close: got %v, %v", ok, err)
	}
	if diff := cmp.Diff([]syntax{openingBrace, trailingSpace}, tags(c)); diff != "" {
		t.Errorf("Hierarchy (-want, +got):\n%s", diff)
	}
	if !c.root.At("o").IsObject() || c.key().kind != noKey {
		t.Errorf("Member: got %v, key kind %v", c.root.At("o"), c.key().kind)
	}

	// The root braces belong to readBrace.
	if ok, _ := readObject(at("{")); ok {
		t.Error("readObject: claimed the root '{'")
	}
	if ok, _ := readObject(withObject(at("}", openingBrace))); ok {
		t.Error("readObject: claimed the root '}'")
	}

	// A nested object may not close with a key pending.
	c = withObject(at("{", openingBrace, column))
	readObject(c)
	c.key().kind = simpleKey
	c.seg = []byte("}")
	if _, err := readObject(c); !errors.Is(err, ErrParsing) {
		t.Errorf("readObject with pending key: got %v, want %v", err, ErrParsing)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		typ  literalType
		want *Value
		kind ErrorKind
	}{
		{"null", bareLiteral, NewNull(), 0},
		{"true", bareLiteral, NewBoolean(true), 0},
		{"false", bareLiteral, NewBoolean(false), 0},
		{"0", bareLiteral, NewInteger(0), 0},
		{"-12", bareLiteral, NewInteger(-12), 0},
		{"3.25", bareLiteral, NewDouble(3.25), 0},
		{".5", bareLiteral, NewDouble(0.5), 0},
		{"null", openString, NewString("null"), 0},
		{"", openString, NewString(""), 0},
		{"nul", bareLiteral, nil, ParsingErrorWrongType},
		{"1.2.3", bareLiteral, nil, ParsingErrorWrongType},
		{"1e3", bareLiteral, nil, ParsingErrorWrongType},
		{"--1", bareLiteral, nil, ParsingErrorWrongType},
		{".", bareLiteral, nil, ParsingErrorWrongType},
		{"x", escapeChar, nil, ParsingError},
	}
	for _, tc := range tests {
		c := at("}")
		c.value = literal{text: []byte(tc.text), typ: tc.typ}
		got, err := c.classify()
		if tc.kind != 0 {
			if KindOf(err) != tc.kind {
				t.Errorf("classify(%q): got %v, want kind %v", tc.text, err, tc.kind)
			}
			continue
		}
		if err != nil {
			t.Errorf("classify(%q): unexpected error: %v", tc.text, err)
		} else if !got.Equal(tc.want) {
			t.Errorf("classify(%q): got %v (%v), want %v (%v)", tc.text, got, got.Type(), tc.want, tc.want.Type())
		}
	}
}

func TestSyntaxError(t *testing.T) {
	tests := []struct {
		top  []syntax
		want string
	}{
		{nil, "expected ['{', '['] but found 'x'"},
		{[]syntax{arrayScope}, "expected 'array values' but found 'x'"},
		{[]syntax{openingBrace, column}, "expected 'value' but found 'x'"},
		{[]syntax{closingBrace}, "expected 'EOF' but found 'x'"},
	}
	for _, tc := range tests {
		err := syntaxError(at("x", tc.top...))
		var e *Error
		if !errors.As(err, &e) || e.Kind != ParsingError {
			t.Errorf("syntaxError: got %v, want a ParsingError", err)
			continue
		}
		if e.Message != tc.want {
			t.Errorf("syntaxError: got %q, want %q", e.Message, tc.want)
		}
	}
}
