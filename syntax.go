// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"strconv"

	"github.com/creachadair/ljson/internal/escape"
	"go4.org/mem"
)

// A step examines the current character of c. It reports true if it
// consumed the character, or an error if the character is invalid in the
// current context. A step that reports false leaves the character for the
// next step in the chain.
type step func(c *parseContext) (bool, error)

// steps is the chain of syntax handlers, in order of precedence.
var steps = [...]step{
	resolveTrailing,
	skipSpace,
	toggleQuote,
	readKey,
	readColon,
	readValue,
	readArray,
	readObject,
	endStatement,
	readBrace,
}

// advance feeds the current character of c through the handler chain.
func (c *parseContext) advance() error {
	for _, h := range steps {
		ok, err := h(c)
		if err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	return syntaxError(c)
}

func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\r' }

// isTerminator reports whether ch may end a bare literal.
func isTerminator(ch byte) bool {
	switch ch {
	case ',', '\n', '}', ']':
		return true
	}
	return false
}

// resolveTrailing ends the separator context after a complete value.
func resolveTrailing(c *parseContext) (bool, error) {
	if c.top() != trailingSpace {
		return false, nil
	}
	switch c.ch() {
	case ',', '\n':
		c.pop()
		return true, nil
	}
	return false, nil
}

// skipSpace discards whitespace outside strings. Whitespace after a bare
// literal ends it: the literal is marked for flushing by endStatement, as
// long as nothing but space separates it from its terminator.
func skipSpace(c *parseContext) (bool, error) {
	if !isSpace(c.ch()) || c.topIs(quote, stringValue) {
		return false, nil
	}
	if c.value.typ != bareLiteral {
		return true, nil
	}
	for i := c.pos + 1; i < len(c.seg); i++ {
		if isSpace(c.seg[i]) {
			continue
		} else if !isTerminator(c.seg[i]) {
			return true, c.fail(ParsingErrorWrongType, "unexpected space in value %q", c.value.text)
		}
		break
	}
	c.push(flushValue)
	return false, nil
}

// toggleQuote opens and closes keys and string values.
func toggleQuote(c *parseContext) (bool, error) {
	if c.ch() != '"' {
		return false, nil
	}
	switch c.top() {
	case stringValue:
		if c.value.typ == escapeChar {
			return false, nil
		}
		c.pop()
		if err := c.flush(); err != nil {
			return true, err
		}
		c.push(trailingSpace)
		return true, nil

	case quote:
		k := c.key()
		if k.escape {
			return false, nil
		}
		if !escape.ValidEscapes(mem.B(k.text)) {
			return true, c.fail(ParsingError, "invalid escape in key %q", k.text)
		}
		c.pop()
		return true, nil

	case column, arrayScope:
		if c.value.typ != noLiteral {
			return false, nil
		}
		c.push(stringValue)
		c.value.typ = openString
		return true, nil

	case openingBrace, objectScope:
		if k := c.key(); k.kind == noKey {
			c.push(quote)
			k.kind = simpleKey
			return true, nil
		}
	}
	return false, nil
}

// readKey accumulates the text of a quoted key.
func readKey(c *parseContext) (bool, error) {
	if c.top() != quote {
		return false, nil
	}
	k, ch := c.key(), c.ch()
	switch {
	case ch == '\n':
		return true, c.fail(ParsingError, "unterminated key %q", k.text)
	case ch < ' ':
		return true, c.fail(ParsingError, "invalid control character %q in key", ch)
	case k.escape:
		if !escape.IsEscape(ch) {
			return true, c.fail(ParsingError, "invalid escape '\\%c' in key", ch)
		}
		k.escape = false
	case ch == '\\':
		k.escape = true
	}
	k.text = append(k.text, ch)
	return true, nil
}

// readColon handles the separator between a key and its value.
func readColon(c *parseContext) (bool, error) {
	if c.ch() != ':' || c.topIs(quote, stringValue) {
		return false, nil
	}
	switch c.top() {
	case column:
		if c.value.typ == noLiteral {
			return true, c.fail(ParsingError, "two consecutive colons")
		}
		return true, c.fail(ParsingError, "unexpected ':' after value %q", c.value.text)
	case openingBrace, objectScope:
		if c.key().kind == simpleKey {
			c.push(column)
			return true, nil
		}
	}
	return true, c.fail(ParsingError, "unexpected ':'")
}

// readValue accumulates the text of a literal value.
func readValue(c *parseContext) (bool, error) {
	ch := c.ch()
	switch c.top() {
	case stringValue:
		switch {
		case ch == '\n':
			return true, c.fail(ParsingError, "unterminated string %q", c.value.text)
		case ch < ' ':
			return true, c.fail(ParsingError, "invalid control character %q in string", ch)
		case c.value.typ == escapeChar:
			if !escape.IsEscape(ch) {
				return true, c.fail(ParsingError, "invalid escape '\\%c' in string", ch)
			}
			c.value.typ = openString
		case ch == '\\':
			c.value.typ = escapeChar
		}
		c.value.text = append(c.value.text, ch)
		return true, nil

	case column, arrayScope:
		switch ch {
		case '{', '}', '[', ']', ',', '\n', '"', ':':
			return false, nil
		}
		c.value.text = append(c.value.text, ch)
		c.value.typ = bareLiteral
		return true, nil
	}
	return false, nil
}

// readArray opens and closes arrays.
func readArray(c *parseContext) (bool, error) {
	switch c.ch() {
	case '[':
		if c.value.typ != noLiteral {
			return false, nil
		}
		if c.hier.IsEmpty() && c.root == nil || c.topIs(column, arrayScope) {
			return true, c.openContainer(ArrayNode, arrayScope)
		}
	case ']':
		if c.scope() != arrayScope {
			return true, c.mismatched()
		}
		if err := c.completeMember(); err != nil {
			return true, err
		}
		c.pop()
		c.closeContainer()
		return true, nil
	}
	return false, nil
}

// readObject opens and closes nested objects.
func readObject(c *parseContext) (bool, error) {
	switch c.ch() {
	case '{':
		if c.value.typ == noLiteral && c.topIs(column, arrayScope) {
			return true, c.openContainer(ObjectNode, objectScope)
		}
	case '}':
		if c.scope() == objectScope {
			if err := c.completeMember(); err != nil {
				return true, err
			}
			c.pop()
			c.closeContainer()
			return true, nil
		}
	}
	return false, nil
}

// endStatement ends the pending literal at a separator, at the end of a
// line, or when marked by skipSpace.
func endStatement(c *parseContext) (bool, error) {
	ch := c.ch()
	marked := c.top() == flushValue
	if !marked && ch != ',' && ch != '\n' {
		return false, nil
	}
	if marked {
		c.pop()
	}
	if c.value.typ == noLiteral {
		if ch == ',' {
			switch c.top() {
			case column:
				return true, c.fail(ParsingError, "expected 'value' but found ','")
			case openingBrace, objectScope:
				if k := c.key(); k.kind != noKey {
					return true, c.fail(ParsingError, "expected ':' after key %q", k.text)
				}
			case arrayScope:
			default:
				return true, c.fail(ParsingError, "unexpected ','")
			}
		}
		return true, nil // empty line or element
	}
	if err := c.flush(); err != nil {
		return true, err
	}
	if marked {
		c.push(trailingSpace)
	}
	return true, nil
}

// readBrace opens and closes the root object. Any other closing brace is
// extra or mismatched.
func readBrace(c *parseContext) (bool, error) {
	switch c.ch() {
	case '{':
		if c.hier.IsEmpty() && c.root == nil {
			return true, c.openContainer(ObjectNode, openingBrace)
		}
	case '}':
		if c.scope() != openingBrace {
			return true, c.mismatched()
		}
		if err := c.completeMember(); err != nil {
			return true, err
		}
		c.pop()
		c.closeContainer()
		return true, nil
	}
	return false, nil
}

// syntaxError reports a character that no handler accepted.
func syntaxError(c *parseContext) error {
	return c.fail(ParsingError, "expected %s but found %q", c.top().expected(), c.ch())
}

// classify converts the pending literal to a value.
func (c *parseContext) classify() (*Value, error) {
	text := string(c.value.text)
	switch c.value.typ {
	case openString:
		if !escape.ValidEscapes(mem.S(text)) {
			return nil, c.fail(ParsingError, "invalid escape in string %q", text)
		}
		return NewString(text), nil
	case escapeChar:
		return nil, c.fail(ParsingError, "unterminated escape in %q", text)
	}
	switch text {
	case "null":
		return NewNull(), nil
	case "true":
		return NewBoolean(true), nil
	case "false":
		return NewBoolean(false), nil
	}
	isNum, hasDot := scanNumber(text)
	if !isNum {
		return nil, c.fail(ParsingErrorWrongType, "unknown type for value %q", text)
	}
	if hasDot {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, c.fail(ParsingErrorWrongType, "invalid double %q", text)
		}
		return NewDouble(v), nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, c.fail(ParsingErrorWrongType, "invalid integer %q", text)
	}
	return NewInteger(v), nil
}

// scanNumber reports whether text is an optional minus sign followed by
// digits with at most one decimal point, and whether it has the point.
func scanNumber(text string) (ok, hasDot bool) {
	if len(text) > 0 && text[0] == '-' {
		text = text[1:]
	}
	var digits int
	for i := 0; i < len(text); i++ {
		switch ch := text[i]; {
		case ch >= '0' && ch <= '9':
			digits++
		case ch == '.' && !hasDot:
			hasDot = true
		default:
			return false, false
		}
	}
	return digits > 0, hasDot
}
