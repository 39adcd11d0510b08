// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"fmt"

	"github.com/creachadair/ljson/internal/stack"
)

// A syntax labels one entry of the hierarchy stack, the stack of syntactic
// contexts open at the current point of the input.
type syntax byte

const (
	openingBrace  syntax = iota + 1 // inside the root object
	closingBrace                    // the root is complete, only space may follow
	quote                           // inside a quoted object key
	stringValue                     // inside a quoted string value
	column                          // after ':', awaiting or reading a member value
	objectScope                     // inside a nested object
	arrayScope                      // inside an array
	trailingSpace                   // after a complete value, before its separator
	flushValue                      // end the pending literal now
)

var syntaxStr = [...]string{
	openingBrace:  "'{'",
	closingBrace:  "EOF",
	quote:         "key",
	stringValue:   "string",
	column:        "value",
	objectScope:   "object",
	arrayScope:    "array",
	trailingSpace: "separator",
	flushValue:    "end of value",
}

func (s syntax) String() string {
	if s > 0 && int(s) < len(syntaxStr) {
		return syntaxStr[s]
	}
	return fmt.Sprintf("syntax(%d)", s)
}

// expected describes the legal continuations of the context s.
func (s syntax) expected() string {
	switch s {
	case openingBrace:
		return "[key, '}']"
	case closingBrace:
		return "'EOF'"
	case quote:
		return "[key text, quote]"
	case stringValue:
		return "[string value, quote]"
	case column:
		return "'value'"
	case objectScope:
		return "'object key/value pairs'"
	case arrayScope:
		return "'array values'"
	case trailingSpace:
		return "[',', closing bracket]"
	}
	return "['{', '[']"
}

// A frame is an entry of the hierarchy stack.
type frame struct {
	tag syntax
	pos LineCol // where the context was opened
}

// keyKind classifies the key of an object member.
type keyKind byte

const (
	noKey     keyKind = iota // no key has been started
	simpleKey                // a quoted key has been read or is being read
	arrayKey                 // the key names an array value under construction
	objectKey                // the key names an object value under construction
)

// A keyFrame holds the key text of the member being read in one open object.
type keyFrame struct {
	text   []byte
	kind   keyKind
	escape bool // the previous key character was a backslash
}

func (k *keyFrame) reset() { *k = keyFrame{text: k.text[:0]} }

// literalType classifies the pending literal.
type literalType byte

const (
	noLiteral   literalType = iota // nothing pending
	openString                     // a quoted string value is being read
	escapeChar                     // inside a string, after a backslash
	bareLiteral                    // an unquoted literal is being read
)

// A literal is the text of the value currently being accumulated.
type literal struct {
	text []byte
	typ  literalType
}

func (v *literal) reset() { *v = literal{text: v.text[:0]} }

// A parseContext holds the state of a single parse. It is discarded when the
// parse ends, whether or not it succeeds.
type parseContext struct {
	seg      []byte  // the current input segment
	pos      int     // offset of the current character in seg
	loc      LineCol // location of the current character
	lineText string  // text of the current line, for diagnostics

	hier  *stack.Stack[frame]
	keys  *stack.Stack[keyFrame]
	nodes *stack.Stack[*Node] // open containers, innermost on top
	value literal
	root  *Node
}

func newParseContext() *parseContext {
	return &parseContext{
		loc:   LineCol{Line: 1},
		hier:  stack.NewWithCapacity[frame](16),
		keys:  stack.NewWithCapacity[keyFrame](8),
		nodes: stack.NewWithCapacity[*Node](8),
	}
}

// ch returns the current input character.
func (c *parseContext) ch() byte { return c.seg[c.pos] }

// top returns the tag of the innermost syntactic context, or 0.
func (c *parseContext) top() syntax {
	f, _ := c.hier.Peek()
	return f.tag
}

// topIs reports whether the innermost context is one of tags.
func (c *parseContext) topIs(tags ...syntax) bool {
	t := c.top()
	for _, tag := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (c *parseContext) push(tag syntax) { c.hier.Push(frame{tag: tag, pos: c.loc}) }

func (c *parseContext) pop() syntax {
	f, _ := c.hier.Pop()
	return f.tag
}

// scopeFrame returns the innermost container context, skipping over the
// member contexts (column, trailingSpace) above it.
func (c *parseContext) scopeFrame() frame {
	hs := c.hier.ToSlice()
	for i := len(hs) - 1; i >= 0; i-- {
		switch hs[i].tag {
		case column, trailingSpace:
			continue
		}
		return hs[i]
	}
	return frame{}
}

func (c *parseContext) scope() syntax { return c.scopeFrame().tag }

// mismatched reports a closing bracket that does not match the innermost
// open container.
func (c *parseContext) mismatched() error {
	f := c.scopeFrame()
	if f.tag == 0 || f.tag == closingBrace {
		return c.fail(ParsingError, "extra %q at line %d", c.ch(), c.loc.Line)
	}
	return c.fail(ParsingError, "mismatched %q for %v opened at line %d", c.ch(), f.tag, f.pos.Line)
}

// key returns the key frame of the innermost open object, or nil.
func (c *parseContext) key() *keyFrame { return c.keys.PeekRef() }

// current returns the innermost open container, or nil.
func (c *parseContext) current() *Node {
	n, _ := c.nodes.Peek()
	return n
}

// openContainer starts a new container node of type t at the current point
// and makes it the innermost open container. The root container is opened
// when nothing else is; otherwise the node is attached to its parent at
// once, under the pending key or at the end of the parent array.
func (c *parseContext) openContainer(t NodeType, tag syntax) error {
	n := NewNode(t)
	switch c.top() {
	case 0:
		c.root = n
	case column:
		k := c.key()
		if t == ArrayNode {
			k.kind = arrayKey
		} else {
			k.kind = objectKey
		}
		c.current().obj.Set(string(k.text), n)
	case arrayScope:
		c.current().arr.Append(n)
	default:
		return c.fail(ParsingError, "unexpected %q", c.ch())
	}
	c.push(tag)
	c.nodes.Push(n)
	if t == ObjectNode {
		c.keys.Push(keyFrame{})
	}
	return nil
}

// closeContainer ends the innermost open container, whose context tag has
// already been removed from the hierarchy.
func (c *parseContext) closeContainer() {
	n, _ := c.nodes.Pop()
	if n.IsObject() {
		c.keys.Pop()
	}
	if c.hier.IsEmpty() {
		c.push(closingBrace)
		return
	}
	c.endMember()
	c.push(trailingSpace)
}

// endMember finishes the object member or array element just completed.
func (c *parseContext) endMember() {
	if c.top() == column {
		c.pop()
		c.key().reset()
	}
}

// completeMember finishes any member still in progress before the innermost
// container is closed.
func (c *parseContext) completeMember() error {
	if c.top() == trailingSpace {
		c.pop()
	}
	switch c.top() {
	case column:
		if c.value.typ == noLiteral {
			return c.fail(ParsingError, "expected 'value' but found %q", c.ch())
		}
		return c.flush()
	case arrayScope:
		if c.value.typ != noLiteral {
			return c.flush()
		}
	case openingBrace, objectScope:
		if k := c.key(); k.kind != noKey {
			return c.fail(ParsingError, "expected ':' after key %q", k.text)
		}
	}
	return nil
}

// flush classifies the pending literal and stores it into the innermost open
// container: under the pending key for an object, at the end for an array.
func (c *parseContext) flush() error {
	v, err := c.classify()
	if err != nil {
		return err
	}
	switch c.top() {
	case column:
		c.current().obj.Set(string(c.key().text), NewValueNode(v))
		c.endMember()
	case arrayScope:
		c.current().arr.Append(NewValueNode(v))
	default:
		return c.fail(ParsingError, "unexpected value %q", c.value.text)
	}
	c.value.reset()
	return nil
}

// fail constructs a parse error of the given kind at the current location.
func (c *parseContext) fail(kind ErrorKind, msg string, args ...any) error {
	e := newError(kind, msg, args...)
	e.Pos = c.loc
	if c.lineText != "" {
		e.Message += fmt.Sprintf(" in line %q", c.lineText)
	}
	return e
}
