// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"iter"
	"maps"
	"slices"
)

// NodeType enumerates the kinds of node.
type NodeType byte

const (
	ObjectNode NodeType = iota // a JSON object (the default)
	ArrayNode                  // a JSON array
	ValueNode                  // a scalar value
)

var nodeTypeStr = [...]string{
	ObjectNode: "object",
	ArrayNode:  "array",
	ValueNode:  "value",
}

// String returns the name of t, as used in error messages.
func (t NodeType) String() string {
	if int(t) < len(nodeTypeStr) {
		return nodeTypeStr[t]
	}
	return "unknown"
}

// A Node is a handle to exactly one of a scalar [Value], an [Array], or an
// [Object]. The kind of a node may change over its lifetime via [Node.Set].
//
// Nodes are shared by pointer. Methods that return a *Node, *Value, *Array,
// or *Object return an alias into the tree, not a copy: changes made through
// the result are visible to every other holder of the same payload. Use
// [Node.Clone] for an independent copy.
//
// The zero Node is an empty object, ready for use.
//
// A tree is not required to be acyclic, but a caller that constructs a cycle
// by aliasing is responsible for never formatting or converting it.
type Node struct {
	typ NodeType
	val *Value
	arr *Array
	obj *Object
}

// New returns a new empty object node.
func New() *Node { return NewNode(ObjectNode) }

// NewNode returns a new node of the given type. A value node holds an empty
// value; array and object nodes are empty.
func NewNode(t NodeType) *Node {
	switch t {
	case ArrayNode:
		return &Node{typ: ArrayNode, arr: new(Array)}
	case ValueNode:
		return &Node{typ: ValueNode, val: new(Value)}
	default:
		return &Node{typ: ObjectNode, obj: new(Object)}
	}
}

// NewValueNode returns a value node that shares v.
func NewValueNode(v *Value) *Node { return &Node{typ: ValueNode, val: v} }

// NewArrayNode returns an array node that shares a.
func NewArrayNode(a *Array) *Node { return &Node{typ: ArrayNode, arr: a} }

// NewObjectNode returns an object node that shares o.
func NewObjectNode(o *Object) *Node { return &Node{typ: ObjectNode, obj: o} }

func (*Node) isInsertable() {}

// Type reports the kind of n.
func (n *Node) Type() NodeType { return n.typ }

// IsObject reports whether n is an object node.
func (n *Node) IsObject() bool { return n.typ == ObjectNode }

// IsArray reports whether n is an array node.
func (n *Node) IsArray() bool { return n.typ == ArrayNode }

// IsValue reports whether n is a scalar value node.
func (n *Node) IsValue() bool { return n.typ == ValueNode }

// TryValue returns the scalar payload of n. The result is an alias.
func (n *Node) TryValue() (*Value, error) {
	if n.typ != ValueNode {
		return nil, wrongType("wrong type: node is %s, not value", n.typ)
	}
	return n.val, nil
}

// TryArray returns the array payload of n. The result is an alias.
func (n *Node) TryArray() (*Array, error) {
	if n.typ != ArrayNode {
		return nil, wrongType("wrong type: node is %s, not array", n.typ)
	}
	return n.arr, nil
}

// TryObject returns the object payload of n. The result is an alias.
func (n *Node) TryObject() (*Object, error) {
	if n.typ != ObjectNode {
		return nil, wrongType("wrong type: node is %s, not object", n.typ)
	}
	return n.object(), nil
}

// object returns the object payload of n, allocating it if n is a zero Node.
func (n *Node) object() *Object {
	if n.obj == nil {
		n.obj = new(Object)
	}
	return n.obj
}

// AsValue is as TryValue, but panics on error.
func (n *Node) AsValue() *Value { return must(n.TryValue()) }

// AsArray is as TryArray, but panics on error.
func (n *Node) AsArray() *Array { return must(n.TryArray()) }

// AsObject is as TryObject, but panics on error.
func (n *Node) AsObject() *Object { return must(n.TryObject()) }

// Contains reports whether n is an object with the given key.
func (n *Node) Contains(key string) bool {
	return n.typ == ObjectNode && n.object().Contains(key)
}

// Len reports the number of elements of an array or members of an object,
// and 0 for a value.
func (n *Node) Len() int {
	switch n.typ {
	case ArrayNode:
		return n.arr.Len()
	case ObjectNode:
		return n.object().Len()
	}
	return 0
}

// TryAt returns the child of an object node with the given key.
// The result is an alias.
func (n *Node) TryAt(key string) (*Node, error) {
	obj, err := n.TryObject()
	if err != nil {
		return nil, err
	}
	c, ok := obj.Get(key)
	if !ok {
		return nil, newError(KeyNotFound, "key not found: %q", key)
	}
	return c, nil
}

// At is as TryAt, but panics on error.
func (n *Node) At(key string) *Node { return must(n.TryAt(key)) }

// TryIndex returns the element of an array node at offset i.
// The result is an alias.
func (n *Node) TryIndex(i int) (*Node, error) {
	arr, err := n.TryArray()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= arr.Len() {
		return nil, newError(WrongIndex, "wrong index: %d, array has %d elements", i, arr.Len())
	}
	return arr.At(i), nil
}

// Index is as TryIndex, but panics on error.
func (n *Node) Index(i int) *Node { return must(n.TryIndex(i)) }

// Insert adds x to an object node under key, replacing any existing member
// with that key. It reports a WrongType error if n is not an object.
// If x is a *Node it is shared, not copied.
func (n *Node) Insert(key string, x Insertable) error {
	obj, err := n.TryObject()
	if err != nil {
		return wrongType("wrong type: cannot insert into %s", n.typ)
	}
	obj.Set(key, toNode(x))
	return nil
}

// PushBack appends x to an array node. It reports a WrongType error if n is
// not an array. If x is a *Node it is shared, not copied.
func (n *Node) PushBack(x Insertable) error {
	arr, err := n.TryArray()
	if err != nil {
		return wrongType("wrong type: cannot push back into %s", n.typ)
	}
	arr.Append(toNode(x))
	return nil
}

// Set replaces the contents of n with x.
//
// If n holds a value and x is a *Value, the existing value is updated in
// place, and every alias of that value observes the change. Otherwise the
// payload of n is replaced, and holders of the old payload keep seeing the old
// contents. If x is a *Node, n shares its payload. A nil x, or a nil *Value or
// *Node, sets n to null.
func (n *Node) Set(x Insertable) {
	if x == nil {
		x = NewNull()
	}
	if v, ok := x.(*Value); ok && n.typ == ValueNode && n.val != nil {
		if v == nil {
			v = NewNull()
		}
		n.val.assign(v)
		return
	}
	*n = *toNode(x)
}

// Clone returns a deep copy of n that shares no storage with it.
func (n *Node) Clone() *Node {
	switch n.typ {
	case ValueNode:
		v := *n.val
		return NewValueNode(&v)
	case ArrayNode:
		arr := &Array{elts: make([]*Node, len(n.arr.elts))}
		for i, e := range n.arr.elts {
			arr.elts[i] = e.Clone()
		}
		return NewArrayNode(arr)
	default:
		obj := new(Object)
		for k, c := range n.object().All() {
			obj.Set(k, c.Clone())
		}
		return NewObjectNode(obj)
	}
}

// An Array is an ordered sequence of nodes. The zero Array is empty and ready
// for use.
type Array struct {
	elts []*Node
}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.elts) }

// At returns the element at offset i, which must be in range.
// The result is an alias.
func (a *Array) At(i int) *Node { return a.elts[i] }

// Append adds nodes to the end of a.
func (a *Array) Append(nodes ...*Node) { a.elts = append(a.elts, nodes...) }

// All iterates over the elements of a in order.
func (a *Array) All() iter.Seq2[int, *Node] { return slices.All(a.elts) }

// An Object is a mapping from string keys to nodes. Iteration visits the
// members in lexicographic order of key, not insertion order. The zero Object
// is empty and ready for use.
type Object struct {
	members map[string]*Node
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.members) }

// Contains reports whether o has a member with the given key.
func (o *Object) Contains(key string) bool {
	_, ok := o.members[key]
	return ok
}

// Get returns the member of o with the given key, if present.
// The result is an alias.
func (o *Object) Get(key string) (*Node, bool) {
	c, ok := o.members[key]
	return c, ok
}

// Set adds or replaces the member of o with the given key.
func (o *Object) Set(key string, n *Node) {
	if o.members == nil {
		o.members = make(map[string]*Node)
	}
	o.members[key] = n
}

// Delete removes the member with the given key, and reports whether it was
// present.
func (o *Object) Delete(key string) bool {
	_, ok := o.members[key]
	delete(o.members, key)
	return ok
}

// Keys returns the keys of o in sorted order.
func (o *Object) Keys() []string { return slices.Sorted(maps.Keys(o.members)) }

// All iterates over the members of o in key order.
func (o *Object) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, k := range o.Keys() {
			if !yield(k, o.members[k]) {
				return
			}
		}
	}
}
