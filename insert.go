// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

// Insertable is the set of things that can be stored into a node by
// [Node.Insert], [Node.PushBack], and [Node.Set]. It is satisfied only by
// *Value, *Node, [Seq], and [Map].
type Insertable interface {
	isInsertable()
}

// A Seq is an Insertable that builds a new array from its elements.
type Seq []Insertable

func (Seq) isInsertable() {}

// A Map is an Insertable that builds a new object from its members.
type Map map[string]Insertable

func (Map) isInsertable() {}

// toNode converts x into a node. A *Node is returned as-is, a *Value is
// wrapped without copying, and containers are built recursively. A nil
// Insertable, or a nil *Node or *Value, becomes null.
func toNode(x Insertable) *Node {
	switch t := x.(type) {
	case *Node:
		if t != nil {
			return t
		}
	case *Value:
		if t != nil {
			return NewValueNode(t)
		}
	case Seq:
		arr := &Array{elts: make([]*Node, 0, len(t))}
		for _, e := range t {
			arr.Append(toNode(e))
		}
		return NewArrayNode(arr)
	case Map:
		obj := new(Object)
		for k, e := range t {
			obj.Set(k, toNode(e))
		}
		return NewObjectNode(obj)
	case nil:
	default:
		panic("unreachable")
	}
	return NewValueNode(NewNull())
}
