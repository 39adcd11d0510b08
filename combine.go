// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

// Combine returns a new node that combines a and b structurally:
//
//   - Two objects combine to the union of their members. Where both have a
//     member with the same key, the member from b is kept.
//   - Two arrays combine to the elements of a followed by those of b.
//   - Two string values combine to their concatenation.
//   - Two numeric values combine to their sum. The sum of two integers is an
//     integer; otherwise it is a double.
//
// Any other combination reports a WrongType error. Neither a nor b is
// modified, but the children of the result are shared with them.
func Combine(a, b *Node) (*Node, error) {
	if a.typ != b.typ {
		return nil, wrongType("wrong type: cannot combine %s with %s", a.typ, b.typ)
	}
	switch a.typ {
	case ObjectNode:
		obj := new(Object)
		for k, c := range a.obj.members {
			obj.Set(k, c)
		}
		for k, c := range b.obj.members {
			obj.Set(k, c)
		}
		return NewObjectNode(obj), nil

	case ArrayNode:
		arr := &Array{elts: make([]*Node, 0, a.arr.Len()+b.arr.Len())}
		arr.Append(a.arr.elts...)
		arr.Append(b.arr.elts...)
		return NewArrayNode(arr), nil
	}

	v, err := combineValues(a.val, b.val)
	if err != nil {
		return nil, err
	}
	return NewValueNode(v), nil
}

// MustCombine is as Combine, but panics on error.
func MustCombine(a, b *Node) *Node { return must(Combine(a, b)) }

func combineValues(a, b *Value) (*Value, error) {
	switch {
	case a.IsString() && b.IsString():
		return NewString(a.str + b.str), nil
	case a.IsInteger() && b.IsInteger():
		return NewInteger(a.num + b.num), nil
	case a.IsNumber() && b.IsNumber():
		x, _ := a.TryNumber()
		y, _ := b.TryNumber()
		return NewDouble(x + y), nil
	}
	return nil, wrongType("wrong type: cannot combine %s with %s", a.typ, b.typ)
}
