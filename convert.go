// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

// Interface converts n into plain Go values: an object becomes a
// map[string]any, an array a []any, and a scalar its string, int64, float64,
// bool, or nil value. String text is returned as stored, with any escape
// sequences intact. The result shares no storage with n.
func (n *Node) Interface() any {
	switch n.typ {
	case ValueNode:
		return n.val.Interface()
	case ArrayNode:
		out := make([]any, n.arr.Len())
		for i, e := range n.arr.All() {
			out[i] = e.Interface()
		}
		return out
	default:
		out := make(map[string]any, n.object().Len())
		for k, c := range n.object().members {
			out[k] = c.Interface()
		}
		return out
	}
}

// Interface returns the Go value of v. Empty and null values are nil.
func (v *Value) Interface() any {
	switch v.typ {
	case StringValue:
		return v.str
	case IntegerValue:
		return v.num
	case DoubleValue:
		return v.dbl
	case BooleanValue:
		return v.ok
	}
	return nil
}

// FromInterface converts a plain Go value into a node. It accepts the types
// produced by [Node.Interface], along with int, float32, []string and
// map[string]string for convenience, and reports a WrongType error for any
// other type.
func FromInterface(x any) (*Node, error) {
	switch t := x.(type) {
	case nil:
		return NewValueNode(NewNull()), nil
	case string:
		return NewValueNode(NewString(t)), nil
	case int:
		return NewValueNode(NewInteger(int64(t))), nil
	case int64:
		return NewValueNode(NewInteger(t)), nil
	case float32:
		return NewValueNode(NewDouble(float64(t))), nil
	case float64:
		return NewValueNode(NewDouble(t)), nil
	case bool:
		return NewValueNode(NewBoolean(t)), nil
	case []string:
		arr := new(Array)
		for _, s := range t {
			arr.Append(NewValueNode(NewString(s)))
		}
		return NewArrayNode(arr), nil
	case []any:
		arr := new(Array)
		for _, e := range t {
			c, err := FromInterface(e)
			if err != nil {
				return nil, err
			}
			arr.Append(c)
		}
		return NewArrayNode(arr), nil
	case map[string]string:
		obj := new(Object)
		for k, s := range t {
			obj.Set(k, NewValueNode(NewString(s)))
		}
		return NewObjectNode(obj), nil
	case map[string]any:
		obj := new(Object)
		for k, e := range t {
			c, err := FromInterface(e)
			if err != nil {
				return nil, err
			}
			obj.Set(k, c)
		}
		return NewObjectNode(obj), nil
	}
	return nil, wrongType("wrong type: cannot convert %T", x)
}
