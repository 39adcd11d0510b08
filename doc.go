// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ljson implements a JSON parser and a mutable tree of JSON values.
//
// # Parsing
//
// The Parser type reads JSON text one character at a time and builds a tree
// of nodes. The input must contain exactly one object or array:
//
//	root, err := ljson.Parse(`{"name": "cat", "age": 5, "smol": true}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Parsing is all-or-nothing: in case of error no tree is returned, and the
// error has concrete type [*Error] with kind [ParsingError] or
// [ParsingErrorWrongType]. MustParse and MustParseFile panic instead.
//
// The accepted language differs from strict JSON in a few ways: trailing
// commas before a closing bracket are permitted; a number is an integer
// unless it contains a decimal point; and escape sequences in strings are
// checked but not decoded, so "\u00e9" is stored as six characters.
// With [Parser.AllowComments], JWCC comments are also accepted.
//
// # Nodes
//
// A [Node] holds exactly one of a scalar [Value], an [Array], or an
// [Object]. Nodes are handles: lookups such as [Node.At] and [Node.Index]
// return aliases into the tree, so changes made through them are visible to
// every holder of the same payload.
//
//	root.At("age").Set(ljson.NewInteger(6))
//	root.Insert("toys", ljson.Seq{ljson.NewString("ball"), ljson.NewString("mouse")})
//
// Object members are always visited in key order.
//
// # Formatting
//
// A [Formatter] renders a tree as indented JSON text, either to an
// [io.Writer] or through a callback that receives the text in pieces:
//
//	root.Dump(func(s string) { fmt.Print(s) })
package ljson
