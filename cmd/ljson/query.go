// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/creachadair/ljson"
	"github.com/midbel/cli"
	"github.com/theory/jsonpath"
)

var queryCmd = cli.Command{
	Name:    "query",
	Summary: "select values from a JSON document with a JSONPath expression",
	Handler: &QueryCmd{},
}

type QueryCmd struct {
	First bool
	Options
}

func (q *QueryCmd) Run(args []string) error {
	set := flag.NewFlagSet("query", flag.ContinueOnError)
	q.attach(set, true)
	set.BoolVar(&q.First, "first", false, "print only the first match")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() == 0 {
		return errors.New("missing JSONPath expression")
	}

	p, fmtr, err := q.resolve()
	if err != nil {
		return err
	}
	root, err := parseInput(p, set.Arg(1))
	if err != nil {
		return err
	}
	found, err := selectNodes(root, set.Arg(0))
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return fmt.Errorf("%s: no match", set.Arg(0))
	}
	if q.First {
		found = found[:1]
	}
	for _, n := range found {
		fmt.Fprintln(os.Stdout, fmtr.FormatToString(n))
	}
	return nil
}

// selectNodes evaluates the JSONPath expr against root and returns the
// matching values as new trees.
func selectNodes(root *ljson.Node, expr string) ([]*ljson.Node, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", expr, err)
	}
	var out []*ljson.Node
	for _, v := range path.Select(root.Interface()) {
		n, err := ljson.FromInterface(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
