// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"flag"

	"github.com/creachadair/ljson"
	"github.com/goccy/go-yaml"
	"github.com/midbel/cli"
)

var yamlCmd = cli.Command{
	Name:    "yaml",
	Summary: "convert a JSON document to YAML",
	Handler: &YamlCmd{},
}

type YamlCmd struct {
	OutFile string
	Options
}

func (y *YamlCmd) Run(args []string) error {
	set := flag.NewFlagSet("yaml", flag.ContinueOnError)
	y.attach(set, false)
	set.StringVar(&y.OutFile, "f", "", "specify the path to the file where the document will be written")
	if err := set.Parse(args); err != nil {
		return err
	}

	p, _, err := y.resolve()
	if err != nil {
		return err
	}
	root, err := parseInput(p, set.Arg(0))
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(toYAML(root))
	if err != nil {
		return err
	}
	w, err := openOutput(y.OutFile)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// toYAML converts n into values for the YAML encoder. Objects become
// ordered maps so members keep their sorted order.
func toYAML(n *ljson.Node) any {
	switch n.Type() {
	case ljson.ValueNode:
		return n.AsValue().Interface()
	case ljson.ArrayNode:
		out := []any{}
		for _, e := range n.AsArray().All() {
			out = append(out, toYAML(e))
		}
		return out
	default:
		out := yaml.MapSlice{}
		for k, c := range n.AsObject().All() {
			out = append(out, yaml.MapItem{Key: k, Value: toYAML(c)})
		}
		return out
	}
}
