// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program ljson formats, checks, queries, and converts JSON documents using
// the ljson parser.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
)

// errFail reports that a command failed after it printed its own diagnostics.
var errFail = errors.New("fail")

var (
	summary = "ljson checks and rewrites JSON documents"
	help    = `Each command reads the named file, or standard input when the
name is "-" or omitted. Options shared by all commands may be set in a YAML
file given by -config:

  indent:
    pad: tab      # or "space"
    width: 1
  comments: true  # accept JWCC comments and trailing commas
`
)

func main() {
	var (
		set  = cli.NewFlagSet("ljson")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"format"}, &formatCmd)
	root.Register([]string{"fmt"}, &formatCmd)
	root.Register([]string{"check"}, &checkCmd)
	root.Register([]string{"query"}, &queryCmd)
	root.Register([]string{"yaml"}, &yamlCmd)
	return root
}
