// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"flag"
	"io"

	"github.com/midbel/cli"
)

var formatCmd = cli.Command{
	Name:    "format",
	Alias:   []string{"fmt"},
	Summary: "re-indent a JSON document",
	Handler: &FormatCmd{},
}

type FormatCmd struct {
	OutFile string
	Options
}

func (f *FormatCmd) Run(args []string) error {
	set := flag.NewFlagSet("format", flag.ContinueOnError)
	f.attach(set, true)
	set.StringVar(&f.OutFile, "f", "", "specify the path to the file where the document will be written")
	if err := set.Parse(args); err != nil {
		return err
	}

	p, fmtr, err := f.resolve()
	if err != nil {
		return err
	}
	root, err := parseInput(p, set.Arg(0))
	if err != nil {
		return err
	}
	w, err := openOutput(f.OutFile)
	if err != nil {
		return err
	}
	if err := fmtr.Format(w, root); err != nil {
		w.Close()
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
