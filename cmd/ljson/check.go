// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/midbel/cli"
)

var checkCmd = cli.Command{
	Name:    "check",
	Summary: "check that JSON documents are well-formed",
	Handler: &CheckCmd{},
}

type CheckCmd struct {
	FailFast bool
	Quiet    bool
	Options
}

func (c *CheckCmd) Run(args []string) error {
	set := flag.NewFlagSet("check", flag.ContinueOnError)
	c.attach(set, false)
	set.BoolVar(&c.FailFast, "fail-fast", false, "stop checking files as soon as first error is encountered")
	set.BoolVar(&c.Quiet, "q", false, "do not report valid documents")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, _, err := c.resolve()
	if err != nil {
		return err
	}
	files := set.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	return c.check(os.Stdout, os.Stderr, files, func(file string) error {
		_, err := parseInput(p, file)
		return err
	})
}

// check reports the result of parse for each file. It returns errFail if
// any file is invalid.
func (c *CheckCmd) check(out, errs io.Writer, files []string, parse func(string) error) error {
	var failed bool
	for _, file := range files {
		if err := parse(file); err != nil {
			failed = true
			fmt.Fprintf(errs, "%s: %v\n", file, err)
			if c.FailFast {
				return errFail
			}
			continue
		}
		if !c.Quiet {
			fmt.Fprintf(out, "%s: document is valid\n", file)
		}
	}
	if failed {
		return errFail
	}
	return nil
}
