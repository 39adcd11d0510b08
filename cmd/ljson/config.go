// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/ljson"
	"github.com/goccy/go-yaml"
)

// Config is the content of a configuration file.
type Config struct {
	Indent struct {
		Pad   string `yaml:"pad"`
		Width int    `yaml:"width"`
	} `yaml:"indent"`
	Comments bool `yaml:"comments"`
}

func loadConfig(file string) (Config, error) {
	var cfg Config
	if file == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return cfg, fmt.Errorf("%s: invalid config: %w", file, err)
	}
	return cfg, nil
}

// Options are the settings shared by all commands. Flags take precedence
// over the configuration file.
type Options struct {
	Config   string
	Comments bool
	Pad      string
	Width    int
}

func (o *Options) attach(set *flag.FlagSet, indent bool) {
	set.StringVar(&o.Config, "config", "", "read settings from the given YAML file")
	set.BoolVar(&o.Comments, "c", false, "accept comments and trailing commas")
	if indent {
		set.StringVar(&o.Pad, "pad", "", "indent with spaces (space) or tabs (tab)")
		set.IntVar(&o.Width, "width", 0, "number of pad characters per indent level")
	}
}

// resolve merges the configuration file into o and returns the parser and
// formatter it describes.
func (o *Options) resolve() (*ljson.Parser, ljson.Formatter, error) {
	var f ljson.Formatter
	cfg, err := loadConfig(o.Config)
	if err != nil {
		return nil, f, err
	}
	pad := o.Pad
	if pad == "" {
		pad = cfg.Indent.Pad
	}
	if f.Pad, err = padByte(pad); err != nil {
		return nil, f, err
	}
	f.Width = o.Width
	if f.Width == 0 {
		f.Width = cfg.Indent.Width
	}
	if f.Width < 0 {
		return nil, f, fmt.Errorf("invalid indent width %d", f.Width)
	}

	p := new(ljson.Parser)
	p.AllowComments(o.Comments || cfg.Comments)
	return p, f, nil
}

func padByte(name string) (byte, error) {
	switch name {
	case "", "space", " ":
		return ' ', nil
	case "tab", "\t":
		return '\t', nil
	}
	return 0, fmt.Errorf("unknown pad %q", name)
}

// parseInput parses the named file, or standard input if file is "" or "-".
func parseInput(p *ljson.Parser, file string) (*ljson.Node, error) {
	if file == "" || file == "-" {
		return p.Parse(os.Stdin)
	}
	return p.ParseFile(file)
}

// openOutput opens the named file for writing, or standard output if file
// is "".
func openOutput(file string) (io.WriteCloser, error) {
	if file == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(file)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
