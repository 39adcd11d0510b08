// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ljson

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tailscale/hujson"
)

// A Parser parses JSON text into a tree of nodes. A zero Parser is ready for
// use with default settings. A Parser holds no state between calls, and may
// be reused.
type Parser struct {
	comments bool // allow JWCC comments
}

// AllowComments configures p to accept (true) or reject (false) JSON with
// comments. When enabled, comments are stripped before parsing and line
// numbers in error reports are preserved.
func (p *Parser) AllowComments(ok bool) { p.comments = ok }

// Parse parses a single JSON object or array from r, reading it a line at a
// time. The whole input must be consumed; only whitespace may follow the
// value. Errors have concrete type [*Error].
func (p *Parser) Parse(r io.Reader) (*Node, error) {
	if p.comments {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fsError(err, "reading input")
		}
		return p.ParseString(string(data))
	}

	c := newParseContext()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) != 0 {
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			c.lineText = strings.TrimRight(line, "\r\n")
			if perr := c.feed(line); perr != nil {
				return nil, perr
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fsError(err, "reading input")
		}
	}
	return c.finish()
}

// ParseString parses a single JSON object or array from s. The input is fed
// to the parser in segments ending at each newline, comma, or closing brace.
func (p *Parser) ParseString(s string) (*Node, error) {
	if p.comments {
		std, err := hujson.Standardize([]byte(s))
		if err != nil {
			e := newError(ParsingError, "invalid input: %v", err)
			e.err = err
			return nil, e
		}
		s = string(std)
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}

	c := newParseContext()
	for line := range strings.Lines(s) {
		c.lineText = strings.TrimRight(line, "\r\n")
		for len(line) != 0 {
			i := strings.IndexAny(line, ",}")
			if i < 0 {
				i = len(line) - 1
			}
			if err := c.feed(line[:i+1]); err != nil {
				return nil, err
			}
			line = line[i+1:]
		}
	}
	return c.finish()
}

// ParseFile parses a single JSON object or array from the named file. An
// error opening or reading the file has kind FilesystemError.
func (p *Parser) ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fsError(err, "cannot open %q", path)
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse parses s with default settings.
func Parse(s string) (*Node, error) {
	var p Parser
	return p.ParseString(s)
}

// MustParse is as Parse, but panics on error.
func MustParse(s string) *Node { return must(Parse(s)) }

// ParseFile parses the named file with default settings.
func ParseFile(path string) (*Node, error) {
	var p Parser
	return p.ParseFile(path)
}

// MustParseFile is as ParseFile, but panics on error.
func MustParseFile(path string) *Node { return must(ParseFile(path)) }

// feed runs each character of seg through the handler chain.
func (c *parseContext) feed(seg string) error {
	c.seg = []byte(seg)
	for c.pos = 0; c.pos < len(c.seg); c.pos++ {
		if err := c.advance(); err != nil {
			return err
		}
		if c.ch() == '\n' {
			c.loc.Line++
			c.loc.Column = 0
		} else {
			c.loc.Column++
		}
	}
	return nil
}

// finish resolves the state remaining at the end of input.
func (c *parseContext) finish() (*Node, error) {
	if c.top() == closingBrace {
		return c.root, nil
	}
	c.lineText = ""
	if c.hier.IsEmpty() {
		return nil, c.fail(ParsingError, "expected '{' or '[' but found EOF")
	}
	f := c.scopeFrame()
	if f.tag == 0 {
		f, _ = c.hier.Peek()
	}
	return nil, c.fail(ParsingError, "unexpected EOF: unterminated %v opened at line %d", f.tag, f.pos.Line)
}
