// SPDX-License-Identifier: MIT

// Package loader turns the whitespace-delimited text format into a core.Graph.
//
// Format:
//
//	<node_count> <declared_edge_count>
//	<from_1> <to_1>
//	...
//
// Exactly declared_edge_count pairs are read. Line breaks carry no meaning;
// any whitespace separates integers. Every failure caused by the shape of the
// input matches errors.Is(err, core.ErrMalformedGraph), so a driver can tell
// "bad data" apart from "could not open the file".
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/friendgraph/core"
)

// Sentinel errors for loading. Each is reported together with core.ErrMalformedGraph.
var (
	// ErrBadHeader indicates a missing or non-integer header.
	ErrBadHeader = errors.New("loader: bad header")

	// ErrBadToken indicates a non-integer token inside the edge list.
	ErrBadToken = errors.New("loader: bad token")

	// ErrTruncated indicates fewer edge pairs than the header declared.
	ErrTruncated = errors.New("loader: truncated edge list")

	// ErrTrailingData indicates tokens after the declared edges while
	// WithRejectTrailingData is set.
	ErrTrailingData = errors.New("loader: trailing data after edge list")
)

// Option configures a load.
type Option func(*options)

type options struct {
	rejectTrailing bool
	build          []core.BuildOption
}

// WithRejectTrailingData makes the load fail when tokens follow the declared
// edge list. By default they are ignored.
func WithRejectTrailingData() Option {
	return func(o *options) { o.rejectTrailing = true }
}

// WithBuildOptions forwards strictness options to core.Build.
func WithBuildOptions(opts ...core.BuildOption) Option {
	return func(o *options) { o.build = append(o.build, opts...) }
}

// Load parses raw text into a Graph.
func Load(raw string, opts ...Option) (*core.Graph, error) {
	return Parse(strings.NewReader(raw), opts...)
}

// LoadFile reads and parses the file at path. Open/read failures are returned
// wrapped but do not match core.ErrMalformedGraph.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return g, nil
}

// Parse reads the header and exactly the declared number of edge pairs from r
// and builds the Graph. Construction is atomic: on any error no Graph is
// returned.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	sc := &tokenScanner{sc: bufio.NewScanner(r)}
	sc.sc.Split(bufio.ScanWords)

	n, err := sc.header("node count")
	if err != nil {
		return nil, err
	}
	e, err := sc.header("edge count")
	if err != nil {
		return nil, err
	}
	if err := core.CheckCounts(n, e, o.build...); err != nil {
		return nil, err
	}

	edges := make([]core.Edge, 0, min(e, maxPrealloc))
	for i := 0; i < e; i++ {
		from, err := sc.edgeEnd(i, e)
		if err != nil {
			return nil, err
		}
		to, err := sc.edgeEnd(i, e)
		if err != nil {
			return nil, err
		}
		edges = append(edges, core.Edge{From: from, To: to})
	}

	if o.rejectTrailing {
		if tok, ok := sc.next(); ok {
			return nil, fmt.Errorf("%w: %w: token %d is %q", core.ErrMalformedGraph, ErrTrailingData, sc.pos, tok)
		}
	}
	if err := sc.sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return core.Build(n, e, edges, o.build...)
}

// maxPrealloc caps the up-front allocation driven by an untrusted header.
const maxPrealloc = 1 << 16

// tokenScanner yields whitespace-delimited tokens and tracks their 1-based position.
type tokenScanner struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokenScanner) next() (string, bool) {
	if !t.sc.Scan() {
		return "", false
	}
	t.pos++
	return t.sc.Text(), true
}

func (t *tokenScanner) header(what string) (int, error) {
	tok, ok := t.next()
	if !ok {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("loader: read: %w", err)
		}
		return 0, fmt.Errorf("%w: %w: missing %s", core.ErrMalformedGraph, ErrBadHeader, what)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %s %q is not an integer", core.ErrMalformedGraph, ErrBadHeader, what, tok)
	}
	return v, nil
}

func (t *tokenScanner) edgeEnd(i, declared int) (int, error) {
	tok, ok := t.next()
	if !ok {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("loader: read: %w", err)
		}
		return 0, fmt.Errorf("%w: %w: edge #%d of %d is incomplete", core.ErrMalformedGraph, ErrTruncated, i, declared)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: token %d is %q", core.ErrMalformedGraph, ErrBadToken, t.pos, tok)
	}
	return v, nil
}
