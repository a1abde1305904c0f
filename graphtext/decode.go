package graphtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// Unmarshal reconstructs a graph from text in the wire format.
// See Read for the full decoding contract.
func Unmarshal[V comparable, W any](
	text string,
	dom core.WeightDomain[W],
	opts Options[V, W],
) (*core.Graph[V, W], error) {
	return Read(strings.NewReader(text), dom, opts)
}

// Read reconstructs a graph from r, consuming lines until a blank line or
// end of input. dom supplies the weight arithmetic of the resulting graph.
//
// The returned graph is always non-nil. On a malformed vertex token the
// graph holds everything decoded before the failing line and the error
// wraps ErrBadVertexToken; there is no rollback. A malformed edge token
// silently ends that line's edge list. A clean end of input is not an
// error. Destinations are never auto-declared.
func Read[V comparable, W any](
	r io.Reader,
	dom core.WeightDomain[W],
	opts Options[V, W],
) (*core.Graph[V, W], error) {
	o := opts.withDefaults()
	g := core.New[V](dom)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break // blank line terminates the stream
		}
		if err := decodeLine(g, line, &o); err != nil {
			return g, err // partial graph retained
		}
	}
	if err := sc.Err(); err != nil {
		// Underlying reader failure, as opposed to running out cleanly.
		return g, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return g, nil
}

// decodeLine declares the line's vertex and then appends edges until the
// line is exhausted or an edge token goes bad.
func decodeLine[V comparable, W any](g *core.Graph[V, W], line string, o *Options[V, W]) error {
	// 1) Split at the first colon. A colon-free line is a bare vertex
	//    declaration with no edge list.
	head, rest, hasColon := strings.Cut(line, ":")

	// 2) Parse and declare the vertex before touching any edges, so a
	//    later edge failure still leaves the vertex in the graph.
	v, err := o.ParseVertex(head)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrBadVertexToken, head, err)
	}
	g.AddVertex(v)
	if !hasColon {
		return nil
	}

	// 3) Edge list: destination up to '(', weight up to ')', then the
	//    separator token. The first malformed token ends the list.
	for {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return nil // no further edge on this line
		}
		closing := strings.IndexByte(rest[open+1:], ')')
		if closing < 0 {
			return nil // unterminated weight: treat as end of list
		}
		dstText := rest[:open]
		wText := rest[open+1 : open+1+closing]
		rest = rest[open+1+closing+1:]

		dst, err := o.ParseVertex(dstText)
		if err != nil {
			return nil // malformed edge token: not an error, list just ends
		}
		w, err := o.ParseWeight(wText)
		if err != nil {
			return nil
		}
		g.AddEdge(v, dst, w)

		// Skip the separator between edges. Like a stream read, this
		// consumes whatever single token sits there.
		rest = skipToken(rest)
	}
}

// skipToken drops leading whitespace and the next whitespace-delimited
// token from s.
func skipToken(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end := start
	for end < len(s) && s[end] != ' ' && s[end] != '\t' {
		end++
	}

	return s[end:]
}
