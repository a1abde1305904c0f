package graphtext

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// ErrNilGraph indicates that a nil graph was passed to the encoder.
var ErrNilGraph = errors.New("graphtext: graph is nil")

// Marshal renders g in the wire format and returns the text.
// Vertices print in declaration order; the output carries no trailing
// newline and an empty graph renders as the empty string.
func Marshal[V comparable, W any](g *core.Graph[V, W], opts Options[V, W]) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, g, opts); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Write streams g in the wire format to w.
//
// Each declared vertex becomes one line: the vertex token, ": ", then its
// adjacency list in insertion order with opts.Arrow between edges. A
// newline separates lines; none follows the final vertex.
func Write[V comparable, W any](w io.Writer, g *core.Graph[V, W], opts Options[V, W]) error {
	if g == nil {
		return ErrNilGraph
	}
	o := opts.withDefaults()

	bw := bufio.NewWriter(w)
	for i, v := range g.Vertices() {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteString(o.FormatVertex(v))
		bw.WriteString(": ")

		arcs, err := g.Neighbors(v)
		if err != nil {
			// Unreachable for a catalog-listed vertex.
			return err
		}
		for k, a := range arcs {
			if k > 0 {
				bw.WriteString(o.Arrow)
			}
			bw.WriteString(o.FormatVertex(a.To))
			bw.WriteByte('(')
			bw.WriteString(o.FormatWeight(a.Weight))
			bw.WriteByte(')')
		}
	}

	return bw.Flush()
}
