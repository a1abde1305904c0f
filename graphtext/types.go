// This file declares the codec Options, defaults, and sentinel errors.

package graphtext

import (
	"errors"
	"fmt"
)

// DefaultArrow is the edge separator printed between edges on one line:
// a rightwards arrow (U+2192) with a single space on each side.
const DefaultArrow = " → "

// Sentinel errors returned by the decoder.
var (
	// ErrBadVertexToken indicates a line whose vertex token failed to parse.
	// Decoding stops at that line; the partial graph built so far is
	// returned alongside the error.
	ErrBadVertexToken = errors.New("graphtext: malformed vertex token")

	// ErrRead indicates a failure of the underlying reader (not a syntax
	// problem with the text itself).
	ErrRead = errors.New("graphtext: read failed")
)

// Options configures one encode or decode call.
//
// The zero value is fully usable: every field falls back to the default
// documented on it. DefaultOptions exists for discoverability.
type Options[V comparable, W any] struct {
	// Arrow is the separator token printed (and skipped) between edges on
	// one line. Empty means DefaultArrow.
	Arrow string

	// FormatVertex renders a vertex for the wire. Nil means fmt's "%v".
	FormatVertex func(V) string

	// ParseVertex reads a vertex back from its wire token. Nil means
	// fmt.Sscan, which consumes one whitespace-delimited token.
	ParseVertex func(string) (V, error)

	// FormatWeight renders a weight for the wire. Nil means fmt's "%v".
	FormatWeight func(W) string

	// ParseWeight reads a weight back from its wire token. Nil means
	// fmt.Sscan.
	ParseWeight func(string) (W, error)
}

// DefaultOptions returns an Options value with every field at its default.
func DefaultOptions[V comparable, W any]() Options[V, W] {
	return Options[V, W]{}
}

// withDefaults resolves nil/empty fields to the documented defaults.
func (o Options[V, W]) withDefaults() Options[V, W] {
	if o.Arrow == "" {
		o.Arrow = DefaultArrow
	}
	if o.FormatVertex == nil {
		o.FormatVertex = func(v V) string { return fmt.Sprintf("%v", v) }
	}
	if o.ParseVertex == nil {
		o.ParseVertex = scanToken[V]
	}
	if o.FormatWeight == nil {
		o.FormatWeight = func(w W) string { return fmt.Sprintf("%v", w) }
	}
	if o.ParseWeight == nil {
		o.ParseWeight = scanToken[W]
	}

	return o
}

// scanToken parses one whitespace-delimited token into a value of type T,
// the text-stream analog used by both default parsers.
func scanToken[T any](s string) (T, error) {
	var v T
	if _, err := fmt.Sscan(s, &v); err != nil {
		var zero T

		return zero, err
	}

	return v, nil
}
