// This file declares the WeightDomain capability bound and its numeric
// implementations. A weight type needs a total order, an additive
// combine, a zero, and an infinity sentinel greater than any finite sum
// the algorithms can reach; the two constructors below cover every
// built-in numeric type via golang.org/x/exp/constraints.

package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// WeightDomain describes the arithmetic a weight type W must provide.
// Implementations must be pure: no method may mutate shared state.
type WeightDomain[W any] interface {
	// Zero returns the additive identity (the distance of a source to itself).
	Zero() W

	// Inf returns the sentinel infinity: a value strictly greater (per Less)
	// than any finite weight reachable by Add over the graph's edges.
	Inf() W

	// Add combines two weights (path extension).
	Add(a, b W) W

	// Less reports the strict total order on weights.
	Less(a, b W) bool
}

// numericDomain implements WeightDomain for built-in numeric types using
// the native operators; only the infinity sentinel varies per type.
type numericDomain[W interface {
	constraints.Integer | constraints.Float
}] struct {
	inf W
}

func (numericDomain[W]) Zero() W          { var z W; return z }
func (d numericDomain[W]) Inf() W         { return d.inf }
func (numericDomain[W]) Add(a, b W) W     { return a + b }
func (numericDomain[W]) Less(a, b W) bool { return a < b }

// IntegerDomain returns the WeightDomain for an integer weight type.
// Infinity is the maximum representable value of W, so callers must keep
// finite path sums below it (the usual Dijkstra non-overflow precondition).
func IntegerDomain[W constraints.Integer]() WeightDomain[W] {
	return numericDomain[W]{inf: maxInteger[W]()}
}

// FloatDomain returns the WeightDomain for a floating-point weight type.
// Infinity is IEEE +Inf, which is closed under Add and greater than every
// finite value.
func FloatDomain[W constraints.Float]() WeightDomain[W] {
	return numericDomain[W]{inf: W(math.Inf(1))}
}

// maxInteger computes the maximum representable value of an integer type
// without knowing its width: all-ones for unsigned types; for signed
// types, the highest positive power of two plus its predecessor.
func maxInteger[W constraints.Integer]() W {
	ones := ^W(0)
	if ones > 0 {
		return ones // unsigned: all bits set is the maximum
	}
	hi := W(1)
	for hi<<1 > 0 {
		hi <<= 1
	}

	return hi - 1 + hi
}
