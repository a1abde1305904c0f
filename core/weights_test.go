package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

func TestIntegerDomain_Int64(t *testing.T) {
	d := core.IntegerDomain[int64]()

	require.Equal(t, int64(0), d.Zero())
	require.Equal(t, int64(math.MaxInt64), d.Inf(), "integer infinity is the maximum representable value")
	require.Equal(t, int64(7), d.Add(3, 4))
	require.True(t, d.Less(1, 2))
	require.False(t, d.Less(2, 2), "Less is strict")
	require.True(t, d.Less(d.Add(d.Zero(), 1), d.Inf()), "finite sums stay below infinity")
}

func TestIntegerDomain_NarrowAndUnsigned(t *testing.T) {
	require.Equal(t, int8(math.MaxInt8), core.IntegerDomain[int8]().Inf())
	require.Equal(t, int16(math.MaxInt16), core.IntegerDomain[int16]().Inf())
	require.Equal(t, uint8(math.MaxUint8), core.IntegerDomain[uint8]().Inf())
	require.Equal(t, uint64(math.MaxUint64), core.IntegerDomain[uint64]().Inf())
}

func TestFloatDomain(t *testing.T) {
	d := core.FloatDomain[float64]()

	require.Equal(t, 0.0, d.Zero())
	require.True(t, math.IsInf(d.Inf(), 1))
	require.Equal(t, 2.5, d.Add(1.0, 1.5))
	require.True(t, d.Less(1.0, math.Inf(1)))
	require.True(t, math.IsInf(d.Add(d.Inf(), 1), 1), "float infinity is closed under Add")
}

// TestDomainTypedWeights ensures named numeric types satisfy the constraints.
func TestDomainTypedWeights(t *testing.T) {
	type cost int32
	d := core.IntegerDomain[cost]()
	require.Equal(t, cost(math.MaxInt32), d.Inf())
	require.Equal(t, cost(5), d.Add(2, 3))
}
