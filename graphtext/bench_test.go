package graphtext_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/graphtext"
)

// benchGraph builds a ring of n vertices, each with two outgoing edges.
func benchGraph(n int) *core.Graph[string, int64] {
	g := core.New[string](core.IntegerDomain[int64]())
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("v%d", i)
		g.AddEdge(u, fmt.Sprintf("v%d", (i+1)%n), int64(i%9+1))
		g.AddEdge(u, fmt.Sprintf("v%d", (i+2)%n), int64(i%7+1))
	}

	return g
}

func BenchmarkMarshal(b *testing.B) {
	g := benchGraph(2000)
	opts := graphtext.DefaultOptions[string, int64]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = graphtext.Marshal(g, opts)
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	opts := graphtext.DefaultOptions[string, int64]()
	text, err := graphtext.Marshal(benchGraph(2000), opts)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = graphtext.Unmarshal(text, core.IntegerDomain[int64](), opts)
	}
}
