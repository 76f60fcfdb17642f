package gf2_test

import (
	"testing"

	"github.com/katalvlaran/tedea/gf2"
)

// buildDense fills an n×n matrix with a deterministic pseudo-random pattern.
func buildDense(b *testing.B, n int) *gf2.Matrix {
	b.Helper()
	m, err := gf2.New(n, n)
	if err != nil {
		b.Fatal(err)
	}
	state := uint64(0x9e3779b97f4a7c15)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			state ^= state << 13
			state ^= state >> 7
			state ^= state << 17
			_ = m.Set(i, j, uint8(state&1))
		}
	}
	return m
}

func BenchmarkRank64(b *testing.B) {
	m := buildDense(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Rank()
	}
}

func BenchmarkRank256(b *testing.B) {
	m := buildDense(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Rank()
	}
}

func BenchmarkMul128(b *testing.B) {
	m := buildDense(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gf2.Mul(m, m); err != nil {
			b.Fatal(err)
		}
	}
}
