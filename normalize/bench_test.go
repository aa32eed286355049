package normalize_test

import (
	"testing"

	"github.com/katalvlaran/adjnorm/matrix"
	"github.com/katalvlaran/adjnorm/normalize"
)

// ringDense builds an n-node ring graph as a Dense adjacency.
func ringDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, (i+1)%n, 1) // forward edge
		_ = m.Set((i+1)%n, i, 1) // mirrored edge
	}
	return m
}

// ringCOO builds the same ring graph as a COO adjacency.
func ringCOO(b *testing.B, n int) *matrix.COO {
	b.Helper()
	m, err := matrix.NewCOO(n)
	if err != nil {
		b.Fatalf("NewCOO failed: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Append(i, (i+1)%n, 1)
		_ = m.Append((i+1)%n, i, 1)
	}
	return m
}

// BenchmarkNormalize_Dense100 measures the dense O(n²) path on a 100-node ring.
func BenchmarkNormalize_Dense100(b *testing.B) {
	m := ringDense(b, 100)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := normalize.Normalize(m); err != nil {
			b.Fatalf("Normalize failed: %v", err)
		}
	}
}

// BenchmarkNormalize_COO1000 measures the sparse O(nnz+n) path on a
// 1000-node ring (2000 stored entries).
func BenchmarkNormalize_COO1000(b *testing.B) {
	m := ringCOO(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := normalize.Normalize(m); err != nil {
			b.Fatalf("Normalize failed: %v", err)
		}
	}
}

// BenchmarkNormalize_CSR1000 measures the compressed-row path on the same ring.
func BenchmarkNormalize_CSR1000(b *testing.B) {
	m := ringCOO(b, 1000).ToCSR()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := normalize.Normalize(m); err != nil {
			b.Fatalf("Normalize failed: %v", err)
		}
	}
}

// BenchmarkNormalizeAll_Parallel8 compares the batch fan-out against the
// sequential baseline on eight 200-node rings.
func BenchmarkNormalizeAll_Parallel8(b *testing.B) {
	in := make([]matrix.Adjacency, 8)
	for k := range in {
		in[k] = ringDense(b, 200)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := normalize.NormalizeAll(in, normalize.WithParallel()); err != nil {
			b.Fatalf("NormalizeAll failed: %v", err)
		}
	}
}

// BenchmarkNormalizeAll_Sequential8 is the sequential baseline for the above.
func BenchmarkNormalizeAll_Sequential8(b *testing.B) {
	in := make([]matrix.Adjacency, 8)
	for k := range in {
		in[k] = ringDense(b, 200)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := normalize.NormalizeAll(in); err != nil {
			b.Fatalf("NormalizeAll failed: %v", err)
		}
	}
}
