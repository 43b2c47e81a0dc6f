package cartesian_test

import (
	"testing"

	"github.com/katalvlaran/tiercore/cartesian"
)

// benchmarkProduct materializes the product of k lists of width w each.
func benchmarkProduct(b *testing.B, k, w int) {
	lists := make([][]int, k)
	for j := range lists {
		lists[j] = make([]int, w)
		for i := range lists[j] {
			lists[j][i] = i
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cartesian.Product(lists); err != nil {
			b.Fatalf("Product failed: %v", err)
		}
	}
}

// BenchmarkProduct_4x4 covers 256 combinations.
func BenchmarkProduct_4x4(b *testing.B) { benchmarkProduct(b, 4, 4) }

// BenchmarkProduct_8x2 covers 256 combinations across more, narrower lists.
func BenchmarkProduct_8x2(b *testing.B) { benchmarkProduct(b, 8, 2) }

// BenchmarkProduct_6x4 covers 4096 combinations.
func BenchmarkProduct_6x4(b *testing.B) { benchmarkProduct(b, 6, 4) }
