package shrinkset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stdx/shrinkset"
)

// benchInput builds a shuffled slice of n distinct ints with a fixed seed
// so every benchmark run sees identical data.
func benchInput(n int) []int {
	return rand.New(rand.NewSource(1)).Perm(n)
}

// benchmarkOrderedCycle erases half the elements and restores them again,
// the core backtracking workload, on a set of size n.
func benchmarkOrderedCycle(b *testing.B, n int) {
	in := benchInput(n)
	s := shrinkset.NewOrdered(in)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < n/2; j++ {
			s.Erase(in[j])
		}
		for j := 0; j < n/2; j++ {
			s.Unerase()
		}
	}
}

// benchmarkUnorderedCycle is the same workload on the swap-remove variant.
func benchmarkUnorderedCycle(b *testing.B, n int) {
	in := benchInput(n)
	s := shrinkset.NewUnordered(in)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < n/2; j++ {
			s.Erase(in[j])
		}
		for j := 0; j < n/2; j++ {
			s.Unerase()
		}
	}
}

// BenchmarkOrdered_Cycle64 measures the ordered erase/unerase cycle on 64 elements.
func BenchmarkOrdered_Cycle64(b *testing.B) { benchmarkOrderedCycle(b, 64) }

// BenchmarkOrdered_Cycle1024 measures the ordered erase/unerase cycle on 1024 elements.
func BenchmarkOrdered_Cycle1024(b *testing.B) { benchmarkOrderedCycle(b, 1024) }

// BenchmarkUnordered_Cycle64 measures the unordered erase/unerase cycle on 64 elements.
func BenchmarkUnordered_Cycle64(b *testing.B) { benchmarkUnorderedCycle(b, 64) }

// BenchmarkUnordered_Cycle1024 measures the unordered erase/unerase cycle on 1024 elements.
func BenchmarkUnordered_Cycle1024(b *testing.B) { benchmarkUnorderedCycle(b, 1024) }

// BenchmarkOrdered_Construct measures sort+dedup construction cost.
func BenchmarkOrdered_Construct(b *testing.B) {
	in := benchInput(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = shrinkset.NewOrdered(in)
	}
}
