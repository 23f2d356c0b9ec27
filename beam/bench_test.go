package beam

import (
	"math/rand"
	"testing"
)

func BenchmarkBeamPushSaturated(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	bm := New(intCompare, 256, nil)
	for i := 0; i < 256; i++ {
		bm.Push(rng.Intn(1 << 20))
	}

	values := make([]int, 4096)
	for i := range values {
		values[i] = rng.Intn(1 << 20)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bm.Push(values[i%len(values)])
	}
}

func BenchmarkBeamPushPop(b *testing.B) {
	rng := rand.New(rand.NewSource(2))

	bm := New(intCompare, 1024, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bm.Push(rng.Intn(1 << 20))
		if bm.Len() == 1024 {
			bm.Pop()
		}
	}
}

func BenchmarkTopK(b *testing.B) {
	rng := rand.New(rand.NewSource(3))

	base := make([]int, 100_000)
	for i := range base {
		base[i] = rng.Intn(1 << 20)
	}
	scratch := make([]int, len(base))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, base)
		TopK(scratch, 1024, intCompare)
	}
}
