package beam

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopKPartitionsBestPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, k := range []int{1, 2, 17, 99} {
		items := make([]int, 100)
		for i := range items {
			items[i] = rng.Intn(500)
		}

		want := sortedCopy(items)[:k]

		TopK(items, k, intCompare)

		got := append([]int(nil), items[:k]...)
		sort.Ints(got)
		assert.Equal(t, want, got, "k=%d", k)
	}
}

func TestTopKDegenerateBounds(t *testing.T) {
	items := []int{3, 1, 2}

	// k covering the whole slice or nothing must leave it untouched
	TopK(items, 0, intCompare)
	assert.Equal(t, []int{3, 1, 2}, items)

	TopK(items, 3, intCompare)
	assert.Equal(t, []int{3, 1, 2}, items)

	TopK(nil, 1, intCompare)
}

func TestTopKWithDuplicates(t *testing.T) {
	items := []int{5, 5, 5, 1, 5, 1, 1, 5}
	TopK(items, 3, intCompare)
	assert.Equal(t, []int{1, 1, 1}, sortedCopy(items[:3]))
}
