package beam

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCompare(a, b int) int { return a - b }

// sortedCopy returns the elements ascending, i.e. best-first under intCompare.
func sortedCopy(items []int) []int {
	out := append([]int(nil), items...)
	sort.Ints(out)
	return out
}

// checkAgainstModel verifies the double-ended accessors against a reference
// multiset of the retained elements.
func checkAgainstModel(t *testing.T, b *Beam[int], model []int) {
	t.Helper()

	require.Equal(t, len(model), b.Len())
	if len(model) == 0 {
		_, ok := b.Peek()
		assert.False(t, ok)
		return
	}

	ref := sortedCopy(model)

	best, ok := b.Peek()
	require.True(t, ok)
	assert.Equal(t, ref[0], best, "stored best must equal the comparator minimum")

	worst, ok := b.Worst()
	require.True(t, ok)
	assert.Equal(t, ref[len(ref)-1], worst, "stored worst must equal the comparator maximum")
}

func TestBeamPushPopOrdering(t *testing.T) {
	b := New(intCompare, Unbounded, nil)

	values := []int{9, 1, 7, 3, 3, 8, 0, 5, 2, 6, 4}
	for _, v := range values {
		assert.True(t, b.Push(v))
	}

	drained := make([]int, 0, len(values))
	for {
		v, ok := b.Pop()
		if !ok {
			break
		}
		drained = append(drained, v)
	}

	assert.Equal(t, sortedCopy(values), drained)
	assert.Equal(t, 0, b.Len())
}

func TestBeamCapacityZeroRejectsEverything(t *testing.T) {
	b := New(intCompare, 0, []int{4, 2})

	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Push(1))
	assert.Equal(t, 0, b.Len())
}

func TestBeamCapacityOneIsGreedy(t *testing.T) {
	b := New(intCompare, 1, []int{5})

	assert.False(t, b.Push(7), "worse element must be rejected")
	assert.True(t, b.Push(3), "better element must displace the resident")
	assert.False(t, b.Push(3), "tied element must be rejected")

	best, ok := b.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, best)
	assert.Equal(t, 1, b.Len())
}

func TestBeamSaturatedRejectionLeavesSetUnchanged(t *testing.T) {
	initial := []int{1, 2, 3, 4, 5}
	b := New(intCompare, 5, initial)

	worst, ok := b.Worst()
	require.True(t, ok)
	require.Equal(t, 5, worst)

	// Worse than the current worst: the retained set must be untouched,
	// not merely the same size.
	assert.False(t, b.Push(9))

	drained := make([]int, 0, 5)
	for {
		v, ok := b.Pop()
		if !ok {
			break
		}
		drained = append(drained, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, drained)
}

func TestBeamSaturatedDisplacesWorst(t *testing.T) {
	b := New(intCompare, 3, []int{10, 20, 30})

	assert.True(t, b.Push(15))
	assert.Equal(t, 3, b.Len())

	worst, _ := b.Worst()
	assert.Equal(t, 20, worst)

	// A new global best exercises the root-side restore.
	assert.True(t, b.Push(1))
	best, _ := b.Peek()
	assert.Equal(t, 1, best)
	worst, _ = b.Worst()
	assert.Equal(t, 15, worst)
}

func TestBeamSeedingSelectsBestPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	initial := make([]int, 100)
	for i := range initial {
		initial[i] = rng.Intn(1000)
	}
	want := sortedCopy(initial)[:10]

	b := New(intCompare, 10, initial)
	require.Equal(t, 10, b.Len())

	drained := make([]int, 0, 10)
	for {
		v, ok := b.Pop()
		if !ok {
			break
		}
		drained = append(drained, v)
	}
	assert.Equal(t, want, drained)
}

func TestBeamInvariantUnderRandomOps(t *testing.T) {
	const (
		capacity = 16
		ops      = 5000
	)

	rng := rand.New(rand.NewSource(1))
	b := New(intCompare, capacity, nil)
	model := make([]int, 0, capacity)

	for i := 0; i < ops; i++ {
		if rng.Intn(3) == 0 {
			v, ok := b.Pop()
			if assert.Equal(t, len(model) > 0, ok) && ok {
				ref := sortedCopy(model)
				assert.Equal(t, ref[0], v)
				// remove one instance of v from the model
				for j, m := range model {
					if m == v {
						model = append(model[:j], model[j+1:]...)
						break
					}
				}
			}
		} else {
			v := rng.Intn(200)
			retained := b.Push(v)

			if len(model) < capacity {
				assert.True(t, retained)
				model = append(model, v)
			} else {
				ref := sortedCopy(model)
				worst := ref[len(ref)-1]
				if v < worst {
					assert.True(t, retained)
					for j, m := range model {
						if m == worst {
							model[j] = v
							break
						}
					}
				} else {
					assert.False(t, retained)
				}
			}
		}

		assert.LessOrEqual(t, b.Len(), capacity)
		checkAgainstModel(t, b, model)
		if t.Failed() {
			t.Fatalf("invariant broken after %d operations", i+1)
		}
	}
}

func TestBeamUnboundedNeverRejects(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New(intCompare, Unbounded, nil)

	for i := 0; i < 1000; i++ {
		assert.True(t, b.Push(rng.Intn(100)))
	}
	assert.Equal(t, 1000, b.Len())
}
