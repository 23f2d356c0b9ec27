package beam

import "math/rand"

// TopK partially orders items so that the k best elements under cmp occupy
// items[:k], in no particular order. It runs in expected linear time
// (quickselect with random pivots) and never allocates; use it when a full
// sort would be wasted on elements that are about to be discarded.
func TopK[T any](items []T, k int, cmp CompareFunc[T]) {
	if k <= 0 || k >= len(items) {
		return
	}

	lo, hi := 0, len(items)-1
	for lo < hi {
		p := partition(items, lo, hi, cmp)
		switch {
		case p == k-1:
			return
		case p < k-1:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition applies a Lomuto partition around a random pivot and returns the
// pivot's final index. Random pivoting guards against adversarial orderings.
func partition[T any](items []T, lo, hi int, cmp CompareFunc[T]) int {
	p := lo + rand.Intn(hi-lo+1) //nolint gosec
	items[p], items[hi] = items[hi], items[p]

	pivot := items[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if cmp(items[j], pivot) < 0 {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[hi] = items[hi], items[i]

	return i
}
