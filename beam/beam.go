// Package beam provides the candidate containers used by the beamgo search
// driver: a capacity-bounded min-max heap for pruned best-first search, and
// a trivial unbounded stack for exhaustive backtracking.
//
// The heap is value-based (no pointer indirection, no container/heap boxing)
// for cache locality and zero allocations in the steady state.
package beam

import "math/bits"

// Unbounded configures a Beam with no capacity limit.
const Unbounded = -1

// CompareFunc orders candidate states. A negative result means a ranks
// before (is more optimal than) b, a positive result means a ranks after b,
// and zero means the two are tied. Only the sign of the result is used.
type CompareFunc[T any] func(a, b T) int

// Frontier is the candidate container consumed by the search driver.
// Push reports whether the element was retained; a bounded container
// rejects elements worse than its current worst once saturated.
type Frontier[T any] interface {
	Push(v T) bool
	Pop() (T, bool)
	Peek() (T, bool)
	Len() int
}

// Compile time checks to ensure both containers satisfy Frontier.
var (
	_ Frontier[int] = (*Beam[int])(nil)
	_ Frontier[int] = (*Stack[int])(nil)
)

// Beam is a capacity-bounded double-ended priority container backed by an
// implicit min-max heap (Atkinson et al.): tree levels alternate role by
// depth, the root is always the best-ranked element, and the worst-ranked
// element is always the worse of the root's up-to-two children. This makes
// bounded top-k maintenance cheap: once saturated, most candidates are
// rejected with a single comparison against the current worst.
//
// Beam is not thread-safe. It is intended to be owned by a single search
// invocation for its duration.
type Beam[T any] struct {
	cmp      CompareFunc[T]
	capacity int
	items    []T
}

// New creates a Beam holding the up-to-capacity best elements of initial.
// A negative capacity (Unbounded) disables the bound; capacity 0 yields a
// container that rejects every element.
//
// When initial exceeds the capacity, the retained prefix is chosen with a
// linear-time selection rather than a full sort. initial is partitioned in
// place; the Beam keeps its own copy.
func New[T any](cmp CompareFunc[T], capacity int, initial []T) *Beam[T] {
	b := &Beam[T]{cmp: cmp, capacity: capacity}
	if capacity == 0 {
		return b
	}

	n := len(initial)
	if capacity > 0 && n > capacity {
		TopK(initial, capacity, cmp)
		n = capacity
	}

	b.items = make([]T, n)
	copy(b.items, initial[:n])

	// Bottom-up heapify: restore the invariant from the last parent down
	// to the root.
	for i := n/2 - 1; i >= 0; i-- {
		b.trickleDown(i)
	}

	return b
}

// Len returns the number of retained elements.
func (b *Beam[T]) Len() int { return len(b.items) }

// Cap returns the configured capacity, or Unbounded.
func (b *Beam[T]) Cap() int { return b.capacity }

// Peek returns the best-ranked element without removing it.
func (b *Beam[T]) Peek() (T, bool) {
	if len(b.items) == 0 {
		var zero T
		return zero, false
	}
	return b.items[0], true
}

// Worst returns the worst-ranked retained element without removing it.
func (b *Beam[T]) Worst() (T, bool) {
	if len(b.items) == 0 {
		var zero T
		return zero, false
	}
	return b.items[b.worstIndex()], true
}

// Push inserts v, evicting the current worst element if the container is
// saturated and v ranks before it. It reports whether v was retained;
// rejection leaves the container untouched.
func (b *Beam[T]) Push(v T) bool {
	switch {
	case b.capacity == 0:
		return false

	case b.capacity < 0 || len(b.items) < b.capacity:
		b.items = append(b.items, v)
		b.bubbleUp(len(b.items) - 1)
		return true

	case b.capacity == 1:
		if b.cmp(v, b.items[0]) < 0 {
			b.items[0] = v
			return true
		}
		return false

	default:
		w := b.worstIndex()
		if b.cmp(v, b.items[w]) >= 0 {
			return false
		}
		// Overwriting a max-level slot can violate order on either side
		// of the tree: against the root if v is a new global best, and
		// against the slot's own descendants otherwise.
		b.items[w] = v
		b.trickleDown(0)
		b.trickleDown(w)
		return true
	}
}

// Pop removes and returns the best-ranked element.
func (b *Beam[T]) Pop() (T, bool) {
	var zero T
	n := len(b.items)
	if n == 0 {
		return zero, false
	}

	best := b.items[0]
	b.items[0] = b.items[n-1]
	b.items[n-1] = zero // avoid retaining popped values
	b.items = b.items[:n-1]

	if len(b.items) > 0 {
		b.trickleDown(0)
	}

	return best, true
}

// worstIndex returns the index of the worst-ranked element. For two or more
// elements that is the worse of the root's children; for fewer it is the
// root itself.
func (b *Beam[T]) worstIndex() int {
	if len(b.items) < 2 {
		return 0
	}
	w := 1
	if len(b.items) > 2 && b.cmp(b.items[2], b.items[1]) > 0 {
		w = 2
	}
	return w
}

// minLevel reports whether index i sits on a min level. The root is depth 0
// and depth roles alternate: even depths rank best-first, odd depths
// worst-first.
func minLevel(i int) bool {
	return (bits.Len(uint(i)+1)-1)%2 == 0
}

func (b *Beam[T]) swap(i, j int) {
	b.items[i], b.items[j] = b.items[j], b.items[i]
}

// bubbleUp restores the invariant after an append at index i. The new slot
// first settles onto the correct role level by comparing against its parent,
// then climbs same-role levels two at a time.
func (b *Beam[T]) bubbleUp(i int) {
	if i == 0 {
		return
	}
	parent := (i - 1) / 2
	if minLevel(i) {
		if b.cmp(b.items[i], b.items[parent]) > 0 {
			b.swap(i, parent)
			b.bubbleUpRole(parent, false)
		} else {
			b.bubbleUpRole(i, true)
		}
	} else {
		if b.cmp(b.items[i], b.items[parent]) < 0 {
			b.swap(i, parent)
			b.bubbleUpRole(parent, true)
		} else {
			b.bubbleUpRole(i, false)
		}
	}
}

// bubbleUpRole climbs from i toward the root along same-role levels,
// swapping with the grandparent while the role's order is violated.
func (b *Beam[T]) bubbleUpRole(i int, min bool) {
	for i > 2 {
		g := (i - 3) / 4
		c := b.cmp(b.items[i], b.items[g])
		if (min && c < 0) || (!min && c > 0) {
			b.swap(i, g)
			i = g
			continue
		}
		break
	}
}

// trickleDown restores the invariant below index i. At each step the
// best-ranked descendant under i's role is found among children and
// grandchildren; a grandchild swap may displace a value under the wrong
// parent, which needs one extra fix before descending further. A child
// swap cannot create a deeper violation.
func (b *Beam[T]) trickleDown(i int) {
	min := minLevel(i)
	for {
		m, grand := b.bestDescendant(i, min)
		if m < 0 {
			return
		}
		c := b.cmp(b.items[m], b.items[i])
		if (min && c >= 0) || (!min && c <= 0) {
			return
		}
		b.swap(i, m)
		if !grand {
			return
		}
		p := (m - 1) / 2
		cp := b.cmp(b.items[m], b.items[p])
		if (min && cp > 0) || (!min && cp < 0) {
			b.swap(m, p)
		}
		i = m
	}
}

// bestDescendant returns the best-ranked index under the given role among
// the children and grandchildren of i, and whether it is a grandchild.
// It returns -1 when i has no children.
func (b *Beam[T]) bestDescendant(i int, min bool) (int, bool) {
	n := len(b.items)
	first := 2*i + 1
	if first >= n {
		return -1, false
	}

	best, grand := first, false
	better := func(j int) bool {
		c := b.cmp(b.items[j], b.items[best])
		return (min && c < 0) || (!min && c > 0)
	}

	if second := first + 1; second < n && better(second) {
		best = second
	}
	for j := 2*first + 1; j <= 2*first+4 && j < n; j++ {
		if better(j) {
			best, grand = j, true
		}
	}

	return best, grand
}
