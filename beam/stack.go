package beam

// Stack is the unbounded fallback container for exhaustive search. Push
// appends and Pop removes the most recently appended element; ordering is
// immaterial because exhaustive mode eventually visits every element, and
// maintaining priority order would cost more than it saves.
type Stack[T any] struct {
	items []T
}

// NewStack creates a Stack seeded with the given elements.
func NewStack[T any](initial []T) *Stack[T] {
	s := &Stack[T]{items: make([]T, len(initial))}
	copy(s.items, initial)
	return s
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Push appends v. It always retains and reports true.
func (s *Stack[T]) Push(v T) bool {
	s.items = append(s.items, v)
	return true
}

// Peek returns the most recently appended element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Pop removes and returns the most recently appended element.
func (s *Stack[T]) Pop() (T, bool) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, false
	}

	var zero T
	v := s.items[n-1]
	s.items[n-1] = zero // avoid retaining popped values
	s.items = s.items[:n-1]

	return v, true
}
