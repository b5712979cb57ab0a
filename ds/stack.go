package ds

// Stack is a LIFO worklist.
type Stack[T any] struct {
	items []T
}

func NewStack[T any](initial ...T) *Stack[T] {
	return &Stack[T]{
		items: append(make([]T, 0, len(initial)), initial...),
	}
}

func (r *Stack[T]) Len() int {
	return len(r.items)
}

func (r *Stack[T]) Push(ts ...T) {
	r.items = append(r.items, ts...)
}

// Pop removes the top item. ok is false when the stack is empty.
func (r *Stack[T]) Pop() (t T, ok bool) {
	if len(r.items) == 0 {
		return t, false
	}
	t = r.items[len(r.items)-1]
	r.items = r.items[:len(r.items)-1]
	return t, true
}

// Items returns the pending items, bottom first.
func (r *Stack[T]) Items() []T {
	return r.items
}
