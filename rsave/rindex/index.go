// Package rindex holds the integer handles used by every live table and
// the arena that hands them out. Handle 0 is never a record.
package rindex

import (
	"github.com/pkg/errors"
)

// Ref is a 1-based handle into a live table. NoRef marks an empty link.
type Ref int

const NoRef Ref = 0

func (r Ref) IsSet() bool {
	return r != NoRef
}

// Arena is a table whose slot 0 is reserved, so that a zero Ref never
// names a record.
type Arena[T any] struct {
	items []T
	max   int
}

// NewArena creates an arena holding at most max-1 records.
func NewArena[T any](max int) *Arena[T] {
	if max < 1 {
		max = 1
	}
	return &Arena[T]{
		items: make([]T, 1, max),
		max:   max,
	}
}

// Pop allocates the next slot.
func (a *Arena[T]) Pop(t T) (Ref, error) {
	if len(a.items) >= a.max {
		return NoRef, errors.Errorf("arena full at %d records", a.max-1)
	}
	a.items = append(a.items, t)
	return Ref(len(a.items) - 1), nil
}

// Get returns a pointer to the record, or nil for NoRef and anything
// out of range.
func (a *Arena[T]) Get(ref Ref) *T {
	if ref <= NoRef || int(ref) >= len(a.items) {
		return nil
	}
	return &a.items[ref]
}

// Len counts allocated records, not the reserved slot.
func (a *Arena[T]) Len() int {
	return len(a.items) - 1
}

func (a *Arena[T]) Max() int {
	return a.max
}

// Items returns the records in handle order, starting at handle 1.
func (a *Arena[T]) Items() []T {
	return a.items[1:]
}

// Each visits every record with its handle.
func (a *Arena[T]) Each(visit func(ref Ref, t *T)) {
	for i := 1; i < len(a.items); i++ {
		visit(Ref(i), &a.items[i])
	}
}

func (a *Arena[T]) Reset() {
	var zero T
	a.items = append(a.items[:0], zero)
}
