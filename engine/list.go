package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/side-fighter/core"
)

// ErrListFull is returned by Append when every slot is in use
var ErrListFull = errors.New("list capacity exhausted")

// sentinel is the slot index of the permanent head node
const sentinel = 0

type node[T any] struct {
	value T
	next  uint32 // sentinel terminates the chain
	gen   uint32
	live  bool
}

// List is a singly-linked list threaded through a generational arena
// Slot 0 is the permanent sentinel head, tail is the last linked slot or the sentinel when empty
// The list owns every value reachable from its head; handles into it are non-owning
type List[T any] struct {
	nodes    []node[T]
	free     []uint32
	tail     uint32
	length   int
	capacity int
}

// NewList creates a list holding at most capacity live values
// Storage is reserved up front so Append never moves existing values
func NewList[T any](capacity int) *List[T] {
	if capacity < 1 {
		capacity = 1
	}
	l := &List[T]{
		nodes:    make([]node[T], 1, capacity+1),
		free:     make([]uint32, 0, capacity),
		capacity: capacity,
	}
	return l
}

// Append links v after the current tail in O(1)
// Returns ErrListFull without touching the list when no slot is available
func (l *List[T]) Append(v T) (core.Handle, *T, error) {
	idx, ok := l.alloc()
	if !ok {
		return 0, nil, ErrListFull
	}

	n := &l.nodes[idx]
	n.value = v
	n.next = sentinel
	n.live = true

	l.nodes[l.tail].next = idx
	l.tail = idx
	l.length++

	return core.NewHandle(idx, n.gen), &n.value, nil
}

// Get resolves a handle, failing for released or foreign slots
func (l *List[T]) Get(h core.Handle) (*T, bool) {
	idx := h.Index()
	if idx == sentinel || int(idx) >= len(l.nodes) {
		return nil, false
	}
	n := &l.nodes[idx]
	if !n.live || n.gen != h.Generation() {
		return nil, false
	}
	return &n.value, true
}

// Alive reports whether h still refers to a linked value
func (l *List[T]) Alive(h core.Handle) bool {
	_, ok := l.Get(h)
	return ok
}

// Len returns the number of linked values
func (l *List[T]) Len() int { return l.length }

// Cap returns the maximum number of linked values
func (l *List[T]) Cap() int { return l.capacity }

// Head returns the handle of the first value, zero when empty
func (l *List[T]) Head() core.Handle {
	return l.handleOf(l.nodes[sentinel].next)
}

// Tail returns the handle of the last value, zero (the sentinel) when empty
func (l *List[T]) Tail() core.Handle {
	return l.handleOf(l.tail)
}

// Range visits values in link order until fn returns false
// fn must not append to or clear this list
func (l *List[T]) Range(fn func(h core.Handle, v *T) bool) {
	for idx := l.nodes[sentinel].next; idx != sentinel; idx = l.nodes[idx].next {
		n := &l.nodes[idx]
		if !fn(core.NewHandle(idx, n.gen), &n.value) {
			return
		}
	}
}

// Sweep visits every value once in link order, unlinking and releasing those for which keep returns false
// Removal relinks the predecessor and, for the tail, moves the tail back to the predecessor,
// then traversal resumes from the predecessor so no value is skipped or revisited
// keep must not append to or clear this list
func (l *List[T]) Sweep(keep func(h core.Handle, v *T) bool) (removed int) {
	prev := uint32(sentinel)
	idx := l.nodes[sentinel].next
	for idx != sentinel {
		n := &l.nodes[idx]
		next := n.next
		if keep(core.NewHandle(idx, n.gen), &n.value) {
			prev = idx
		} else {
			l.nodes[prev].next = next
			if l.tail == idx {
				l.tail = prev
			}
			l.release(idx)
			removed++
		}
		idx = next
	}
	return removed
}

// Clear releases every value and resets the list to its empty state
func (l *List[T]) Clear() {
	for idx := l.nodes[sentinel].next; idx != sentinel; {
		next := l.nodes[idx].next
		l.release(idx)
		idx = next
	}
	l.nodes[sentinel].next = sentinel
	l.tail = sentinel
}

// Validate checks structural invariants: the chain from the head is acyclic,
// visits only live slots, ends at tail, and its length matches Len
func (l *List[T]) Validate() error {
	last := uint32(sentinel)
	count := 0
	for idx := l.nodes[sentinel].next; idx != sentinel; idx = l.nodes[idx].next {
		if int(idx) >= len(l.nodes) {
			return fmt.Errorf("slot %d out of range", idx)
		}
		if !l.nodes[idx].live {
			return fmt.Errorf("released slot %d still linked", idx)
		}
		count++
		if count > l.length {
			return fmt.Errorf("chain longer than length %d (cycle?)", l.length)
		}
		last = idx
	}
	if last != l.tail {
		return fmt.Errorf("tail is slot %d, last reachable is slot %d", l.tail, last)
	}
	if count != l.length {
		return fmt.Errorf("reachable %d, length %d", count, l.length)
	}
	if l.tail == sentinel && l.nodes[sentinel].next != sentinel {
		return errors.New("empty tail with non-empty head")
	}
	return nil
}

func (l *List[T]) handleOf(idx uint32) core.Handle {
	if idx == sentinel {
		return 0
	}
	return core.NewHandle(idx, l.nodes[idx].gen)
}

func (l *List[T]) alloc() (uint32, bool) {
	if n := len(l.free); n > 0 {
		idx := l.free[n-1]
		l.free = l.free[:n-1]
		return idx, true
	}
	if len(l.nodes) > l.capacity {
		return 0, false
	}
	l.nodes = append(l.nodes, node[T]{gen: 1})
	return uint32(len(l.nodes) - 1), true
}

// release zeroes the slot and bumps its generation, stale handles stop resolving
func (l *List[T]) release(idx uint32) {
	n := &l.nodes[idx]
	var zero T
	n.value = zero
	n.next = sentinel
	n.live = false
	n.gen++
	if n.gen == 0 {
		n.gen = 1
	}
	l.free = append(l.free, idx)
	l.length--
}
