// Package queue provides a stable generic priority queue used to rank benchmark results.
package queue

import (
	"container/heap"
)

// entry pairs a value with its insertion sequence, which breaks ties
type entry[E any] struct {
	value E
	seq   uint64
}

// entries implements heap.Interface
type entries[E any] struct {
	list    []entry[E]
	cmpFunc func(a, b E) int
}

// PriorityQueue serves the value comparing lowest first. Values comparing equal
// leave the queue in the order they were pushed.
type PriorityQueue[E any] struct {
	h    entries[E]
	next uint64
}

// NewPriorityQueue creates an empty queue ordered by cmpFunc, which returns a
// negative integer when a should be served before b.
func NewPriorityQueue[E any](cmpFunc func(a, b E) int) *PriorityQueue[E] {
	return &PriorityQueue[E]{h: entries[E]{cmpFunc: cmpFunc}}
}

// From builds a queue holding values in linear time. Ties keep slice order.
func From[E any](values []E, cmpFunc func(a, b E) int) *PriorityQueue[E] {
	pq := NewPriorityQueue(cmpFunc)
	pq.h.list = make([]entry[E], len(values))
	for i, v := range values {
		pq.h.list[i] = entry[E]{value: v, seq: pq.next}
		pq.next++
	}
	heap.Init(&pq.h)
	return pq
}

// Len returns the number of values waiting in the queue
func (pq *PriorityQueue[E]) Len() int {
	return len(pq.h.list)
}

// Push adds x behind every value comparing equal to it
func (pq *PriorityQueue[E]) Push(x E) {
	heap.Push(&pq.h, entry[E]{value: x, seq: pq.next})
	pq.next++
}

// Pop removes and returns the next value. It panics on an empty queue.
func (pq *PriorityQueue[E]) Pop() E {
	return heap.Pop(&pq.h).(entry[E]).value
}

// Drain pops every value, returning them in service order.
func (pq *PriorityQueue[E]) Drain() []E {
	out := make([]E, 0, pq.Len())
	for pq.Len() > 0 {
		out = append(out, pq.Pop())
	}
	return out
}

func (h *entries[E]) Len() int { return len(h.list) }

func (h *entries[E]) Less(i, j int) bool {
	if c := h.cmpFunc(h.list[i].value, h.list[j].value); c != 0 {
		return c < 0
	}
	return h.list[i].seq < h.list[j].seq
}

func (h *entries[E]) Swap(i, j int) { h.list[i], h.list[j] = h.list[j], h.list[i] }

func (h *entries[E]) Push(x any) {
	h.list = append(h.list, x.(entry[E]))
}

func (h *entries[E]) Pop() any {
	n := len(h.list) - 1
	e := h.list[n]
	var zero entry[E]
	h.list[n] = zero
	h.list = h.list[:n]
	return e
}
