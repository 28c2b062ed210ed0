package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type pq_entry[T any, P constraints.Ordered] struct {
	item     T
	priority P
}

// Binary min-heap keyed by priority.
//
// Entries with equal priority are dequeued in insertion order.
type PriorityQueue[T any, P constraints.Ordered] struct {
	entries []pq_entry[T, P]
	counter int64
	orders  []int64
}

func NewPriorityQueue[T any, P constraints.Ordered](capacity int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		entries: make([]pq_entry[T, P], 0, capacity),
		orders:  make([]int64, 0, capacity),
	}
}

func (self *PriorityQueue[T, P]) Len() int {
	return len(self.entries)
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.entries = append(self.entries, pq_entry[T, P]{item, priority})
	self.orders = append(self.orders, self.counter)
	self.counter += 1
	self.sift_up(len(self.entries) - 1)
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if len(self.entries) == 0 {
		var t T
		return t, false
	}
	top := self.entries[0].item
	last := len(self.entries) - 1
	self.entries[0] = self.entries[last]
	self.orders[0] = self.orders[last]
	self.entries = self.entries[:last]
	self.orders = self.orders[:last]
	if last > 0 {
		self.sift_down(0)
	}
	return top, true
}

func (self *PriorityQueue[T, P]) less(i, j int) bool {
	if self.entries[i].priority != self.entries[j].priority {
		return self.entries[i].priority < self.entries[j].priority
	}
	return self.orders[i] < self.orders[j]
}

func (self *PriorityQueue[T, P]) swap(i, j int) {
	self.entries[i], self.entries[j] = self.entries[j], self.entries[i]
	self.orders[i], self.orders[j] = self.orders[j], self.orders[i]
}

func (self *PriorityQueue[T, P]) sift_up(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !self.less(index, parent) {
			break
		}
		self.swap(index, parent)
		index = parent
	}
}

func (self *PriorityQueue[T, P]) sift_down(index int) {
	count := len(self.entries)
	for {
		left := 2*index + 1
		right := 2*index + 2
		smallest := index
		if left < count && self.less(left, smallest) {
			smallest = left
		}
		if right < count && self.less(right, smallest) {
			smallest = right
		}
		if smallest == index {
			break
		}
		self.swap(index, smallest)
		index = smallest
	}
}
