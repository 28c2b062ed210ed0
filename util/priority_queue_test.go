package util

import (
	"testing"
)

func TestPriorityQueueOrder(t *testing.T) {
	heap := NewPriorityQueue[string, float64](4)
	heap.Enqueue("c", 3)
	heap.Enqueue("a", 1)
	heap.Enqueue("d", 4)
	heap.Enqueue("b", 2)

	want := []string{"a", "b", "c", "d"}
	for _, w := range want {
		item, ok := heap.Dequeue()
		if !ok {
			t.Fatalf("queue empty, want %v", w)
		}
		if item != w {
			t.Errorf("item = %v; want %v", item, w)
		}
	}
	if _, ok := heap.Dequeue(); ok {
		t.Errorf("queue should be empty")
	}
}

func TestPriorityQueueStable(t *testing.T) {
	heap := NewPriorityQueue[int, int](4)
	heap.Enqueue(1, 5)
	heap.Enqueue(2, 5)
	heap.Enqueue(3, 5)

	for i := 1; i <= 3; i++ {
		item, _ := heap.Dequeue()
		if item != i {
			t.Errorf("item = %v; want %v", item, i)
		}
	}
}
