package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// nodeQueue is a weight-ascending priority queue of tree nodes.  Entries of
// equal weight leave in the order they were enqueued, which pins down the
// tree shape for tied frequencies.
type nodeQueue struct {
	list []queueItem
	seq  uint64
}

type queueItem struct {
	node   *Node
	weight int
	seq    uint64
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{list: make([]queueItem, 0, capacity)}
}

// Enqueue adds node with the given weight.
func (q *nodeQueue) Enqueue(node *Node, weight int) {
	heap.Push(q, queueItem{node: node, weight: weight, seq: q.seq})
	q.seq++
}

// Dequeue removes the lowest-weight node, oldest first among equals.
func (q *nodeQueue) Dequeue() (*Node, int) {
	assert.Assertf(len(q.list) != 0, "Dequeue on empty queue")
	item := heap.Pop(q).(queueItem)
	return item.node, item.weight
}

// type nodeQueue heap.Interface {{{

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueItem))
}

func (q *nodeQueue) Pop() interface{} {
	last := len(q.list) - 1
	x := q.list[last]
	q.list[last] = queueItem{}
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
