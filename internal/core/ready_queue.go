package core

const minQueueCapacity = 4

// ReadyQueue is a growable ring buffer of indices into the process table.
type ReadyQueue struct {
	data []int
	head int
	size int
}

func NewReadyQueue(capacity int) *ReadyQueue {
	if capacity < minQueueCapacity {
		capacity = minQueueCapacity
	}
	return &ReadyQueue{data: make([]int, capacity)}
}

func (q *ReadyQueue) Empty() bool {
	return q.size == 0
}

// Push adds index at the tail.
func (q *ReadyQueue) Push(index int) {
	if q.size == len(q.data) {
		q.grow()
	}
	q.data[(q.head+q.size)%len(q.data)] = index
	q.size++
}

// Pop removes the head. ok is false when the queue is empty.
func (q *ReadyQueue) Pop() (index int, ok bool) {
	if q.size == 0 {
		return 0, false
	}
	index = q.data[q.head]
	q.head = (q.head + 1) % len(q.data)
	q.size--
	return index, true
}

// Items returns the queued indices from head to tail.
func (q *ReadyQueue) Items() []int {
	out := make([]int, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.data[(q.head+i)%len(q.data)]
	}
	return out
}

func (q *ReadyQueue) grow() {
	data := make([]int, len(q.data)*2)
	copy(data, q.Items())
	q.data = data
	q.head = 0
}
