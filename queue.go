package hmm

import "container/heap"

// queueEntry is one lazily-invalidated candidate-error entry. It is
// never updated in place: a triangle whose error changes gets pushed
// as a new entry, and stale entries (superseded generation, or a
// triangle that has since been retired) are discarded when popped.
type queueEntry struct {
	tri int32
	gen uint32
	err float64
}

// priorityQueue is a max-heap on err, with index equal to push order
// used as a final, deterministic tie-breaker so that repeated runs on
// identical input produce byte-identical output.
type priorityQueue struct {
	entries []queueEntry
	seq     []int64
	next    int64
}

func (q *priorityQueue) Len() int { return len(q.entries) }

func (q *priorityQueue) Less(i, j int) bool {
	if q.entries[i].err != q.entries[j].err {
		return q.entries[i].err > q.entries[j].err
	}
	return q.seq[i] < q.seq[j]
}

func (q *priorityQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.seq[i], q.seq[j] = q.seq[j], q.seq[i]
}

func (q *priorityQueue) Push(x any) {
	q.entries = append(q.entries, x.(queueEntry))
	q.seq = append(q.seq, q.next)
	q.next++
}

func (q *priorityQueue) Pop() any {
	n := len(q.entries)
	e := q.entries[n-1]
	q.entries = q.entries[:n-1]
	q.seq = q.seq[:n-1]
	return e
}

func newPriorityQueue() *priorityQueue {
	pq := &priorityQueue{}
	heap.Init(pq)
	return pq
}

func (q *priorityQueue) push(tri int32, gen uint32, err float64) {
	heap.Push(q, queueEntry{tri: tri, gen: gen, err: err})
}

// pop discards stale entries (retired triangle, or superseded
// generation/error) and returns the first live, current entry, or
// ok=false if the queue is exhausted.
func (q *priorityQueue) pop(m *mesh) (queueEntry, bool) {
	for q.Len() > 0 {
		e := heap.Pop(q).(queueEntry)
		if !m.live[e.tri] {
			continue
		}
		if m.gen[e.tri] != e.gen {
			continue
		}
		if m.candidates[e.tri].Err != e.err {
			continue
		}
		return e, true
	}
	return queueEntry{}, false
}
