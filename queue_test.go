package hmm

import "testing"

func TestPriorityQueueOrdersByErrorThenPushOrder(t *testing.T) {
	hm := gridFromFunc(4, 4, func(x, y int) float64 { return 0 })
	m, err := newMesh(hm)
	if err != nil {
		t.Fatalf("newMesh: %v", err)
	}

	q := newPriorityQueue()
	q.push(0, 0, 1.0)
	q.push(1, 0, 3.0)
	q.push(2, 0, 2.0)
	q.push(3, 0, 3.0)

	// Triangles 0-3 don't exist on this mesh, so make them live with
	// matching candidates for pop's staleness check to accept them.
	for i := 0; i < 4; i++ {
		for len(m.live) <= i {
			m.origin = append(m.origin, 0, 0, 0)
			m.twin = append(m.twin, -1, -1, -1)
			m.live = append(m.live, false)
			m.gen = append(m.gen, 0)
			m.candidates = append(m.candidates, candidate{})
		}
		m.live[i] = true
	}
	m.candidates[0] = candidate{Err: 1.0}
	m.candidates[1] = candidate{Err: 3.0}
	m.candidates[2] = candidate{Err: 2.0}
	m.candidates[3] = candidate{Err: 3.0}

	first, ok := q.pop(m)
	if !ok || first.tri != 1 {
		t.Fatalf("first pop = %v, want tri 1 (highest error, earliest push)", first)
	}
	second, ok := q.pop(m)
	if !ok || second.tri != 3 {
		t.Fatalf("second pop = %v, want tri 3 (tied error, later push)", second)
	}
	third, ok := q.pop(m)
	if !ok || third.tri != 2 {
		t.Fatalf("third pop = %v, want tri 2", third)
	}
	fourth, ok := q.pop(m)
	if !ok || fourth.tri != 0 {
		t.Fatalf("fourth pop = %v, want tri 0", fourth)
	}
	if _, ok := q.pop(m); ok {
		t.Fatal("queue should be empty")
	}
}

func TestPriorityQueueSkipsStaleEntries(t *testing.T) {
	hm := gridFromFunc(4, 4, func(x, y int) float64 { return 0 })
	m, err := newMesh(hm)
	if err != nil {
		t.Fatalf("newMesh: %v", err)
	}

	q := newPriorityQueue()
	q.push(0, 0, 5.0) // stale: triangle since retired
	q.push(0, 1, 4.0) // stale: generation superseded
	q.push(0, 2, 1.0) // current

	m.origin = append(m.origin[:0], 0, 0, 0)
	m.twin = append(m.twin[:0], -1, -1, -1)
	m.live = m.live[:0]
	m.gen = m.gen[:0]
	m.candidates = m.candidates[:0]
	m.origin = append(m.origin, 0, 0, 0)
	m.twin = append(m.twin, -1, -1, -1)
	m.live = append(m.live, true)
	m.gen = append(m.gen, 2)
	m.candidates = append(m.candidates, candidate{Err: 1.0})

	got, ok := q.pop(m)
	if !ok {
		t.Fatal("expected a live entry")
	}
	if got.gen != 2 || got.err != 1.0 {
		t.Errorf("pop = %+v, want gen=2 err=1.0", got)
	}
	if _, ok := q.pop(m); ok {
		t.Fatal("queue should have been fully drained of stale entries")
	}
}
