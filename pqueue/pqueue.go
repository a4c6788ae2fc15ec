// Package pqueue implements a dynamically-resized, array-backed max-priority
// queue. Elements carry a signed integer priority; ties between equal
// priorities are broken by insertion order, so the queue is a stable FIFO
// among equals. Capacity grows by a fixed step when full and shrinks again,
// with hysteresis, when usage drops two full steps below capacity.
//
// A Queue is not safe for concurrent use. Callers that need one from several
// goroutines must serialize access externally, or give each worker its own
// instance.
package pqueue

import (
	"sort"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmpty is returned by Top on an empty queue.
	ErrEmpty = errors.New("queue is empty")
	// ErrIDSpaceExhausted is returned by Insert when no insertion id can be
	// assigned. The queue is left unchanged.
	ErrIDSpaceExhausted = errors.New("insertion id space exhausted")
)

// Queue is a max-priority queue over three parallel slices: one for items,
// one for priorities, and one for insertion ids. The slices always have
// identical length (the capacity); positions [0:size) hold live elements in
// binary-heap order under the combined (priority desc, id asc) ordering.
type Queue[T any] struct {
	items      []T
	priorities []int
	ids        []uint64

	initialCapacity int
	growthStep      int

	size    int
	nextID  uint64
	resizes int
}

// New constructs a queue with the given settings. It fails if the settings
// do not verify.
func New[T any](settings Settings) (*Queue[T], error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}
	q := &Queue[T]{
		initialCapacity: settings.InitialCapacity,
		growthStep:      settings.GrowthStep,
	}
	q.items = make([]T, settings.InitialCapacity)
	q.priorities = make([]int, settings.InitialCapacity)
	q.ids = make([]uint64, settings.InitialCapacity)
	return q, nil
}

// Insert adds item with the given priority. Any signed priority is legal.
// This is ~log n unless the backing arrays need to grow, which costs a copy
// of all live elements. A failed insert leaves the queue unchanged.
func (q *Queue[T]) Insert(item T, priority int) error {
	if q.nextID == maxID {
		if uint64(q.size) == maxID {
			return ErrIDSpaceExhausted
		}
		// Rare: every id has been handed out over the queue's lifetime, but
		// fewer elements are live, so the live ids can be renumbered densely.
		q.consolidateIDs()
	}
	if q.size == len(q.items) {
		q.resize(len(q.items) + q.growthStep)
	}
	i := q.size
	q.items[i] = item
	q.priorities[i] = priority
	q.ids[i] = q.nextID
	q.nextID++
	q.size++
	q.swim(i)
	return nil
}

// Top returns the highest-priority element without removing it. Among equal
// priorities the earliest-inserted element wins.
func (q *Queue[T]) Top() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[0], nil
}

// Pop removes the highest-priority element. It is a no-op on an empty queue.
// Swapping the root with the last element and sinking it avoids the ~n shift
// a remove-from-front would cost.
func (q *Queue[T]) Pop() {
	if q.size == 0 {
		return
	}
	q.swapNodes(0, q.size-1)
	q.clearNode(q.size - 1)
	q.size--
	q.checkCapacity()
	q.sink(0)
}

func (q *Queue[T]) Empty() bool {
	return q.size == 0
}

// Len returns the number of live elements.
func (q *Queue[T]) Len() int {
	return q.size
}

// Cap returns the current capacity of the backing arrays.
func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// Resizes returns the number of times the backing arrays have been resized.
func (q *Queue[T]) Resizes() int {
	return q.resizes
}

// Clear removes all elements and resizes back down to the initial capacity.
func (q *Queue[T]) Clear() {
	for i := 0; i < q.size; i++ {
		q.clearNode(i)
	}
	q.size = 0
	q.resize(q.initialCapacity)
}

// Clone returns a fully independent deep copy of the queue.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{
		items:           make([]T, len(q.items)),
		priorities:      make([]int, len(q.priorities)),
		ids:             make([]uint64, len(q.ids)),
		initialCapacity: q.initialCapacity,
		growthStep:      q.growthStep,
		size:            q.size,
		nextID:          q.nextID,
		resizes:         q.resizes,
	}
	copy(c.items, q.items)
	copy(c.priorities, q.priorities)
	copy(c.ids, q.ids)
	return c
}

// greater reports whether node a outranks node b: higher priority first,
// then earlier insertion id among equal priorities.
func (q *Queue[T]) greater(a, b int) bool {
	if q.priorities[a] != q.priorities[b] {
		return q.priorities[a] > q.priorities[b]
	}
	return q.ids[a] < q.ids[b]
}

func (q *Queue[T]) swapNodes(a, b int) {
	q.items[a], q.items[b] = q.items[b], q.items[a]
	q.priorities[a], q.priorities[b] = q.priorities[b], q.priorities[a]
	q.ids[a], q.ids[b] = q.ids[b], q.ids[a]
}

// clearNode zeroes slot i so the removed element does not stay reachable
// through the backing array.
func (q *Queue[T]) clearNode(i int) {
	var zero T
	q.items[i] = zero
	q.priorities[i] = 0
	q.ids[i] = 0
}

// swim moves the node at i up until its parent outranks it.
func (q *Queue[T]) swim(i int) {
	p := q.parent(i)
	for p != i && q.greater(i, p) {
		q.swapNodes(i, p)
		i = p
		p = q.parent(i)
	}
}

// sink moves the node at i down, always toward the higher-ranked child,
// until neither child outranks it.
func (q *Queue[T]) sink(i int) {
	for {
		dest := i
		if l := q.leftChild(i); q.greater(l, dest) {
			dest = l
		}
		if r := q.rightChild(i); q.greater(r, dest) {
			dest = r
		}
		if dest == i {
			return
		}
		q.swapNodes(i, dest)
		i = dest
	}
}

// parent returns the parent index of i, or i itself for the root. Index
// helpers clamp to their own argument so that "no such node" never needs a
// separate representation.
func (q *Queue[T]) parent(i int) int {
	if i > 0 {
		return (i - 1) / 2
	}
	return i
}

func (q *Queue[T]) leftChild(i int) int {
	if c := 2*i + 1; c < q.size {
		return c
	}
	return i
}

func (q *Queue[T]) rightChild(i int) int {
	if c := 2*i + 2; c < q.size {
		return c
	}
	return i
}

// checkCapacity shrinks the backing arrays by one growth step once usage has
// fallen two full steps below capacity. The slack step is hysteresis:
// alternating inserts and pops near a boundary never resize back and forth.
// A shrink that would land below the initial capacity is skipped.
func (q *Queue[T]) checkCapacity() {
	twoSteps := 2 * q.growthStep
	if len(q.items) < twoSteps || q.size >= len(q.items)-twoSteps {
		return
	}
	if candidate := len(q.items) - q.growthStep; candidate >= q.initialCapacity {
		q.resize(candidate)
	}
}

// resize swaps in freshly allocated backing arrays of the given capacity,
// carrying the live prefix over in index order. Heap order is positional, so
// it survives the move untouched.
func (q *Queue[T]) resize(newCapacity int) {
	items := make([]T, newCapacity)
	priorities := make([]int, newCapacity)
	ids := make([]uint64, newCapacity)
	copy(items, q.items[:q.size])
	copy(priorities, q.priorities[:q.size])
	copy(ids, q.ids[:q.size])
	q.items = items
	q.priorities = priorities
	q.ids = ids
	q.resizes++
}

// consolidateIDs renumbers the live ids into the dense range [0, size),
// preserving the relative insertion order that ties are broken on, and
// resets nextID accordingly.
func (q *Queue[T]) consolidateIDs() {
	order := make([]int, q.size)
	for i := range order {
		order[i] = i
	}
	// Ids are unique, so this sort is deterministic.
	sort.Slice(order, func(a, b int) bool {
		return q.ids[order[a]] < q.ids[order[b]]
	})
	for rank, i := range order {
		q.ids[i] = uint64(rank)
	}
	q.nextID = uint64(q.size)
}
