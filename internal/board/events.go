package board

// Queue is a per-frame command list. Producers Push; the single consumer
// Drains it at its slot in the frame order.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Drain returns the pending items and empties the queue.
func (q *Queue[T]) Drain() []T {
	out := q.items
	q.items = nil
	return out
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

// LevelSelected asks the loader to (re)build a level.
type LevelSelected struct {
	Level int
}

// SolveCase asks for the current wiring to be checked.
type SolveCase struct{}

// WaitForJunk is emitted by the loader; junk stringing consumes it on the
// next frame, once the level's tacks exist.
type WaitForJunk struct{}

// Events holds every board queue.
type Events struct {
	LevelSelected Queue[LevelSelected]
	SolveCase     Queue[SolveCase]
	WaitForJunk   Queue[WaitForJunk]
}
