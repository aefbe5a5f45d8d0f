package bubble

// Queue is the ordered sequence of upcoming shot kinds. The head is the
// currently loaded shot. Fill keeps the length at two or more by appending
// three freshly rolled entries whenever it drops below two.
type Queue struct {
	kinds []Kind
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{kinds: make([]Kind, 0, 8)}
}

// Fill tops the queue up using the given roll function.
func (q *Queue) Fill(roll func() Kind) {
	for len(q.kinds) < 2 {
		for i := 0; i < 3; i++ {
			q.kinds = append(q.kinds, roll())
		}
	}
}

// Pop removes and returns the head. Callers must Fill first.
func (q *Queue) Pop() Kind {
	if len(q.kinds) == 0 {
		return KindNormal
	}
	k := q.kinds[0]
	q.kinds = q.kinds[1:]
	return k
}

// Upcoming returns a copy of the queued kinds, head first.
func (q *Queue) Upcoming() []Kind {
	out := make([]Kind, len(q.kinds))
	copy(out, q.kinds)
	return out
}

// Len returns the queued entry count.
func (q *Queue) Len() int {
	return len(q.kinds)
}
