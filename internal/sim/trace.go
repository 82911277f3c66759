package sim

// Trace keeps a bounded trail of logo center points. Once full, the oldest
// point is dropped for each new one, so an overlay left running for hours
// doesn't grow without bound.
type Trace struct {
	buf  []Vec2
	next int
	full bool
}

// NewTrace returns a trace holding at most capacity points.
func NewTrace(capacity int) *Trace {
	if capacity < 2 {
		capacity = 2
	}
	return &Trace{buf: make([]Vec2, capacity)}
}

// Append records a point, evicting the oldest when at capacity.
func (t *Trace) Append(p Vec2) {
	t.buf[t.next] = p
	t.next++
	if t.next >= len(t.buf) {
		t.next = 0
		t.full = true
	}
}

// Len returns the number of recorded points.
func (t *Trace) Len() int {
	if t.full {
		return len(t.buf)
	}
	return t.next
}

// Points returns the recorded points in chronological order.
func (t *Trace) Points() []Vec2 {
	out := make([]Vec2, 0, t.Len())
	if t.full {
		out = append(out, t.buf[t.next:]...)
	}
	out = append(out, t.buf[:t.next]...)
	return out
}
