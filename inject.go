package playground

// InputSource supplies the events for one tick and the current pointer
// position.
type InputSource interface {
	// Drain returns every event that arrived since the last call.
	Drain() []Event
	// Pointer returns the current pointer position.
	Pointer() Vec2
}

// Queue is an InputSource fed by synthetic events. Each queued frame is
// delivered by one Drain call, so a press and its release injected with
// InjectClick arrive on consecutive ticks, as a real click would.
type Queue struct {
	frames  [][]Event
	pointer Vec2
	out     []Event
}

// Len returns the number of frames still waiting to be drained.
func (q *Queue) Len() int {
	return len(q.frames)
}

// Push queues events to be delivered together on a single tick.
func (q *Queue) Push(events ...Event) {
	q.frames = append(q.frames, append([]Event(nil), events...))
}

// Drain pops the next frame of events. It returns nil when nothing is queued.
func (q *Queue) Drain() []Event {
	if len(q.frames) == 0 {
		return nil
	}
	q.out = append(q.out[:0], q.frames[0]...)
	copy(q.frames, q.frames[1:])
	q.frames[len(q.frames)-1] = nil
	q.frames = q.frames[:len(q.frames)-1]
	for _, e := range q.out {
		if e.Type == EventPointerDown || e.Type == EventPointerMoved {
			q.pointer = e.Pos()
		}
	}
	return q.out
}

// Pointer returns the position of the last drained pointer event.
func (q *Queue) Pointer() Vec2 {
	return q.pointer
}

// InjectPress queues a pointer press at (x, y).
func (q *Queue) InjectPress(x, y float64) {
	q.Push(Event{Type: EventPointerDown, X: x, Y: y})
}

// InjectMove queues a pointer move to (x, y).
func (q *Queue) InjectMove(x, y float64) {
	q.Push(Event{Type: EventPointerMoved, X: x, Y: y})
}

// InjectRelease queues a pointer release. The drag ends where the pointer
// was on the previous tick.
func (q *Queue) InjectRelease() {
	q.Push(Event{Type: EventPointerUp})
}

// InjectClick queues a press at (x, y) followed by a release. Consumes two
// ticks.
func (q *Queue) InjectClick(x, y float64) {
	q.InjectPress(x, y)
	q.InjectRelease()
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), frames-2
// evenly spaced moves ending at (toX, toY), and a release. The sequence
// consumes `frames` ticks. Minimum frames is 2 (press + release), in which
// case the card is not moved.
func (q *Queue) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		q.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	q.InjectRelease()
}

// InjectWait queues n empty ticks.
func (q *Queue) InjectWait(n int) {
	for i := 0; i < n; i++ {
		q.Push()
	}
}

// InjectQuit queues a quit event.
func (q *Queue) InjectQuit() {
	q.Push(Event{Type: EventQuit})
}
