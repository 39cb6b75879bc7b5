package lineup

type EventType int

const (
	EventLoaded EventType = iota
	EventMoved
	EventShuffled
	EventSaved
	EventDiscarded
)

// Event is sent to observers after the manager changes state. From and To
// are the swapped positions for EventMoved and -1 otherwise.
type Event struct {
	Type EventType
	From int
	To   int
}

// Observe registers fn to be called after every state change.
func (m *Manager) Observe(fn func(Event)) {
	if fn == nil {
		return
	}
	m.observers = append(m.observers, fn)
}

func (m *Manager) notify(t EventType) {
	m.emit(Event{Type: t, From: -1, To: -1})
}

func (m *Manager) notifyMove(from, to int) {
	m.emit(Event{Type: EventMoved, From: from, To: to})
}

func (m *Manager) emit(ev Event) {
	for _, fn := range m.observers {
		fn(ev)
	}
}
