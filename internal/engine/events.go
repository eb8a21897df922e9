package engine

import (
	"sync"

	"github.com/nfielder/habitd/internal/models"
)

// EventKind identifies one of the engine's change notification channels.
type EventKind string

const (
	EventProgressChanged EventKind = "progressChanged"
	EventCalendarChanged EventKind = "calendarChanged"
	EventHabitsChanged   EventKind = "habitsChanged"
)

// Event carries the updated snapshot for its kind: the rewritten records
// for progress changes, the appended days for calendar changes, and the
// habit list for habit changes.
type Event struct {
	Kind    EventKind
	Records []models.ProgressRecord
	Days    []string
	Habits  []models.Habit
}

// Subscription is the handle returned by Subscribe; Cancel removes the
// observer deterministically.
type Subscription struct {
	registry *registry
	kind     EventKind
	id       int
}

// Cancel unsubscribes the observer. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.registry != nil {
		s.registry.remove(s.kind, s.id)
		s.registry = nil
	}
}

// registry is an explicit publish/subscribe fan-out keyed by event kind.
// Observers are invoked synchronously, only after the originating mutation
// has been committed.
type registry struct {
	mu     sync.Mutex
	nextID int
	subs   map[EventKind]map[int]func(Event)
}

func newRegistry() *registry {
	return &registry{subs: make(map[EventKind]map[int]func(Event))}
}

func (r *registry) subscribe(kind EventKind, fn func(Event)) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	if r.subs[kind] == nil {
		r.subs[kind] = make(map[int]func(Event))
	}
	r.subs[kind][r.nextID] = fn
	return &Subscription{registry: r, kind: kind, id: r.nextID}
}

func (r *registry) remove(kind EventKind, id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs[kind], id)
}

func (r *registry) publish(ev Event) {
	r.mu.Lock()
	fns := make([]func(Event), 0, len(r.subs[ev.Kind]))
	for _, fn := range r.subs[ev.Kind] {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
