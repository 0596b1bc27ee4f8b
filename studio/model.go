// Package studio implements the mutable model layer of kaiku: the
// middleware event model, the DAW timeline model, and the Sync bridge
// that keeps the two consistent without a shared source of truth.
package studio

import (
	"slices"

	"github.com/google/uuid"
	"github.com/mkantola/kaiku"
)

type (
	// Model owns the set of composite audio events. The authoring UI
	// mutates it only through the methods here; every mutation runs inside
	// the scoped-change idiom (defer m.change(...)()) so that undo state is
	// saved before the mutation and subscribers are notified exactly once
	// per outermost change, on every exit path.
	//
	// Go has no immutable slices, so Events() hands out the backing slice
	// and trusts callers not to write to it; all writes belong here.
	Model struct {
		events []kaiku.Event

		subs []*Subscription

		changeLevel  int
		changeCancel bool

		undoStack       [][]kaiku.Event
		redoStack       [][]kaiku.Event
		prevUndoKind    string
		undoSkipCounter int

		alerts []Alert
	}

	// Subscription is one registered change callback. Closing it detaches
	// the callback; closing twice is a no-op.
	Subscription struct {
		m  *Model
		fn func()
	}

	// ChangeSeverity controls how eagerly consecutive changes of the same
	// kind are coalesced into a single undo step.
	ChangeSeverity int
)

const (
	MinorChange ChangeSeverity = iota
	MajorChange
)

const maxUndo = 64

// minorChangeCoalesce is how many consecutive minor changes of the same
// kind share one undo entry (e.g. dragging a volume slider).
const minorChangeCoalesce = 10

func NewModel() *Model {
	return &Model{}
}

// Subscribe registers fn to be called synchronously, on the caller's
// goroutine, after every completed model change.
func (m *Model) Subscribe(fn func()) *Subscription {
	s := &Subscription{m: m, fn: fn}
	m.subs = append(m.subs, s)
	return s
}

func (s *Subscription) Close() {
	if s.m == nil {
		return
	}
	s.m.subs = slices.DeleteFunc(s.m.subs, func(x *Subscription) bool { return x == s })
	s.m = nil
}

// change begins a model mutation of the given kind and returns the release
// closure that must be deferred. On release of the outermost change, all
// subscribers are notified, unless the mutation set changeCancel to back
// out (in which case the saved undo state is restored instead).
func (m *Model) change(kind string, severity ChangeSeverity) func() {
	if m.changeLevel == 0 {
		m.saveUndo(kind, severity)
		m.changeCancel = false
	}
	m.changeLevel++
	return func() {
		m.changeLevel--
		if m.changeLevel > 0 {
			return
		}
		if m.changeCancel {
			m.events = m.undoStack[len(m.undoStack)-1]
			m.undoStack = m.undoStack[:len(m.undoStack)-1]
			m.prevUndoKind = ""
			return
		}
		m.notify()
	}
}

func (m *Model) notify() {
	for _, s := range slices.Clone(m.subs) {
		s.fn()
	}
}

func (m *Model) saveUndo(kind string, severity ChangeSeverity) {
	if severity == MinorChange && m.prevUndoKind == kind && m.undoSkipCounter < minorChangeCoalesce {
		m.undoSkipCounter++
		return
	}
	m.prevUndoKind = kind
	m.undoSkipCounter = 0
	m.undoStack = append(m.undoStack, m.copyEvents())
	m.redoStack = m.redoStack[:0]
	if len(m.undoStack) > maxUndo {
		m.undoStack = m.undoStack[len(m.undoStack)-maxUndo:]
	}
}

func (m *Model) copyEvents() []kaiku.Event {
	ret := make([]kaiku.Event, len(m.events))
	for i, e := range m.events {
		ret[i] = e.Copy()
	}
	return ret
}

// Events returns the events in authoring order. The returned slice is the
// model's backing store; treat it as read-only.
func (m *Model) Events() []kaiku.Event {
	return m.events
}

func (m *Model) eventIndex(id string) int {
	return slices.IndexFunc(m.events, func(e kaiku.Event) bool { return e.ID == id })
}

func (m *Model) Event(id string) (kaiku.Event, bool) {
	if i := m.eventIndex(id); i >= 0 {
		return m.events[i], true
	}
	return kaiku.Event{}, false
}

func (m *Model) Layer(eventID, layerID string) (kaiku.Layer, bool) {
	i := m.eventIndex(eventID)
	if i < 0 {
		return kaiku.Layer{}, false
	}
	for _, l := range m.events[i].Layers {
		if l.ID == layerID {
			return l, true
		}
	}
	return kaiku.Layer{}, false
}

// SetEvents replaces the whole event set, e.g. when a scenario file is
// loaded. Events and layers without ids get fresh ones assigned.
func (m *Model) SetEvents(events []kaiku.Event) {
	defer m.change("SetEvents", MajorChange)()
	m.events = make([]kaiku.Event, len(events))
	for i, e := range events {
		m.events[i] = e.Copy()
		m.assignIDs(&m.events[i])
	}
}

// AddEvent appends a new empty event and returns it.
func (m *Model) AddEvent(name string) kaiku.Event {
	defer m.change("AddEvent", MajorChange)()
	e := kaiku.Event{ID: uuid.New().String(), Name: name, MasterVolume: 1}
	m.events = append(m.events, e)
	return e
}

// AppendEvent appends a fully formed event, e.g. one step of a scenario.
// Valid ids are kept so scripted edits can address the event later;
// missing ones are assigned.
func (m *Model) AppendEvent(e kaiku.Event) kaiku.Event {
	defer m.change("AppendEvent", MajorChange)()
	e = e.Copy()
	m.assignIDs(&e)
	m.events = append(m.events, e)
	return e
}

func (m *Model) DeleteEvent(id string) {
	i := m.eventIndex(id)
	if i < 0 {
		return
	}
	defer m.change("DeleteEvent", MajorChange)()
	m.events = slices.Delete(m.events, i, i+1)
}

// SetEvent replaces the event with the same id wholesale.
func (m *Model) SetEvent(e kaiku.Event) {
	i := m.eventIndex(e.ID)
	if i < 0 {
		return
	}
	defer m.change("SetEvent", MajorChange)()
	m.events[i] = e.Copy()
	m.assignIDs(&m.events[i])
}

// AddLayer appends a layer to the event. A missing layer id gets a fresh
// uuid; ids containing the synthesized-id separator are replaced, since
// they would make the bridge's track ids ambiguous.
func (m *Model) AddLayer(eventID string, l kaiku.Layer) (kaiku.Layer, bool) {
	i := m.eventIndex(eventID)
	if i < 0 {
		return kaiku.Layer{}, false
	}
	defer m.change("AddLayer", MajorChange)()
	l = l.Copy()
	if !validObjectID(l.ID) {
		if l.ID != "" {
			m.Alerts().Add("layer id contained the reserved separator and was regenerated", Warning)
		}
		l.ID = uuid.New().String()
	}
	m.events[i].Layers = append(m.events[i].Layers, l)
	return l, true
}

func (m *Model) DeleteLayer(eventID, layerID string) {
	i := m.eventIndex(eventID)
	if i < 0 {
		return
	}
	j := slices.IndexFunc(m.events[i].Layers, func(l kaiku.Layer) bool { return l.ID == layerID })
	if j < 0 {
		return
	}
	defer m.change("DeleteLayer", MajorChange)()
	m.events[i].Layers = slices.Delete(m.events[i].Layers, j, j+1)
}

func (m *Model) assignIDs(e *kaiku.Event) {
	if !validObjectID(e.ID) {
		e.ID = uuid.New().String()
	}
	for i := range e.Layers {
		if !validObjectID(e.Layers[i].ID) {
			e.Layers[i].ID = uuid.New().String()
		}
	}
}

// setLayer applies fn to the addressed layer. A missing event or layer is
// a silent no-op: the reverse side of the bridge may race the user
// deleting the object it is writing to.
func (m *Model) setLayer(kind, eventID, layerID string, fn func(*kaiku.Layer)) {
	i := m.eventIndex(eventID)
	if i < 0 {
		return
	}
	for j := range m.events[i].Layers {
		if m.events[i].Layers[j].ID != layerID {
			continue
		}
		defer m.change(kind, MinorChange)()
		fn(&m.events[i].Layers[j])
		return
	}
}

func (m *Model) SetMasterVolume(eventID string, volume float64) {
	i := m.eventIndex(eventID)
	if i < 0 {
		return
	}
	defer m.change("SetMasterVolume", MinorChange)()
	m.events[i].MasterVolume = volume
}

// SetAllLayersMuted mirrors a folder-track mute: the event has no mute
// flag of its own, so the write fans out to every layer.
func (m *Model) SetAllLayersMuted(eventID string, muted bool) {
	i := m.eventIndex(eventID)
	if i < 0 {
		return
	}
	defer m.change("SetAllLayersMuted", MinorChange)()
	for j := range m.events[i].Layers {
		m.events[i].Layers[j].Muted = muted
	}
}

func (m *Model) SetLayerVolume(eventID, layerID string, v float64) {
	m.setLayer("SetLayerVolume", eventID, layerID, func(l *kaiku.Layer) { l.Volume = v })
}

func (m *Model) SetLayerPan(eventID, layerID string, v float64) {
	m.setLayer("SetLayerPan", eventID, layerID, func(l *kaiku.Layer) { l.Pan = v })
}

func (m *Model) SetLayerMuted(eventID, layerID string, v bool) {
	m.setLayer("SetLayerMuted", eventID, layerID, func(l *kaiku.Layer) { l.Muted = v })
}

func (m *Model) SetLayerSolo(eventID, layerID string, v bool) {
	m.setLayer("SetLayerSolo", eventID, layerID, func(l *kaiku.Layer) { l.Solo = v })
}

func (m *Model) SetLayerLoop(eventID, layerID string, v bool) {
	m.setLayer("SetLayerLoop", eventID, layerID, func(l *kaiku.Layer) { l.Loop = v })
}

func (m *Model) SetLayerBus(eventID, layerID string, busID int) {
	m.setLayer("SetLayerBus", eventID, layerID, func(l *kaiku.Layer) { l.Bus = &busID })
}

func (m *Model) SetLayerOffsetMs(eventID, layerID string, v float64) {
	m.setLayer("SetLayerOffsetMs", eventID, layerID, func(l *kaiku.Layer) { l.OffsetMs = v })
}

func (m *Model) SetLayerFadeInMs(eventID, layerID string, v float64) {
	m.setLayer("SetLayerFadeInMs", eventID, layerID, func(l *kaiku.Layer) { l.FadeInMs = v })
}

func (m *Model) SetLayerFadeOutMs(eventID, layerID string, v float64) {
	m.setLayer("SetLayerFadeOutMs", eventID, layerID, func(l *kaiku.Layer) { l.FadeOutMs = v })
}

func (m *Model) SetLayerTrimStartMs(eventID, layerID string, v float64) {
	m.setLayer("SetLayerTrimStartMs", eventID, layerID, func(l *kaiku.Layer) { l.TrimStartMs = v })
}

func (m *Model) SetLayerDuration(eventID, layerID string, seconds float64) {
	m.setLayer("SetLayerDuration", eventID, layerID, func(l *kaiku.Layer) { l.DurationSeconds = &seconds })
}
