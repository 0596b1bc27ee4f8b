package studio

type (
	// Action describes a user action that can be performed on the model,
	// initiated by calling Do(). Action advertises whether it is enabled,
	// so a UI can gray out the corresponding control. The underlying Doer
	// can optionally implement Enabler; if it does not, the action is
	// always allowed.
	Action struct {
		doer Doer
	}

	Doer interface {
		Do()
	}

	Enabler interface {
		Enabled() bool
	}
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true
	}
	return e.Enabled()
}

// modelUndo
type modelUndo Model

func (m *Model) Undo() Action     { return MakeAction((*modelUndo)(m)) }
func (m *modelUndo) Enabled() bool { return len(m.undoStack) > 0 }
func (m *modelUndo) Do() {
	mm := (*Model)(m)
	m.redoStack = append(m.redoStack, mm.copyEvents())
	if len(m.redoStack) > maxUndo {
		m.redoStack = m.redoStack[len(m.redoStack)-maxUndo:]
	}
	m.events = m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.prevUndoKind = ""
	mm.notify()
}

// modelRedo
type modelRedo Model

func (m *Model) Redo() Action     { return MakeAction((*modelRedo)(m)) }
func (m *modelRedo) Enabled() bool { return len(m.redoStack) > 0 }
func (m *modelRedo) Do() {
	mm := (*Model)(m)
	m.undoStack = append(m.undoStack, mm.copyEvents())
	if len(m.undoStack) > maxUndo {
		m.undoStack = m.undoStack[len(m.undoStack)-maxUndo:]
	}
	m.events = m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.prevUndoKind = ""
	mm.notify()
}

// clearAlerts
type clearAlerts Model

func (m *Model) ClearAlerts() Action  { return MakeAction((*clearAlerts)(m)) }
func (m *clearAlerts) Enabled() bool  { return len(m.alerts) > 0 }
func (m *clearAlerts) Do()            { (*Model)(m).Alerts().Clear() }
