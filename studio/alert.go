package studio

type (
	// Alert is a non-fatal, user-facing message. Nothing in the model
	// layer is allowed to be a fatal error: failures degrade to a retry or
	// a no-op, and the user is told through an alert instead.
	Alert struct {
		Message  string
		Priority AlertPriority
	}

	AlertPriority int

	// Alerts is the alert view of the model.
	Alerts Model
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

func (m *Model) Alerts() *Alerts { return (*Alerts)(m) }

// Add appends an alert. Adding does not count as a model change, so it
// never triggers the bridge.
func (a *Alerts) Add(message string, priority AlertPriority) {
	a.alerts = append(a.alerts, Alert{Message: message, Priority: priority})
}

func (a *Alerts) Count() int { return len(a.alerts) }

// Iterate is an iter.Seq over the collected alerts, usable with range.
func (a *Alerts) Iterate(yield func(Alert) bool) {
	for _, alert := range a.alerts {
		if !yield(alert) {
			return
		}
	}
}

func (a *Alerts) Clear() {
	a.alerts = a.alerts[:0]
}
