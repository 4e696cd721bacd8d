package frontend

import (
	"iter"
	"time"

	"go.uber.org/zap"
)

type (
	// Alert is a transient message shown to the user, e.g. a warning that the
	// preferences file could not be read. Alerts with the same non-empty Name
	// replace each other instead of piling up.
	Alert struct {
		Name     string
		Priority AlertPriority
		Message  string
		Duration time.Duration
	}

	AlertPriority int

	Alerts Model
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const defaultAlertDuration = 3 * time.Second

func (p AlertPriority) String() string {
	switch p {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Alerts returns the Alerts view of the model, containing the queue of alerts
// shown to the user.
func (m *Model) Alerts() *Alerts { return (*Alerts)(m) }

// Iterate yields the current alerts, oldest first.
func (m *Alerts) Iterate() iter.Seq[Alert] {
	return func(yield func(Alert) bool) {
		for _, a := range m.alerts {
			if !yield(a) {
				return
			}
		}
	}
}

// Count returns the number of live alerts.
func (m *Alerts) Count() int { return len(m.alerts) }

// Update ages all alerts by d and drops the expired ones. Returns true if any
// alert is still live, i.e. the UI should redraw again later.
func (m *Alerts) Update(d time.Duration) (live bool) {
	kept := m.alerts[:0]
	for _, a := range m.alerts {
		a.Duration -= d
		if a.Duration > 0 {
			kept = append(kept, a)
		}
	}
	m.alerts = kept
	return len(m.alerts) > 0
}

func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{Name: name, Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddAlert(a Alert) {
	fields := []zap.Field{zap.String("name", a.Name), zap.Stringer("priority", a.Priority)}
	switch a.Priority {
	case Error:
		m.log.Error(a.Message, fields...)
	case Warning:
		m.log.Warn(a.Message, fields...)
	default:
		m.log.Debug(a.Message, fields...)
	}
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
}
