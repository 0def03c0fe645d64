// Package notifytest provides a notifier that records what it is sent.
package notifytest

import (
	"photobooth/internal/notify"
	"strings"
	"sync"
)

// Notice is one user-facing notification.
type Notice struct {
	Text     string
	Severity notify.Severity
}

type Event struct {
	Type string
	Data interface{}
}

// RecordingNotifier implements notify.NotifierInterface.
type RecordingNotifier struct {
	mu      sync.Mutex
	Notices []Notice
	Events  []Event
}

func (n *RecordingNotifier) Notify(text string, severity notify.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Notices = append(n.Notices, Notice{Text: text, Severity: severity})
}

func (n *RecordingNotifier) Publish(msgType string, data interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, Event{Type: msgType, Data: data})
}

// Has reports whether a notice with the severity contains substr.
func (n *RecordingNotifier) Has(severity notify.Severity, substr string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, x := range n.Notices {
		if x.Severity == severity && strings.Contains(x.Text, substr) {
			return true
		}
	}
	return false
}

func (n *RecordingNotifier) EventTypes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.Events))
	for i, e := range n.Events {
		out[i] = e.Type
	}
	return out
}
