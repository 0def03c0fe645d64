package notify

import (
	"fmt"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func ParseSeverity(s string) (Severity, error) {
	switch v := Severity(s); v {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return v, nil
	}
	return "", fmt.Errorf("unknown severity %q", s)
}

// Message types pushed to browser clients.
const (
	TypeNotification   = "notification"
	TypeSessionStarted = "session.started"
	TypeCountdown      = "session.countdown"
	TypeCaptured       = "session.captured"
	TypeCaptureFailed  = "session.capture_failed"
	TypeCompleted      = "session.completed"
	TypeAborted        = "session.aborted"
	TypeEditorChanged  = "editor.changed"
	TypeSettings       = "settings.changed"
)

type Message struct {
	Type      string      `json:"type"`
	Severity  Severity    `json:"severity,omitempty"`
	Text      string      `json:"text,omitempty"`
	DisplayMs int64       `json:"displayMs,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
