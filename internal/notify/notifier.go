package notify

import (
	"photobooth/internal/providers"
	"photobooth/internal/structures"
	"time"
)

const DefaultDisplayInterval = 3 * time.Second

// NotifierInterface is the notification sink of the booth.
type NotifierInterface interface {
	Notify(text string, severity Severity)
	Publish(msgType string, data interface{})
}

type Broadcaster interface {
	Broadcast(msg Message)
}

// Notifier stamps messages with the display interval and the current time
// before handing them to the hub.
type Notifier struct {
	hub      Broadcaster
	logger   providers.Logger
	interval time.Duration
	now      func() time.Time
}

func NewNotifier(conf *structures.Config, hub *Hub, logger providers.Logger) NotifierInterface {
	return newNotifier(hub, logger, conf.Notify.DisplayInterval)
}

func newNotifier(hub Broadcaster, logger providers.Logger, interval time.Duration) *Notifier {
	if interval <= 0 {
		interval = DefaultDisplayInterval
	}
	return &Notifier{hub: hub, logger: logger, interval: interval, now: time.Now}
}

func (n *Notifier) Notify(text string, severity Severity) {
	n.logger.Debugf(providers.TypeApp, "Notify [%s] %s", severity, text)
	n.hub.Broadcast(Message{
		Type:      TypeNotification,
		Severity:  severity,
		Text:      text,
		DisplayMs: n.interval.Milliseconds(),
		Timestamp: n.now(),
	})
}

func (n *Notifier) Publish(msgType string, data interface{}) {
	n.hub.Broadcast(Message{
		Type:      msgType,
		Data:      data,
		Timestamp: n.now(),
	})
}
