// Package notify delivers user visible notifications. Delivery is fire and
// forget: Notify never fails and returns nothing.
package notify

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
)

const DefaultDuration = 3 * time.Second

type Notification struct {
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Type     Type          `json:"type"`
	Duration time.Duration `json:"duration,omitempty"`
}

type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to a logrus logger. Error notifications
// are logged at error level, warnings at warn, the rest at info.
type LogNotifier struct {
	Logger *logrus.Logger
}

func NewLogNotifier(l *logrus.Logger) *LogNotifier {
	return &LogNotifier{Logger: l}
}

func (n *LogNotifier) Notify(msg Notification) {
	if msg.Duration == 0 {
		msg.Duration = DefaultDuration
	}
	entry := n.Logger.WithFields(logrus.Fields{
		"module":   "notify",
		"type":     string(msg.Type),
		"title":    msg.Title,
		"duration": msg.Duration.String(),
	})
	switch msg.Type {
	case TypeError:
		entry.Error(msg.Message)
	case TypeWarning:
		entry.Warn(msg.Message)
	default:
		entry.Info(msg.Message)
	}
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
	next Notifier
}

// NewRecorder returns a Recorder that also forwards to next when non-nil.
func NewRecorder(next Notifier) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Notify(n Notification) {
	if n.Duration == 0 {
		n.Duration = DefaultDuration
	}
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()
	if r.next != nil {
		r.next.Notify(n)
	}
}

func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}
