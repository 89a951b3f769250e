// Package notify carries toast notifications from handlers to the page.
package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Options mirror the toast display settings used by the page.
type Options struct {
	Position        string `json:"position"`
	AutoCloseMillis int    `json:"autoClose"`
	HideProgressBar bool   `json:"hideProgressBar"`
	CloseOnClick    bool   `json:"closeOnClick"`
	PauseOnHover    bool   `json:"pauseOnHover"`
	Draggable       bool   `json:"draggable"`
	Theme           string `json:"theme"`
}

func DefaultOptions() Options {
	return Options{
		Position:        "top-center",
		AutoCloseMillis: 5000,
		HideProgressBar: false,
		CloseOnClick:    true,
		PauseOnHover:    true,
		Draggable:       true,
		Theme:           "colored",
	}
}

type Notification struct {
	Kind    Kind    `json:"kind"`
	Message string  `json:"message"`
	Options Options `json:"options"`
}

func Success(msg string) Notification {
	return Notification{Kind: KindSuccess, Message: msg, Options: DefaultOptions()}
}

func Error(msg string) Notification {
	return Notification{Kind: KindError, Message: msg, Options: DefaultOptions()}
}

// Notifier is fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}

// Queue buffers notifications until the next response drains them.
type Queue struct {
	mu    sync.Mutex
	items []Notification
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Notify(n Notification) {
	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()
}

func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

// Peek returns the queued notifications without removing them.
func (q *Queue) Peek() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// LogNotifier writes notifications to the log.
type LogNotifier struct {
	Log logrus.FieldLogger
}

func (l LogNotifier) Notify(n Notification) {
	entry := l.Log.WithField("toast_kind", n.Kind)
	if n.Kind == KindError {
		entry.Warn(n.Message)
		return
	}
	entry.Info(n.Message)
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, x := range m {
		x.Notify(n)
	}
}
