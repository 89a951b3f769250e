// Package session keeps per-browser page state: the shell, the create-employee
// workflow and pending toasts.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"employee-portal/internal/layout"
	"employee-portal/internal/notify"
	"employee-portal/internal/workflow"
)

const CookieName = "fp_session"

type Session struct {
	ID       string
	Shell    *layout.Shell
	Viewport *layout.ReportedViewport
	Toasts   *notify.Queue
	Workflow *workflow.Workflow

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type Registry struct {
	svc *workflow.Service
	log logrus.FieldLogger
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(svc *workflow.Service, log logrus.FieldLogger) *Registry {
	return &Registry{
		svc:      svc,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the live session for id and marks it as seen.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if ok {
		// Touched under the registry lock so Sweep cannot evict it in between.
		s.touch(r.now())
	}
	return s, ok
}

// Create starts a session with a mounted shell and a closed modal.
func (r *Registry) Create() *Session {
	toasts := notify.NewQueue()
	s := &Session{
		ID:       uuid.NewString(),
		Shell:    layout.NewShell(),
		Viewport: layout.NewReportedViewport(),
		Toasts:   toasts,
		Workflow: workflow.New(r.svc, notify.Multi{toasts, notify.LogNotifier{Log: r.log}}),
	}
	s.Shell.Mount(s.Viewport, s.Viewport)
	s.touch(r.now())

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and unmounts their shells.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)
	var stale []*Session

	r.mu.Lock()
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.Shell.Unmount()
	}
	if len(stale) > 0 {
		r.log.WithField("count", len(stale)).Debug("swept idle sessions")
	}
	return len(stale)
}

// RunSweeper sweeps every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(maxIdle)
		}
	}
}
