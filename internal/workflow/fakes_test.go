package workflow

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus/hooks/test"

	"employee-portal/internal/models"
	"employee-portal/internal/notify"
)

type fakeStore struct {
	mu       sync.Mutex
	count    int
	countErr error
	writeErr error
	writes   []models.Employee
	block    chan struct{}
}

func (f *fakeStore) Count(ctx context.Context) (int, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count, f.countErr
}

func (f *fakeStore) Write(ctx context.Context, id string, e models.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	e.ID = id
	f.writes = append(f.writes, e)
	f.count++
	return nil
}

func (f *fakeStore) List(ctx context.Context) ([]models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Employee(nil), f.writes...), nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (models.Employee, error) {
	return models.Employee{}, nil
}

type signUpCall struct {
	email, password string
}

type fakeCreds struct {
	mu    sync.Mutex
	err   error
	calls []signUpCall
}

func (f *fakeCreds) SignUp(ctx context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, signUpCall{email, password})
	return f.err
}

type recordingObserver struct {
	rejected  []Rule
	failed    []Step
	completed []bool
}

func (r *recordingObserver) Rejected(rule Rule)   { r.rejected = append(r.rejected, rule) }
func (r *recordingObserver) StepFailed(step Step) { r.failed = append(r.failed, step) }
func (r *recordingObserver) Completed(created bool, _ time.Duration) {
	r.completed = append(r.completed, created)
}

func validForm() FormValues {
	return FormValues{
		Name:            "Ada Lovelace",
		Department:      "Engineering",
		Role:            "Manager",
		Email:           "ada@example.com",
		Password:        "Abcde1",
		ConfirmPassword: "Abcde1",
	}
}

type harness struct {
	store    *fakeStore
	creds    *fakeCreds
	queue    *notify.Queue
	observer *recordingObserver
	svc      *Service
	wf       *Workflow
}

func newHarness() *harness {
	h := &harness{
		store:    &fakeStore{},
		creds:    &fakeCreds{},
		queue:    notify.NewQueue(),
		observer: &recordingObserver{},
	}
	logger, _ := test.NewNullLogger()
	h.svc = NewService(h.store, h.creds, Options{Log: logger, Observer: h.observer})
	h.wf = New(h.svc, h.queue)
	return h
}
