package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"employee-portal/internal/notify"
)

var (
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrModalClosed      = errors.New("create employee modal is closed")
	ErrUnknownField     = errors.New("unknown form field")
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Workflow is the create-employee modal: its visibility, its field values and
// the submission in flight. Field values survive closing the modal.
type Workflow struct {
	svc      *Service
	notifier notify.Notifier

	mu             sync.Mutex
	state          State
	form           FormValues
	closeRequested bool
}

func New(svc *Service, notifier notify.Notifier) *Workflow {
	return &Workflow{svc: svc, notifier: notifier, state: StateClosed}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Workflow) Form() FormValues {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

func (w *Workflow) OpenModal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateClosed {
		w.state = StateOpen
	}
	w.closeRequested = false
}

// CloseModal hides the modal. A close during a submission takes effect when
// the submission settles.
func (w *Workflow) CloseModal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case StateOpen:
		w.state = StateClosed
	case StateSubmitting:
		w.closeRequested = true
	}
}

// SetField updates one input. Names follow the form's input names.
func (w *Workflow) SetField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch name {
	case "name":
		w.form.Name = value
	case "department":
		w.form.Department = value
	case "role":
		w.form.Role = value
	case "email":
		w.form.Email = value
	case "password":
		w.form.Password = value
	case "confirm_password", "confirmPassword":
		w.form.ConfirmPassword = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Submit runs HandleSubmit with the current field values.
func (w *Workflow) Submit(ctx context.Context) (Outcome, error) {
	return w.HandleSubmit(ctx, w.Form())
}

// HandleSubmit stores form as the current field values and runs the create
// policy. Rule violations and backend failures leave the modal open; success
// closes it. The outcome's notification is also sent to the notifier.
func (w *Workflow) HandleSubmit(ctx context.Context, form FormValues) (Outcome, error) {
	w.mu.Lock()
	switch w.state {
	case StateClosed:
		w.mu.Unlock()
		return Outcome{}, ErrModalClosed
	case StateSubmitting:
		w.mu.Unlock()
		return Outcome{}, ErrSubmitInProgress
	}
	w.form = form
	w.state = StateSubmitting
	w.closeRequested = false
	w.mu.Unlock()

	out := w.svc.Create(ctx, form)

	w.mu.Lock()
	if out.Created || w.closeRequested {
		w.state = StateClosed
	} else {
		w.state = StateOpen
	}
	w.closeRequested = false
	w.mu.Unlock()

	w.notifier.Notify(out.Notification)
	return out, nil
}
