// Package workflow implements employee creation: form rules, FP identifier
// assignment, the record write and the credential sign-up, plus the modal
// state machine that drives them from the page.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"employee-portal/internal/auth"
	"employee-portal/internal/models"
	"employee-portal/internal/notify"
	"employee-portal/internal/store"
	"employee-portal/internal/validation"
)

const IDPrefix = "FP"

var ErrIDUnavailable = errors.New("employee id unavailable")

const (
	MsgNameRequired       = "Name is required"
	MsgDepartmentRequired = "Please select a department"
	MsgRoleRequired       = "Please select a role"
	MsgInvalidEmail       = "Invalid email format"
	MsgInvalidPassword    = "Password must be 6-12 characters long, include uppercase and lowercase letters, and a number"
	MsgPasswordMismatch   = "Passwords do not match"
	MsgCreated            = "Employee added successfully!"
	MsgCreateFailed       = "Failed to add employee."
)

// Rule names the first form rule a submission violated.
type Rule string

const (
	RuleNone       Rule = ""
	RuleName       Rule = "name"
	RuleDepartment Rule = "department"
	RuleRole       Rule = "role"
	RuleEmail      Rule = "email"
	RulePassword   Rule = "password"
	RuleConfirm    Rule = "confirm_password"
)

// Step is one of the non-transactional backend calls made for a valid form.
type Step string

const (
	StepGenerateID          Step = "generate_id"
	StepWriteRecord         Step = "write_record"
	StepProvisionCredential Step = "provision_credential"
)

type StepResult struct {
	Step Step  `json:"step"`
	Err  error `json:"-"`
}

func (r StepResult) OK() bool { return r.Err == nil }

// FormValues are the six inputs of the create-employee form.
type FormValues struct {
	Name            string `json:"name" form:"name"`
	Department      string `json:"department" form:"department"`
	Role            string `json:"role" form:"role"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// Outcome describes what a submission did. Steps lists only the steps that
// ran, in order; the last one is the failing step when Created is false.
type Outcome struct {
	ID           string              `json:"id,omitempty"`
	Created      bool                `json:"created"`
	Rejected     Rule                `json:"rejected,omitempty"`
	Steps        []StepResult        `json:"steps"`
	Notification notify.Notification `json:"notification"`
}

// FailedStep returns the step that failed, if any.
func (o Outcome) FailedStep() (StepResult, bool) {
	for _, s := range o.Steps {
		if !s.OK() {
			return s, true
		}
	}
	return StepResult{}, false
}

// Orphaned reports whether the record was written but no credential exists for it.
func (o Outcome) Orphaned() bool {
	failed, ok := o.FailedStep()
	return ok && failed.Step == StepProvisionCredential
}

// Observer receives submission events, typically for metrics.
type Observer interface {
	Rejected(rule Rule)
	StepFailed(step Step)
	Completed(created bool, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) Rejected(Rule)                 {}
func (nopObserver) StepFailed(Step)               {}
func (nopObserver) Completed(bool, time.Duration) {}

type Options struct {
	Departments []string
	Roles       []string
	Log         logrus.FieldLogger
	Observer    Observer
}

// Service runs the create-employee policy without any UI state.
type Service struct {
	store       store.RecordStore
	creds       auth.CredentialProvider
	departments []string
	roles       []string
	log         logrus.FieldLogger
	observer    Observer
	now         func() time.Time
}

func NewService(st store.RecordStore, creds auth.CredentialProvider, opts Options) *Service {
	s := &Service{
		store:       st,
		creds:       creds,
		departments: opts.Departments,
		roles:       opts.Roles,
		log:         opts.Log,
		observer:    opts.Observer,
		now:         time.Now,
	}
	if s.departments == nil {
		s.departments = models.DefaultDepartments
	}
	if s.roles == nil {
		s.roles = models.DefaultRoles
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	return s
}

func (s *Service) Departments() []string { return s.departments }
func (s *Service) Roles() []string       { return s.roles }

// GenerateID derives the next identifier from the current record count:
// FP1 for an empty collection, otherwise FP<count+1>. Concurrent callers can
// receive the same identifier.
func (s *Service) GenerateID(ctx context.Context) (string, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIDUnavailable, err)
	}
	if n == 0 {
		return IDPrefix + "1", nil
	}
	return IDPrefix + strconv.Itoa(n+1), nil
}

// Check applies the form rules in order and returns the first violation.
func (s *Service) Check(form FormValues) (Rule, string) {
	switch {
	case strings.TrimSpace(form.Name) == "":
		return RuleName, MsgNameRequired
	case !validation.Contains(s.departments, form.Department):
		return RuleDepartment, MsgDepartmentRequired
	case !validation.Contains(s.roles, form.Role):
		return RuleRole, MsgRoleRequired
	case !validation.ValidateEmail(form.Email):
		return RuleEmail, MsgInvalidEmail
	case !validation.ValidatePassword(form.Password):
		return RulePassword, MsgInvalidPassword
	case form.Password != form.ConfirmPassword:
		return RuleConfirm, MsgPasswordMismatch
	}
	return RuleNone, ""
}

// Create validates form and, when it passes, assigns an identifier, writes the
// record and signs up the credential. The steps are not transactional: a
// sign-up failure leaves the written record in place.
func (s *Service) Create(ctx context.Context, form FormValues) Outcome {
	start := s.now()

	if rule, msg := s.Check(form); rule != RuleNone {
		s.observer.Rejected(rule)
		return Outcome{Rejected: rule, Steps: []StepResult{}, Notification: notify.Error(msg)}
	}

	out := Outcome{Steps: make([]StepResult, 0, 3)}
	fail := func(step Step, err error) Outcome {
		out.Steps = append(out.Steps, StepResult{Step: step, Err: err})
		out.Notification = notify.Error(MsgCreateFailed)
		s.observer.StepFailed(step)
		s.observer.Completed(false, s.now().Sub(start))
		s.log.WithError(err).WithFields(logrus.Fields{
			"step":  step,
			"id":    out.ID,
			"email": form.Email,
		}).Error("failed to add employee")
		return out
	}

	id, err := s.GenerateID(ctx)
	if err != nil {
		return fail(StepGenerateID, err)
	}
	out.ID = id
	out.Steps = append(out.Steps, StepResult{Step: StepGenerateID})

	record := models.Employee{
		ID:         id,
		Name:       form.Name,
		Department: form.Department,
		Role:       form.Role,
		Email:      form.Email,
	}
	if err := s.store.Write(ctx, id, record); err != nil {
		return fail(StepWriteRecord, err)
	}
	out.Steps = append(out.Steps, StepResult{Step: StepWriteRecord})

	if err := s.creds.SignUp(ctx, form.Email, form.Password); err != nil {
		o := fail(StepProvisionCredential, err)
		s.log.WithField("id", id).Warn("employee record has no matching credential")
		return o
	}
	out.Steps = append(out.Steps, StepResult{Step: StepProvisionCredential})

	out.Created = true
	out.Notification = notify.Success(MsgCreated)
	s.observer.Completed(true, s.now().Sub(start))
	s.log.WithFields(logrus.Fields{"id": id, "department": record.Department, "role": record.Role}).Info("employee added")
	return out
}
