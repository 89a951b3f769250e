package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"employee-portal/internal/layout"
	"employee-portal/internal/middleware"
	"employee-portal/internal/models"
	"employee-portal/internal/notify"
	"employee-portal/internal/session"
	"employee-portal/internal/store"
	"employee-portal/internal/workflow"
)

// UIHandler serves the employees page and the actions behind its shell and modal.
type UIHandler struct {
	Store   store.RecordStore
	Service *workflow.Service
	Log     logrus.FieldLogger
}

func NewUIHandler(st store.RecordStore, svc *workflow.Service, log logrus.FieldLogger) *UIHandler {
	return &UIHandler{Store: st, Service: svc, Log: log}
}

type formView struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Email      string `json:"email"`
}

type pageData struct {
	Layout      layout.View
	ModalOpen   bool
	Form        formView
	Departments []string
	Roles       []string
	Toasts      []notify.Notification
	Employees   []models.Employee
}

type stateResponse struct {
	Layout  layout.View           `json:"layout"`
	Modal   workflow.State        `json:"modal"`
	Form    formView              `json:"form"`
	Toasts  []notify.Notification `json:"toasts"`
	Outcome *outcomeView          `json:"outcome,omitempty"`
}

type outcomeView struct {
	ID       string        `json:"id,omitempty"`
	Created  bool          `json:"created"`
	Rejected workflow.Rule `json:"rejected,omitempty"`
	Orphaned bool          `json:"orphaned"`
	Steps    []gin.H       `json:"steps"`
}

// Passwords are kept in the session but never sent back to the browser.
func visibleForm(f workflow.FormValues) formView {
	return formView{Name: f.Name, Department: f.Department, Role: f.Role, Email: f.Email}
}

// Toasts stay queued until the page renders them.
func snapshot(s *session.Session) stateResponse {
	return stateResponse{
		Layout: s.Shell.View(),
		Modal:  s.Workflow.State(),
		Form:   visibleForm(s.Workflow.Form()),
		Toasts: s.Toasts.Peek(),
	}
}

// GET /
func (h *UIHandler) Page(c *gin.Context) {
	s := middleware.CurrentSession(c)

	employees, err := h.Store.List(c.Request.Context())
	if err != nil {
		middleware.Logger(c, h.Log).WithError(err).Error("list employees for page")
		employees = nil
	}

	c.HTML(http.StatusOK, "page.tmpl", pageData{
		Layout:      s.Shell.View(),
		ModalOpen:   s.Workflow.State() != workflow.StateClosed,
		Form:        visibleForm(s.Workflow.Form()),
		Departments: h.Service.Departments(),
		Roles:       h.Service.Roles(),
		Toasts:      s.Toasts.Drain(),
		Employees:   employees,
	})
}

// GET /ui/state
func (h *UIHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, snapshot(middleware.CurrentSession(c)))
}

// POST /ui/navbar/toggle
func (h *UIHandler) ToggleNavbar(c *gin.Context) {
	s := middleware.CurrentSession(c)
	s.Shell.ToggleNavbar()
	c.JSON(http.StatusOK, snapshot(s))
}

type resizeDTO struct {
	ViewportHeight *int `json:"viewport_height" binding:"required,min=0"`
	ContentHeight  *int `json:"content_height" binding:"required,min=0"`
}

// POST /ui/layout/resize
func (h *UIHandler) Resize(c *gin.Context) {
	var in resizeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	s := middleware.CurrentSession(c)
	s.Viewport.Resize(*in.ViewportHeight, *in.ContentHeight)
	c.JSON(http.StatusOK, snapshot(s))
}

// POST /ui/modal/open
func (h *UIHandler) OpenModal(c *gin.Context) {
	s := middleware.CurrentSession(c)
	s.Workflow.OpenModal()
	c.JSON(http.StatusOK, snapshot(s))
}

// POST /ui/modal/close
func (h *UIHandler) CloseModal(c *gin.Context) {
	s := middleware.CurrentSession(c)
	s.Workflow.CloseModal()
	c.JSON(http.StatusOK, snapshot(s))
}

type fieldDTO struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// POST /ui/form
func (h *UIHandler) SetField(c *gin.Context) {
	var in fieldDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	s := middleware.CurrentSession(c)
	if err := s.Workflow.SetField(in.Field, in.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot(s))
}

// POST /ui/employees
func (h *UIHandler) Submit(c *gin.Context) {
	var form workflow.FormValues
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	s := middleware.CurrentSession(c)
	out, err := s.Workflow.HandleSubmit(c.Request.Context(), form)
	switch {
	case errors.Is(err, workflow.ErrModalClosed), errors.Is(err, workflow.ErrSubmitInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := snapshot(s)
	resp.Outcome = &outcomeView{
		ID:       out.ID,
		Created:  out.Created,
		Rejected: out.Rejected,
		Orphaned: out.Orphaned(),
		Steps:    stepsJSON(out.Steps),
	}
	c.JSON(http.StatusOK, resp)
}
