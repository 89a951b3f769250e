package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"employee-portal/internal/middleware"
	"employee-portal/internal/models"
	"employee-portal/internal/store"
	"employee-portal/internal/workflow"
)

type EmployeeHandler struct {
	Store   store.RecordStore
	Service *workflow.Service
	Log     logrus.FieldLogger
}

func NewEmployeeHandler(st store.RecordStore, svc *workflow.Service, log logrus.FieldLogger) *EmployeeHandler {
	return &EmployeeHandler{Store: st, Service: svc, Log: log}
}

// POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.CreateEmployeeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		// Report the first rule in form order rather than every tag that failed.
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			if rule, msg := h.Service.Check(formValues(in)); rule != workflow.RuleNone {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg, "field": rule})
				return
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	out := h.Service.Create(c.Request.Context(), formValues(in))

	switch {
	case out.Rejected != workflow.RuleNone:
		c.JSON(http.StatusBadRequest, gin.H{"error": out.Notification.Message, "field": out.Rejected})
	case !out.Created:
		failed, _ := out.FailedStep()
		middleware.Logger(c, h.Log).WithField("step", failed.Step).Warn("create employee request failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    out.Notification.Message,
			"id":       out.ID,
			"step":     failed.Step,
			"orphaned": out.Orphaned(),
			"steps":    stepsJSON(out.Steps),
		})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"id":         out.ID,
			"name":       in.Name,
			"department": in.Department,
			"role":       in.Role,
			"email":      in.Email,
			"message":    out.Notification.Message,
		})
	}
}

func formValues(in models.CreateEmployeeDTO) workflow.FormValues {
	return workflow.FormValues{
		Name:            in.Name,
		Department:      in.Department,
		Role:            in.Role,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	}
}

// GET /api/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	list, err := h.Store.List(c.Request.Context())
	if err != nil {
		middleware.Logger(c, h.Log).WithError(err).Error("list employees")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// GET /api/employees/:id
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	e, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	if err != nil {
		middleware.Logger(c, h.Log).WithError(err).Error("get employee")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load employee"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func stepsJSON(steps []workflow.StepResult) []gin.H {
	out := make([]gin.H, 0, len(steps))
	for _, s := range steps {
		out = append(out, gin.H{"step": s.Step, "ok": s.OK()})
	}
	return out
}
