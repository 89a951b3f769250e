package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"employee-portal/internal/auth"
	"employee-portal/internal/handlers"
	"employee-portal/internal/metrics"
	"employee-portal/internal/middleware"
	"employee-portal/internal/models"
	"employee-portal/internal/session"
	"employee-portal/internal/store"
	"employee-portal/internal/workflow"
)

type Deps struct {
	Store        store.RecordStore
	Service      *workflow.Service
	Sessions     *session.Registry
	Verifier     auth.Verifier // nil when login is handled by the remote provider
	Tokens       *auth.TokenIssuer
	Metrics      *metrics.Metrics
	Log          logrus.FieldLogger
	SecureCookie bool
}

func Setup(r *gin.Engine, d Deps) {
	eh := handlers.NewEmployeeHandler(d.Store, d.Service, d.Log)
	uh := handlers.NewUIHandler(d.Store, d.Service, d.Log)
	am := middleware.NewAuthMiddleware(d.Tokens)

	// health
	var pinger handlers.Pinger
	if p, ok := d.Store.(handlers.Pinger); ok {
		pinger = p
	}
	r.GET("/health", handlers.Health(pinger))
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	page := r.Group("/", middleware.Session(d.Sessions, d.SecureCookie))
	{
		page.GET("/", uh.Page)
		page.GET("/ui/state", uh.State)
		page.POST("/ui/navbar/toggle", uh.ToggleNavbar)
		page.POST("/ui/layout/resize", uh.Resize)
		page.POST("/ui/modal/open", uh.OpenModal)
		page.POST("/ui/modal/close", uh.CloseModal)
		page.POST("/ui/form", uh.SetField)
		page.POST("/ui/employees", uh.Submit)
	}

	ah := handlers.NewAuthHandler(d.Verifier, d.Tokens, d.Log)
	authGroup := r.Group("/auth")
	{
		if d.Verifier != nil {
			authGroup.POST("/login", ah.Login)
		}
		authGroup.GET("/profile", am.Authenticate(), ah.GetProfile)
	}

	api := r.Group("/api", am.Authenticate())
	{
		api.GET("/employees", eh.ListEmployees)
		api.GET("/employees/:id", eh.GetEmployeeByID)
		api.POST("/employees", am.RequireRole(models.RoleAdmin, models.RoleHR), eh.CreateEmployee)
	}
}
