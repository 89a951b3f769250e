package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"employee-portal/internal/auth"
	"employee-portal/internal/config"
	"employee-portal/internal/db"
	"employee-portal/internal/metrics"
	"employee-portal/internal/middleware"
	"employee-portal/internal/router"
	"employee-portal/internal/session"
	"employee-portal/internal/store"
	"employee-portal/internal/validation"
	"employee-portal/internal/web"
	"employee-portal/internal/workflow"
)

func newLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if cfg.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// employeeByEmail resolves the employee behind a credential for the in-memory provider.
func employeeByEmail(st store.RecordStore) auth.RoleLookup {
	return func(ctx context.Context, email string) (string, string) {
		list, err := st.List(ctx)
		if err != nil {
			return "", ""
		}
		for i := len(list) - 1; i >= 0; i-- {
			if strings.EqualFold(list[i].Email, email) {
				return list[i].ID, list[i].Role
			}
		}
		return "", ""
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config error: %v", err)
	}
	log := newLogger(cfg)

	if err := validation.RegisterBindings(cfg.Departments, cfg.Roles); err != nil {
		log.Fatalf("register validators: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.StoreDriver == "postgres" || cfg.CredentialProvider == "postgres" {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db error: %v", err)
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("db error: %v", err)
		}
	}

	var records store.RecordStore
	switch cfg.StoreDriver {
	case "postgres":
		records = store.NewPostgresStore(pool)
	default:
		records = store.NewMemoryStore()
	}

	var (
		creds    auth.CredentialProvider
		verifier auth.Verifier
	)
	switch cfg.CredentialProvider {
	case "postgres":
		p := auth.NewPostgresProvider(pool, log.WithField("component", "auth"))
		creds, verifier = p, p
	case "supabase":
		creds = auth.NewSupabaseProvider(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	default:
		p := auth.NewMemoryProvider(employeeByEmail(records))
		creds, verifier = p, p
	}

	m := metrics.New()
	svc := workflow.NewService(records, creds, workflow.Options{
		Departments: cfg.Departments,
		Roles:       cfg.Roles,
		Log:         log.WithField("component", "workflow"),
		Observer:    m,
	})

	sessions := session.NewRegistry(svc, log.WithField("component", "session"))
	go sessions.RunSweeper(ctx, time.Minute, cfg.SessionIdleTimeout)

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	router.Setup(r, router.Deps{
		Store:        records,
		Service:      svc,
		Sessions:     sessions,
		Verifier:     verifier,
		Tokens:       auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Metrics:      m,
		Log:          log,
		SecureCookie: cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	log.Infof("listening on %s ...", cfg.Addr())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
