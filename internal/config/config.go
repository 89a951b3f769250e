package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"employee-portal/internal/models"
)

const Production = "production"

type AppConfig struct {
	Port     string `env:"PORT" envDefault:"8080"`
	AppEnv   string `env:"APP_ENV" envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DatabaseURL        string `env:"DATABASE_URL"`
	StoreDriver        string `env:"STORE_DRIVER" envDefault:"postgres"`
	CredentialProvider string `env:"CREDENTIAL_PROVIDER" envDefault:"postgres"`

	SupabaseURL     string `env:"SUPABASE_URL"`
	SupabaseAnonKey string `env:"SUPABASE_ANON_KEY"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`

	Departments []string `env:"DEPARTMENTS" envSeparator:","`
	Roles       []string `env:"ROLES" envSeparator:","`
}

func (c AppConfig) Addr() string {
	return ":" + c.Port
}

func (c AppConfig) IsProduction() bool {
	return c.AppEnv == Production
}

// Load reads .env if present and then the process environment.
func Load() (AppConfig, error) {
	_ = godotenv.Load() // load .env if present
	return Parse()
}

// Parse builds an AppConfig from the process environment only.
func Parse() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.Departments = trimAll(cfg.Departments)
	cfg.Roles = trimAll(cfg.Roles)
	if len(cfg.Departments) == 0 {
		cfg.Departments = models.DefaultDepartments
	}
	if len(cfg.Roles) == 0 {
		cfg.Roles = models.DefaultRoles
	}
	return cfg, cfg.Validate()
}

// Validate reports every missing or unsupported setting at once.
func (c AppConfig) Validate() error {
	missing := []string{}
	switch c.StoreDriver {
	case "postgres":
		if c.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (want postgres or memory)", c.StoreDriver)
	}
	switch c.CredentialProvider {
	case "postgres":
		if c.DatabaseURL == "" && c.StoreDriver != "postgres" {
			missing = append(missing, "DATABASE_URL")
		}
	case "supabase":
		if c.SupabaseURL == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if c.SupabaseAnonKey == "" {
			missing = append(missing, "SUPABASE_ANON_KEY")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported CREDENTIAL_PROVIDER %q (want postgres, supabase or memory)", c.CredentialProvider)
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return errors.New("missing env: " + strings.Join(missing, ", "))
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
