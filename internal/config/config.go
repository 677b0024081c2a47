package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory    = "memory"
	StoragePostgres  = "postgres"
	StoragePostgREST = "postgrest"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	AppName   string `mapstructure:"APP_NAME"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	StorageDriver   string `mapstructure:"STORAGE_DRIVER"`
	DBDSN           string `mapstructure:"DB_DSN"`
	PostgRESTURL    string `mapstructure:"POSTGREST_URL"`
	PostgRESTAPIKey string `mapstructure:"POSTGREST_API_KEY"`

	// Sin secreto ni proyecto Supabase => modo dev (headers X-Debug-*).
	AuthJWTSecret       string `mapstructure:"AUTH_JWT_SECRET"`
	AuthSupabaseURL     string `mapstructure:"AUTH_SUPABASE_URL"`
	AuthSupabaseAnonKey string `mapstructure:"AUTH_SUPABASE_ANON_KEY"`

	VitalsThresholdsFile string `mapstructure:"VITALS_THRESHOLDS_FILE"`

	ReadTimeout  time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"WRITE_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT",
	"STORAGE_DRIVER", "DB_DSN", "POSTGREST_URL", "POSTGREST_API_KEY",
	"AUTH_JWT_SECRET", "AUTH_SUPABASE_URL", "AUTH_SUPABASE_ANON_KEY",
	"VITALS_THRESHOLDS_FILE",
	"READ_TIMEOUT", "WRITE_TIMEOUT",
}

// Load lee variables de entorno y, si existe, un .env en el directorio actual.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "hospital-management")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")

	// Bind explícito para que Unmarshal vea las env vars sin default.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional, pero si existe tiene que parsear
	if err := v.ReadInConfig(); err != nil && !configMissing(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))

	return cfg, nil
}

func configMissing(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DevAuth: sin secreto JWT ni verificación remota se aceptan los headers X-Debug-*.
func (c *Config) DevAuth() bool {
	return strings.TrimSpace(c.AuthJWTSecret) == "" && !c.RemoteAuth()
}

// RemoteAuth: los tokens se validan contra /auth/v1/user del proyecto.
func (c *Config) RemoteAuth() bool {
	return strings.TrimSpace(c.AuthJWTSecret) == "" && strings.TrimSpace(c.AuthSupabaseURL) != ""
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Validate revisa combinaciones que no deben arrancar.
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			errs = append(errs, errors.New("DB_DSN is required when STORAGE_DRIVER=postgres"))
		}
	case StoragePostgREST:
		if strings.TrimSpace(c.PostgRESTURL) == "" || strings.TrimSpace(c.PostgRESTAPIKey) == "" {
			errs = append(errs, errors.New("POSTGREST_URL and POSTGREST_API_KEY are required when STORAGE_DRIVER=postgrest"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be memory, postgres or postgrest, got %q", c.StorageDriver))
	}

	if c.IsProduction() && c.DevAuth() {
		errs = append(errs, errors.New("AUTH_JWT_SECRET or AUTH_SUPABASE_URL is required in production; refusing to start with debug headers auth"))
	}
	if c.RemoteAuth() && strings.TrimSpace(c.AuthSupabaseAnonKey) == "" {
		errs = append(errs, errors.New("AUTH_SUPABASE_ANON_KEY is required with AUTH_SUPABASE_URL"))
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		errs = append(errs, errors.New("READ_TIMEOUT and WRITE_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}
