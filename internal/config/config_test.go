package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hospital-management/internal/domain/vitals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "hospital-management", cfg.AppName)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.True(t, cfg.DevAuth())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "Production")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "postgres://u:p@localhost/hms")
	t.Setenv("AUTH_JWT_SECRET", "s3cr3t")
	t.Setenv("READ_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.False(t, cfg.DevAuth())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9090\n=broken\n\"unterminated\n"), 0o600))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_NAME=hms-test\n"), 0o600))
	chdir(t, dir)
	t.Setenv("APP_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hms-test", cfg.AppName)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:           "development",
			StorageDriver: StorageMemory,
			ReadTimeout:   time.Second,
			WriteTimeout:  time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"memory ok", func(c *Config) {}, ""},
		{"postgres sin dsn", func(c *Config) { c.StorageDriver = StoragePostgres }, "DB_DSN"},
		{"postgrest sin key", func(c *Config) {
			c.StorageDriver = StoragePostgREST
			c.PostgRESTURL = "https://x.supabase.co"
		}, "POSTGREST_API_KEY"},
		{"driver desconocido", func(c *Config) { c.StorageDriver = "mongo" }, "STORAGE_DRIVER"},
		{"prod sin secreto", func(c *Config) { c.Env = "production" }, "AUTH_JWT_SECRET"},
		{"timeouts", func(c *Config) { c.ReadTimeout = 0 }, "TIMEOUT"},
		{"prod con auth remota", func(c *Config) {
			c.Env = "production"
			c.AuthSupabaseURL = "https://x.supabase.co"
			c.AuthSupabaseAnonKey = "anon"
		}, ""},
		{"auth remota sin anon key", func(c *Config) { c.AuthSupabaseURL = "https://x.supabase.co" }, "AUTH_SUPABASE_ANON_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadThresholds_OverridesOneKind(t *testing.T) {
	p := writeFile(t, "thresholds.yaml", `
thresholds:
  heart_rate:
    min: 50
    max: 110
`)

	th, err := LoadThresholds(p)
	require.NoError(t, err)

	c := vitals.NewClassifier(th)
	normal := vitals.Reading{SystolicPressure: 120, DiastolicPressure: 80, HeartRate: 105, Temperature: 37, OxygenSaturation: 98}
	assert.Empty(t, c.Classify(normal))

	// el resto de la tabla queda con los valores por defecto
	normal.SystolicPressure = 150
	assert.Equal(t, []vitals.AnomalyLabel{vitals.LabelSystolic}, c.Classify(normal))
}

func TestLoadThresholds_JSON(t *testing.T) {
	p := writeFile(t, "thresholds.json", `{"thresholds":{"oxygen_saturation":{"min":92}}}`)

	th, err := LoadThresholds(p)
	require.NoError(t, err)

	rule, ok := th.Get(vitals.KindOxygenSaturation)
	require.True(t, ok)
	require.NotNil(t, rule.Range.Min)
	assert.Equal(t, 92.0, *rule.Range.Min)
	assert.Nil(t, rule.Range.Max)
}

func TestLoadThresholds_Errors(t *testing.T) {
	_, err := LoadThresholds(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	unknown := writeFile(t, "u.yaml", "thresholds:\n  glucose:\n    min: 70\n")
	_, err = LoadThresholds(unknown)
	assert.ErrorIs(t, err, vitals.ErrInvalidThresholds)

	inverted := writeFile(t, "i.yaml", "thresholds:\n  systolic:\n    min: 150\n    max: 100\n")
	_, err = LoadThresholds(inverted)
	assert.ErrorIs(t, err, vitals.ErrInvalidThresholds)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
