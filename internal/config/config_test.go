package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[server]
http_port = 9090

[database]
host = "db"
password = "from-file"

[logs]
level = "DEBUG"

[schedule_catalog]
url = "http://catalog:8080"
timeout = 3

[appointment_store]
url = "http://store:8080"
api_key = "secret"

[availability]
default_interval_minutes = 20
locale = "en"
allow_service_bundling = true
timezone = "America/Argentina/Buenos_Aires"

[sessions]
size = 10
ttl = 60
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleTOML))

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "unset keys keep defaults")
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 3*time.Second, cfg.ScheduleCatalog.TimeoutDuration())
	assert.Equal(t, 10*time.Second, cfg.AppointmentStore.TimeoutDuration())
	assert.Equal(t, "secret", cfg.AppointmentStore.APIKey)
	assert.Equal(t, 20, cfg.Availability.DefaultIntervalMinutes)
	assert.True(t, cfg.Availability.AllowServiceBundling)
	assert.Equal(t, time.Minute, cfg.Sessions.TTLDuration())

	loc, err := cfg.Availability.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Argentina/Buenos_Aires", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TURNS_DB_PASSWORD", "from-env")
	t.Setenv("TURNS_CATALOG_URL", "http://catalog.internal")
	t.Setenv("TURNS_STORE_API_KEY", "rotated")

	cfg, err := Load(writeConfig(t, sampleTOML))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "http://catalog.internal", cfg.ScheduleCatalog.URL)
	assert.Equal(t, "rotated", cfg.AppointmentStore.APIKey)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_MissingFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("TURNS_CATALOG_URL", "http://catalog")
	t.Setenv("TURNS_STORE_URL", "http://store")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "es", cfg.Availability.Locale)
	assert.Equal(t, 30, cfg.Availability.DefaultIntervalMinutes)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.ScheduleCatalog.URL = "http://catalog"
		cfg.AppointmentStore.URL = "http://store"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "no catalog url", mutate: func(c *Config) { c.ScheduleCatalog.URL = "" }, want: "schedule_catalog.url"},
		{name: "no store url", mutate: func(c *Config) { c.AppointmentStore.URL = "" }, want: "appointment_store.url"},
		{name: "interval too small", mutate: func(c *Config) { c.Availability.DefaultIntervalMinutes = 1 }, want: "default_interval_minutes"},
		{name: "unknown locale", mutate: func(c *Config) { c.Availability.Locale = "pt" }, want: "availability.locale"},
		{name: "bad timezone", mutate: func(c *Config) { c.Availability.Timezone = "Mars/Olympus" }, want: "availability.timezone"},
		{name: "no sessions", mutate: func(c *Config) { c.Sessions.Size = 0 }, want: "sessions.size"},
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 70000 }, want: "http_port"},
		{name: "bad level", mutate: func(c *Config) { c.Logs.Level = "verbose" }, want: "logs.level"},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
