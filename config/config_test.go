package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: openshop
http:
  port: 8080
auth:
  bcryptCost: 10
events:
  provider: ""
  exchange: openshop.events
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeTestConfig(t)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "openshop", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "openshop.events", cfg.Events.Exchange)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeTestConfig(t)
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_ACCESSTOKENTTL", "30m")
	t.Setenv("EVENTS_PROVIDER", "amqp")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "amqp", cfg.Events.Provider)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, DefaultSeedRoles, cfg.Migration.SeedRoles)
	assert.NotNil(t, cfg.Events)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.HTTP.Port = 8080
		applyDefaults(cfg)

		return cfg
	}

	require.NoError(t, validate(valid()))

	tests := []struct {
		name   string
		mutate func(cfg *Config)
		want   string
	}{
		{"port zero", func(cfg *Config) { cfg.HTTP.Port = 0 }, "http.port"},
		{"port too large", func(cfg *Config) { cfg.HTTP.Port = 70000 }, "http.port"},
		{"seed roles without USER", func(cfg *Config) { cfg.Migration.SeedRoles = []string{"ADMIN"} }, "seedRoles"},
		{"unknown provider", func(cfg *Config) { cfg.Events.Provider = "kafka" }, "events.provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
