package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pradom/storefront/pkg/config"
)

func TestRunReturnsExitCodeOnConfigError(t *testing.T) {
	t.Setenv(config.EnvAppEnv, config.AppEnvDev)
	t.Setenv(config.EnvSessionStore, "memcached")

	assert.Equal(t, 1, run())
}

func TestRunReturnsExitCodeOnMissingCatalog(t *testing.T) {
	t.Setenv(config.EnvAppEnv, config.AppEnvDev)
	t.Setenv(config.EnvSessionStore, config.SessionStoreMemory)
	t.Setenv(config.EnvCatalogPath, filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, 1, run())
}

func TestRunReturnsExitCodeWhenRedisUnreachable(t *testing.T) {
	t.Setenv(config.EnvAppEnv, config.AppEnvDev)
	t.Setenv(config.EnvCatalogPath, "")
	t.Setenv(config.EnvSessionStore, config.SessionStoreRedis)
	t.Setenv(config.EnvRedisURL, "")
	t.Setenv(config.EnvRedisAddr, "127.0.0.1:1")

	assert.Equal(t, 1, run())
}
