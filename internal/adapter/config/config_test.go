package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "")
	t.Setenv("TICK_INTERVAL", "")

	conf, err := newConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", conf.HTTP.HostString)
	assert.Equal(t, AppModeDevelop, conf.App.Mode)
	assert.Equal(t, "America/Guayaquil", conf.Order.TimeZone)
	assert.Equal(t, time.Minute, conf.Order.TickInterval)
	assert.Equal(t, "https://wa.me", conf.Order.MessagingBaseURL)
	assert.Empty(t, conf.Database.DSN)
}

func TestNewConfig_EnvOverridesFlags(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("TICK_INTERVAL", "30s")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	t.Setenv("DEFAULT_PHONE", "0987654321")

	conf, err := newConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-a", ":7070", "-m", "PROD"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", conf.HTTP.HostString)
	assert.Equal(t, AppModeProduction, conf.App.Mode)
	assert.Equal(t, 30*time.Second, conf.Order.TickInterval)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, conf.HTTP.AllowedOrigins)
	assert.Equal(t, "0987654321", conf.Order.DefaultPhone)
}
