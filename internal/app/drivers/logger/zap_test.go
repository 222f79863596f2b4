package logger

import (
	"appointment-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfig(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{
		Level:               "warn",
		OutputFileName:      "app.log",
		OutputErrorFileName: "app_error.log",
	}}

	t.Run("development", func(t *testing.T) {
		cfg := buildConfig(driverConfig, &config.InternalConfig{App: config.App{Env: "development", Version: "v1"}})
		assert.Equal(t, zapcore.WarnLevel, cfg.Level.Level())
		assert.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		assert.Nil(t, cfg.Sampling)
		assert.Equal(t, serviceName, cfg.InitialFields["service"])
	})

	t.Run("production", func(t *testing.T) {
		cfg := buildConfig(driverConfig, &config.InternalConfig{App: config.App{Env: "production"}})
		assert.Equal(t, []string{"app.log"}, cfg.OutputPaths)
		assert.Contains(t, cfg.ErrorOutputPaths, "app_error.log")
		assert.NotNil(t, cfg.Sampling)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := buildConfig(&config.DriverConfig{Logger: config.Logger{Level: "chatty"}}, &config.InternalConfig{})
		assert.Equal(t, zapcore.InfoLevel, cfg.Level.Level())
	})
}
