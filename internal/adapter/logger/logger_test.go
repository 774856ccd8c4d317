package logger

import (
	"testing"

	"github.com/MikeRez0/lunchorder/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		conf    config.App
		wantErr bool
	}{
		{name: "dev debug", conf: config.App{LogLevel: "debug", Mode: config.AppModeDevelop}},
		{name: "prod error", conf: config.App{LogLevel: "error", Mode: config.AppModeProduction}},
		{name: "bad level", conf: config.App{LogLevel: "loud"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			log, err := NewLogger(&test.conf)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			lvl, _ := zap.ParseAtomicLevel(test.conf.LogLevel)
			assert.True(t, log.Core().Enabled(lvl.Level()))
		})
	}
}
