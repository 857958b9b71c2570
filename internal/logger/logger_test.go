// SPDX-License-Identifier: MIT

package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvcorr/internal/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"", zapcore.WarnLevel, zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"error", zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, tc := range tests {
		tc := tc
		t.Run("level="+tc.level, func(t *testing.T) {
			log, err := logger.New(logger.Config{Level: tc.level})
			require.NoError(t, err)
			require.True(t, log.Core().Enabled(tc.enabled))
			require.False(t, log.Core().Enabled(tc.muted))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")
}

func TestNew_InvalidEncoding(t *testing.T) {
	_, err := logger.New(logger.Config{Encoding: "xml"})
	require.Error(t, err)
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvcorr.log")
	log, err := logger.New(logger.Config{Level: "info", Encoding: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Info("loaded", zap.Int("rows", 20))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"loaded"`)
	require.Contains(t, string(data), `"rows":20`)
	require.Contains(t, string(data), `"logger":"lvcorr"`)
}
