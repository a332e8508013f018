package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateDir := t.TempDir()
			t.Setenv("ACTIONKIT_STATE_DIR", stateDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			_, err := os.Stat(filepath.Join(stateDir, "actionkit.log"))
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestSetupLogger_UnwritableStateDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	t.Setenv("ACTIONKIT_STATE_DIR", filepath.Join(blocker, "nested"))

	assert.NotPanics(t, func() { SetupLogger(0) })
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("naming")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"naming"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "resolve-name")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"resolve-name"`)
}
