package utils

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNewLoggerWritesFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "logs", "fairgrid.log")
    l, err := NewLogger(path, "debug")
    require.NoError(t, err)
    l.Info("grid search started")
    _ = l.Sync()

    raw, err := os.ReadFile(path)
    require.NoError(t, err)
    assert.Contains(t, string(raw), `"msg":"grid search started"`)
}

func TestNewLoggerRejectsLevel(t *testing.T) {
    _, err := NewLogger("", "loud")
    assert.Error(t, err)
    assert.NotNil(t, MustLogger("", "loud"))
}
