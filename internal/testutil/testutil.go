// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pizzabuilder/internal/ctxlog"
)

// Ptr returns a pointer to s, for optional recipe and pizza fields.
func Ptr(s string) *string {
	return &s
}

// WriteFiles creates a temporary root directory and writes every file into
// it. Names are relative paths (e.g. "menus/extra.hcl"); intermediate
// directories are created. It returns the root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return tmpDir
}

// Context returns a background context carrying a logger. Logs are discarded
// unless PIZZA_TEST_LOGS=true, in which case they go through t.Log.
func Context(t *testing.T) context.Context {
	t.Helper()

	var w io.Writer = io.Discard
	if os.Getenv("PIZZA_TEST_LOGS") == "true" {
		w = logWriter{t}
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

type logWriter struct{ t *testing.T }

func (w logWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
