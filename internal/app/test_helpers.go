package app

import (
	"bytes"
	"os"
	"testing"

	"github.com/vk/pizzabuilder/internal/menu"
)

// SetupAppTest creates a new app instance for system testing. It returns the
// app together with the buffers receiving pizzas and logs.
func SetupAppTest(t *testing.T, cfg *Config, loader menu.Loader) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg.LogLevel = "debug"
	testApp, err := NewApp(out, logs, cfg, loader)
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("PIZZA_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
