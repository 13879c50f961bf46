package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/pizzabuilder/internal/app"
)

// clearEnv neutralizes PIZZA_* variables so defaults are predictable.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PIZZA_MENU", "")
	t.Setenv("PIZZA_LOG_LEVEL", "warn")
	t.Setenv("PIZZA_LOG_FORMAT", "text")
}

func TestParse(t *testing.T) {
	clearEnv(t)

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name:           "No arguments runs the plain script",
			args:           []string{},
			expectedConfig: &app.Config{LogLevel: "warn", LogFormat: "text"},
		},
		{
			name: "Happy Path with all flags",
			args: []string{
				"-menu", "/test/menu",
				"--log-level=debug",
				"--log-format=json",
			},
			expectedConfig: &app.Config{MenuPath: "/test/menu", LogLevel: "debug", LogFormat: "json"},
		},
		{
			name:           "Shorthand flag",
			args:           []string{"-m", "/short/path"},
			expectedConfig: &app.Config{MenuPath: "/short/path", LogLevel: "warn", LogFormat: "text"},
		},
		{
			name:           "Positional argument for path",
			args:           []string{"/positional/path"},
			expectedConfig: &app.Config{MenuPath: "/positional/path", LogLevel: "warn", LogFormat: "text"},
		},
		{
			name:           "Level is case-insensitive",
			args:           []string{"-log-level", "INFO"},
			expectedConfig: &app.Config{LogLevel: "info", LogFormat: "text"},
		},
		{
			name:       "Help flag",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "-log-level")
			},
		},
		{
			name:      "Invalid log format",
			args:      []string{"-log-format", "yaml"},
			expectErr: true,
		},
		{
			name:      "Invalid log level",
			args:      []string{"-log-level", "verbose"},
			expectErr: true,
		},
		{
			name:      "Unknown flag",
			args:      []string{"--extra-cheese"},
			expectErr: true,
		},
		{
			name:      "Positional argument with menu flag",
			args:      []string{"-menu", "/flag/menu.hcl", "/positional/menu.hcl"},
			expectErr: true,
		},
		{
			name:      "Positional argument with shorthand flag",
			args:      []string{"-m", "/flag/menu.hcl", "/positional/menu.hcl"},
			expectErr: true,
		},
		{
			name:           "Shorthand wins over long flag",
			args:           []string{"-menu", "/long/menu.hcl", "-m", "/short/menu.hcl"},
			expectedConfig: &app.Config{MenuPath: "/short/menu.hcl", LogLevel: "warn", LogFormat: "text"},
		},
		{
			name:      "Too many positional arguments",
			args:      []string{"a.hcl", "b.hcl"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "error should be an ExitError")
				require.Equal(t, 2, exitErr.Code)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParse_EnvironmentDefaults(t *testing.T) {
	t.Setenv("PIZZA_MENU", "/from/env")
	t.Setenv("PIZZA_LOG_LEVEL", "error")
	t.Setenv("PIZZA_LOG_FORMAT", "json")

	cfg, shouldExit, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, &app.Config{MenuPath: "/from/env", LogLevel: "error", LogFormat: "json"}, cfg)

	cfg, _, err = Parse([]string{"-log-level", "debug", "-m", "/from/flag"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel, "flags override the environment")
	require.Equal(t, "/from/flag", cfg.MenuPath)

	cfg, _, err = Parse([]string{"/from/arg"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "/from/arg", cfg.MenuPath, "a positional path overrides the environment")
}
