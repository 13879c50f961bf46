package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		level     string
		format    string
		logDebug  bool
		logWarn   bool
		jsonStyle bool
	}{
		{name: "debug text", level: "debug", format: "text", logDebug: true, logWarn: true},
		{name: "info json", level: "info", format: "json", logWarn: true, jsonStyle: true},
		{name: "error hides warn", level: "error", format: "text"},
		{name: "unknown level falls back to warn", level: "chatty", format: "text", logWarn: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := newLogger(tc.level, tc.format, &buf)

			logger.Debug("debug-line")
			logger.Warn("warn-line")

			assert.Equal(t, tc.logDebug, bytes.Contains(buf.Bytes(), []byte("debug-line")))
			assert.Equal(t, tc.logWarn, bytes.Contains(buf.Bytes(), []byte("warn-line")))
			if tc.logWarn {
				assert.Equal(t, tc.jsonStyle, bytes.Contains(buf.Bytes(), []byte(`"msg":"warn-line"`)))
			}
		})
	}
}
