package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "http://10.0.0.1:5001/api/v1", "-d", "s.db", "-l", "debug"}, expectPanic: false,
			expected: &Config{APIBaseURL: "http://10.0.0.1:5001/api/v1", SessionDBPath: "s.db", LogLevel: "debug"}},
		{name: "Test2 foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "--l=warn"}, expectPanic: false,
			expected: &Config{LogLevel: "warn"}},
		{name: "Test3 missing value", args: []string{"cmd", "-a"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
