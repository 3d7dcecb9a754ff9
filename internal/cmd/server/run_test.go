package serverrun

import (
	"context"
	"os"
	"testing"
	"time"

	cfgpkg "github.com/rzbill/seisproxy/internal/config"
)

func TestGetenvDefault(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		def      string
		envValue string
		setEmpty bool
		expected string
	}{
		{name: "environment variable set", key: "TEST_VAR", def: "default", envValue: "env_value", expected: "env_value"},
		{name: "environment variable not set", key: "TEST_VAR_NOT_SET", def: "default", envValue: "", expected: "default"},
		{name: "environment variable empty", key: "TEST_VAR_EMPTY", def: "default", envValue: "", setEmpty: true, expected: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" || tt.setEmpty {
				_ = os.Setenv(tt.key, tt.envValue)
			} else {
				_ = os.Unsetenv(tt.key)
			}
			t.Cleanup(func() { _ = os.Unsetenv(tt.key) })

			result := getenvDefault(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("getenvDefault(%s, %s) = %s, expected %s", tt.key, tt.def, result, tt.expected)
			}
		})
	}
}

func testConfig() cfgpkg.Config {
	cfg := cfgpkg.Default()
	cfg.Frontend.Host = "127.0.0.1"
	cfg.Frontend.Port = 0
	cfg.Backend.Host = "127.0.0.1"
	cfg.Backend.Port = 0
	cfg.Proxy.PumpIntervalMillis = 2
	cfg.Proxy.StopDrainMillis = 1
	cfg.Proxy.StopSettleMillis = 1
	return cfg
}

// TestRunStopsOnContextCancel is a minimal integration test: Run should
// start both listeners and return once ctx is cancelled, rather than
// hang or leak goroutines.
func TestRunStopsOnContextCancel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := Run(ctx, Options{Config: testConfig()})
	if err != nil && err != context.DeadlineExceeded && err != context.Canceled {
		t.Errorf("expected a context-cancellation error or nil, got %v", err)
	}
}
