package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/aoc2023/internal/hcl"
	"github.com/specialistvlad/aoc2023/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an app reading the manifests under cfg.PuzzlesPath
// with debug logging captured in the returned buffer. Set AOC_TEST_LOGS=true
// to dump the log after the test.
func SetupAppTest(t *testing.T, cfg *Config, modules ...registry.Module) (*App, *bytes.Buffer, *SafeBuffer, error) {
	t.Helper()

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	cfg.LogLevel = "debug"
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}

	t.Cleanup(func() {
		if os.Getenv("AOC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	a, err := NewApp(out, logBuffer, cfg, hcl.NewLoader(), modules...)
	return a, out, logBuffer, err
}
