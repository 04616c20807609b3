package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/countryplug/internal/loader"
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

// SetupAppTest creates an app instance for system testing, capturing all
// output in a SafeBuffer and forcing debug logging.
func SetupAppTest(t *testing.T, appConfig *Config, variants ...loader.Binding) (*App, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	appConfig.LogFormat = "text"
	testApp := NewApp(buf, appConfig, nil, variants...)

	t.Cleanup(func() {
		if os.Getenv("COUNTRYPLUG_TEST_LOGS") == "true" {
			t.Logf("--- Full output for %s ---\n%s", t.Name(), buf.String())
		}
	})

	return testApp, buf
}
