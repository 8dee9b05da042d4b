package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "courierd.log")

	logger, err := New(path, "test-session")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("daemon ready")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"daemon ready"`) {
		t.Errorf("log missing message: %q", out)
	}
	if !strings.Contains(out, `"session":"test-session"`) {
		t.Errorf("log missing session field: %q", out)
	}
}
