package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jadwal-guru/config"
)

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(&config.LogConfig{Level: "loud", Format: "json"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger(&config.LogConfig{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(out, `"msg":"visible"`) || !strings.Contains(out, `"service":"jadwal-guru"`) {
		t.Errorf("unexpected log output: %s", out)
	}
}

func TestSplitSinks(t *testing.T) {
	got := splitSinks(" stdout , ,/tmp/a.log")
	if len(got) != 2 || got[0] != "stdout" || got[1] != "/tmp/a.log" {
		t.Errorf("splitSinks = %q", got)
	}
	if splitSinks("") != nil {
		t.Error("empty output should keep the default sink")
	}
}
