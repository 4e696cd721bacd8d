package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scorecraft/scorecraft/logging"
	"go.uber.org/zap"
)

func TestFileLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scorecraft.log")
	log, err := logging.New(logging.Options{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Debug("wizard step", zap.String("to", "Score information"))
	log.Sync()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(b))), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, b)
	}
	if entry["msg"] != "wizard step" || entry["to"] != "Score information" || entry["level"] != "DEBUG" {
		t.Errorf("unexpected log entry %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scorecraft.log")
	log, err := logging.New(logging.Options{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info("hidden")
	log.Warn("shown")
	log.Sync()
	b, _ := os.ReadFile(path)
	if strings.Contains(string(b), "hidden") || !strings.Contains(string(b), "shown") {
		t.Errorf("level filtering failed, log was:\n%s", b)
	}
}

func TestInvalidLevel(t *testing.T) {
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Errorf("expected error for invalid level")
	}
}

func TestNopWhenNoSinks(t *testing.T) {
	log, err := logging.New(logging.Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if log.Core().Enabled(zap.ErrorLevel) {
		t.Errorf("expected a no-op logger")
	}
}
