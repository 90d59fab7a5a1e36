package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func saveAndRestoreLogger(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
	})
}

func TestSetup_DebugMode(t *testing.T) {
	saveAndRestoreLogger(t)

	var buf bytes.Buffer
	Setup(true, &buf)

	slog.Debug("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected debug message in output, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected key=value in output, got: %s", output)
	}
}

func TestSetup_NormalMode(t *testing.T) {
	saveAndRestoreLogger(t)

	var buf bytes.Buffer
	logger := Setup(false, &buf)

	logger.Debug("debug message")
	logger.Info("info message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("debug message should not appear in normal mode")
	}
	if !strings.Contains(output, "info message") {
		t.Errorf("info message should appear")
	}
}

func TestSetupJSON(t *testing.T) {
	saveAndRestoreLogger(t)

	var buf bytes.Buffer
	SetupJSON(false, &buf)
	slog.Info("saved", "rows", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if rec["msg"] != "saved" || rec["rows"] != float64(3) {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestSetup_NilWriter(t *testing.T) {
	saveAndRestoreLogger(t)

	Setup(false, nil)
	slog.Info("test")
}

func TestDiscard(t *testing.T) {
	saveAndRestoreLogger(t)

	logger := Discard()
	logger.Error("dropped")
	if slog.Default() != logger {
		t.Errorf("Discard should install the default logger")
	}
}

func TestOpenFile_Appends(t *testing.T) {
	saveAndRestoreLogger(t)
	path := filepath.Join(t.TempDir(), "tablefield.log")

	for i := 0; i < 2; i++ {
		f, err := OpenFile(path)
		if err != nil {
			t.Fatalf("OpenFile: %v", err)
		}
		Setup(false, f)
		slog.Info("line")
		if err := f.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	data, err := readFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := strings.Count(data, "msg=line"); got != 2 {
		t.Errorf("records: got %d, want 2", got)
	}
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}
