package logger

import (
	"strings"
	"testing"

	"github.com/op/go-logging"
)

func TestGetLogsRespectsLimit(t *testing.T) {
	InitLogger(logging.ERROR)
	logBuffer = nil

	for i := 0; i < 10; i++ {
		Infof("buffered line %d", i)
	}

	logs := GetLogs(3, "INFO")
	if len(logs) != 3 {
		t.Fatalf("GetLogs(3, ...) returned %d lines", len(logs))
	}
	// Newest first.
	if !strings.Contains(logs[0], "buffered line 9") {
		t.Errorf("expected newest entry first, got %q", logs[0])
	}

	logs = GetLogs(100, "INFO")
	if len(logs) != 10 {
		t.Errorf("expected all 10 entries, got %d", len(logs))
	}
}

func TestGetLogsFiltersLevel(t *testing.T) {
	InitLogger(logging.ERROR)
	logBuffer = nil

	Debugf("debug line")
	Warningf("warning line")

	logs := GetLogs(10, "WARNING")
	if len(logs) != 1 {
		t.Fatalf("expected only the warning entry, got %d lines", len(logs))
	}
	if !strings.Contains(logs[0], "warning line") {
		t.Errorf("unexpected entry %q", logs[0])
	}
}
