// go/src/log/logger_test.go
package logger

import (
	"strings"
	"testing"
)

func TestInfoWritesToBuffer(t *testing.T) {
	SetLevel(DEBUG)
	Info("sign: molecule %s committed", "cell-1")

	logs := GetLogs()
	if !strings.Contains(logs, "cell-1") {
		t.Fatalf("GetLogs() does not contain expected message: %q", logs)
	}
	if !strings.Contains(logs, "[INFO]") {
		t.Fatalf("GetLogs() missing level tag: %q", logs)
	}
}

func TestSetLevelFiltersBelowThreshold(t *testing.T) {
	SetLevel(ERROR)
	defer SetLevel(INFO)

	before := len(GetLogs())
	Debug("this debug line should be filtered out: %d", 42)
	after := len(GetLogs())

	if after != before {
		t.Fatal("Debug wrote to the buffer despite SetLevel(ERROR)")
	}
}

func TestNewTraceIDUnique(t *testing.T) {
	a := NewTraceID()
	b := NewTraceID()
	if a == b {
		t.Fatal("NewTraceID returned the same id twice")
	}
	if a == "" {
		t.Fatal("NewTraceID returned an empty id")
	}
}
