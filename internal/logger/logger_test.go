package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelWarn, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		l := New(tt.level, &buf)
		l.Debug("debug %d", 1)
		l.Info("info %d", 2)

		out := buf.String()
		if got := strings.Contains(out, "debug 1"); got != tt.wantDebug {
			t.Fatalf("level %d: debug visible=%v, want %v", tt.level, got, tt.wantDebug)
		}
		if got := strings.Contains(out, "info 2"); got != tt.wantInfo {
			t.Fatalf("level %d: info visible=%v, want %v", tt.level, got, tt.wantInfo)
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelOff, &buf)
	l.Error("hidden")
	l.SetLevel(LevelNormal)
	l.Error("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Fatal("record logged while level was off")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatal("record missing after raising level")
	}
}

func TestNewWithFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "recipebox.log")
	var console bytes.Buffer

	l, cleanup := NewWithFile(LevelNormal, &console, path)
	l.Warn("fallback for %q", "pasta")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"fallback for \"pasta\""`) {
		t.Fatalf("unexpected file contents: %s", data)
	}
	if !strings.Contains(console.String(), "fallback for") {
		t.Fatalf("console missing record: %s", console.String())
	}
}

func TestWarnLevelHidesInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)
	l.Info("saved pancakes")
	l.Warn("serving samples")

	if strings.Contains(buf.String(), "saved pancakes") {
		t.Fatal("info record logged at warn level")
	}
	if !strings.Contains(buf.String(), "serving samples") {
		t.Fatal("warn record missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"off":     LevelOff,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"info":    LevelNormal,
		"debug":   LevelVerbose,
		"bogus":   LevelNormal,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %d, want %d", in, got, want)
		}
	}
}
