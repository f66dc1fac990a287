package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func initFileLogger(t *testing.T, level string) string {
	t.Helper()

	logFile := filepath.Join(t.TempDir(), level+".log")
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  10,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   false,
	}
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	return logFile
}

func readLog(t *testing.T, path string) string {
	t.Helper()

	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
			excluded: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := initFileLogger(t, tt.level)

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			logContent := readLog(t, logFile)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNamed(t *testing.T) {
	logFile := initFileLogger(t, "info")

	Named("stage").Info("section changed")

	if content := readLog(t, logFile); !strings.Contains(content, "stage") {
		t.Errorf("expected logger name in output, got %q", content)
	}
}

func TestSampled(t *testing.T) {
	logFile := initFileLogger(t, "info")

	l := Sampled("frame", time.Minute, 2, 0)
	for i := 0; i < 50; i++ {
		l.Error("frame skipped")
	}

	content := readLog(t, logFile)
	if n := strings.Count(content, "frame skipped"); n != 2 {
		t.Errorf("expected 2 sampled entries, got %d", n)
	}
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	Log = nil
	Sync() // must tolerate nil

	if err := InitWithFileConfig("info", FileConfig{}, false); err != nil {
		t.Fatalf("init without outputs failed: %v", err)
	}
	Info("goes nowhere")
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestFileLinesAreJSON(t *testing.T) {
	logFile := initFileLogger(t, "info")

	Named("stage").Info("section changed", zap.Int("section", 2))

	line := strings.TrimSpace(readLog(t, logFile))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q: %v", line, err)
	}
	if entry["logger"] != "stage" || entry["level"] != "INFO" {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["section"] != float64(2) {
		t.Errorf("section field = %v, want 2", entry["section"])
	}
}
