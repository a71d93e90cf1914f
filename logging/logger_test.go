package logging

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerCachesPerComponent(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	Reset()
	t.Cleanup(Reset)

	a := NewLogger("navtea")
	b := NewLogger("navtea")
	c := NewLogger("cli")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "navtea", a.Data["component"])
}

func TestTextFormatter(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name     string
		config   FormatConfig
		entry    *logrus.Entry
		contains []string
		excludes []string
	}{
		{
			name:   "default",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Time:    ts,
				Level:   logrus.InfoLevel,
				Message: "tab switched",
				Data:    logrus.Fields{"component": "navtea", "to": "profile"},
			},
			contains: []string{"2026-03-04 05:06:07", "[INFO]", "navtea", "tab switched", "to=profile"},
		},
		{
			name:   "warning shortened",
			config: FormatConfig{DisableTimestamp: true},
			entry: &logrus.Entry{
				Time:    ts,
				Level:   logrus.WarnLevel,
				Message: "snapshot skipped",
				Data:    logrus.Fields{},
			},
			contains: []string{"[WARN]", "snapshot skipped"},
			excludes: []string{"2026-03-04"},
		},
		{
			name:   "component hidden",
			config: FormatConfig{DisableComponent: true},
			entry: &logrus.Entry{
				Time:    ts,
				Level:   logrus.DebugLevel,
				Message: "pop",
				Data:    logrus.Fields{"component": "navtea"},
			},
			contains: []string{"[DEBUG]", "pop"},
			excludes: []string{"navtea"},
		},
		{
			name:   "with caller",
			config: FormatConfig{DisableTimestamp: true},
			entry: &logrus.Entry{
				Time:    ts,
				Level:   logrus.ErrorLevel,
				Message: "save failed",
				Data:    logrus.Fields{},
				Caller: &runtime.Frame{
					File:     "/src/navcoord/state/state.go",
					Line:     42,
					Function: "github.com/grovetools/navcoord/state.(*Store).Save",
				},
			},
			contains: []string{"[ERROR]", "[state.go:42 state.(*Store).Save]", "save failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.entry.Caller != nil {
				logger := logrus.New()
				logger.SetReportCaller(true)
				tt.entry.Logger = logger
			}
			f := &TextFormatter{Config: tt.config}
			out, err := f.Format(tt.entry)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, string(out), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, string(out), s)
			}
		})
	}
}

func TestFieldsAreSorted(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	out, err := f.Format(&logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "m",
		Data:    logrus.Fields{"zeta": 1, "alpha": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "[INFO] m alpha=2 zeta=1\n", string(out))
}

func TestLogLevels(t *testing.T) {
	t.Setenv("NAVCOORD_LOG_LEVEL", "")

	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"nonsense", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			entry := New("test", Config{Level: tt.level, Format: FormatConfig{Stderr: StderrNever}})
			assert.Equal(t, tt.expected, entry.Logger.GetLevel())
		})
	}
}

func TestEnvironmentVariables(t *testing.T) {
	t.Setenv("NAVCOORD_LOG_LEVEL", "debug")
	t.Setenv("NAVCOORD_LOG_CALLER", "true")

	entry := New("env", Config{Level: "error", Format: FormatConfig{Stderr: StderrNever}})
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
	assert.True(t, entry.Logger.ReportCaller)
}

func TestJSONPreset(t *testing.T) {
	t.Setenv("NAVCOORD_LOG_LEVEL", "")

	entry := New("json", Config{Format: FormatConfig{Preset: PresetJSON, Stderr: StderrNever}})
	var buf bytes.Buffer
	entry.Logger.SetOutput(&buf)
	entry.WithField("op", "navigate").Info("stack changed")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "json", decoded["component"])
	assert.Equal(t, "navigate", decoded["op"])
	assert.Equal(t, "stack changed", decoded["msg"])
}

func TestFileSink(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("NAVCOORD_LOG_LEVEL", "")

	entry := New("filesink", Config{
		File:   FileSinkConfig{Enabled: true},
		Format: FormatConfig{Stderr: StderrNever},
	})
	entry.Info("written to file")

	path := filePathFor("filesink", Config{File: FileSinkConfig{Enabled: true}})
	assert.Contains(t, path, ".navcoord/logs/filesink-")
	assert.FileExists(t, path)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/logs/a.log", expandPath("~/logs/a.log"))
	assert.Equal(t, "/var/a.log", expandPath("/var/a.log"))
}

func TestDebugLevelReachesTerminal(t *testing.T) {
	t.Setenv("NAVCOORD_LOG_LEVEL", "")
	var buf bytes.Buffer
	prev := SetTerminalOutput(&buf)
	t.Cleanup(func() { SetTerminalOutput(prev) })

	tests := []struct {
		name    string
		cfg     Config
		written bool
	}{
		{"debug in auto mode", Config{Level: "debug"}, true},
		{"always", Config{Format: FormatConfig{Stderr: StderrAlways}}, true},
		{"never", Config{Level: "debug", Format: FormatConfig{Stderr: StderrNever}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			New("terminal", tt.cfg).Info("hello")
			if tt.written {
				assert.Contains(t, buf.String(), "hello")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestSetTerminalOutputSilencesExistingLoggers(t *testing.T) {
	t.Setenv("NAVCOORD_LOG_LEVEL", "")
	var buf bytes.Buffer
	prev := SetTerminalOutput(&buf)
	t.Cleanup(func() { SetTerminalOutput(prev) })

	entry := New("tui", Config{Format: FormatConfig{Stderr: StderrAlways}})
	entry.Info("before")

	SetTerminalOutput(nil)
	entry.Info("during")
	SetTerminalOutput(&buf)
	entry.Info("after")

	assert.Contains(t, buf.String(), "before")
	assert.NotContains(t, buf.String(), "during")
	assert.Contains(t, buf.String(), "after")
}

func TestNewLoggerWithLevelReplacesCached(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NAVCOORD_LOG_LEVEL", "")
	Reset()
	t.Cleanup(Reset)

	plain := NewLogger("cmd")
	verbose := NewLogger("cmd", WithLevel(logrus.DebugLevel))

	assert.Equal(t, logrus.InfoLevel, plain.Logger.GetLevel())
	assert.Equal(t, logrus.DebugLevel, verbose.Logger.GetLevel())
	assert.Same(t, verbose, NewLogger("cmd"))
}
