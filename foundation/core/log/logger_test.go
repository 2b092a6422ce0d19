// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, formatters and
//              structured error logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	alccerr "github.com/msto63/alcc/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "[WRN] shown") {
		t.Errorf("expected warn line, got %q", buf.String())
	}

	buf.Reset()
	logger.Audit("always")
	if !strings.Contains(buf.String(), "always") {
		t.Errorf("audit must bypass level filter, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" warning ", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestContextFieldsAreCopied(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatText)
	child := base.WithField("component", "parser").WithRequestID("req-1").WithName("alcc")

	base.Info("base")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("parent logger must not see child fields: %q", buf.String())
	}

	buf.Reset()
	child.Info("child", Fields{"tokens": 3})
	out := buf.String()
	for _, want := range []string{"{alcc}", "(req=req-1)", "component=parser", "tokens=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.WithField("source_length", 7).Info("parsed")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if data["message"] != "parsed" || data["level"] != "info" {
		t.Errorf("unexpected entry: %v", data)
	}
	if data["source_length"] != float64(7) {
		t.Errorf("source_length = %v", data["source_length"])
	}
}

func TestConsoleFormatColors(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatConsole)
	logger.Error("boom")
	if !strings.HasPrefix(buf.String(), LevelError.Color()) {
		t.Errorf("expected colored output, got %q", buf.String())
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"syntax error is info", alccerr.New("bad input").WithCode(alccerr.CodeSyntax), "[INF]"},
		{"config error is error", alccerr.New("bad config").WithCode(alccerr.CodeConfigError), "[ERR]"},
		{"unknown code is warn", alccerr.New("odd"), "[WRN]"},
		{"plain error is error", errors.New("plain"), "[ERR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatText)
			logger.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %s in %q", tt.want, buf.String())
			}
		})
	}
}

func TestLogErrorIncludesCodeAndDetails(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	err := alccerr.New("unmatched").
		WithCode(alccerr.CodeSyntax).
		WithDetail("offset", 4)

	logger.LogError(err)

	out := buf.String()
	for _, want := range []string{"error_code=RLANG_SYNTAX", "error_offset=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("parse").WithField("statements", 2)
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Errorf("expected positive duration, got %v", elapsed)
	}
	out := buf.String()
	for _, want := range []string{"parse completed", "statements=2", "duration="} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}

	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop should return 0, got %v", again)
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)
	logger.StartTimer("eval").StopWithError(errors.New("division by zero"))

	if !strings.Contains(buf.String(), "eval failed") {
		t.Errorf("expected failure line, got %q", buf.String())
	}
}

func TestDefaultLogger(t *testing.T) {
	previous := GetDefault()
	defer SetDefault(previous)

	logger, buf := newBufferLogger(LevelInfo, FormatText)
	SetDefault(logger)
	Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("expected default logger output, got %q", buf.String())
	}
}
