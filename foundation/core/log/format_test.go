// File: format_test.go
// Title: Log Formatter Tests
// Description: Tests for the JSON, text and logfmt formatters.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-02
// Modified: 2026-09-23
//
// Change History:
// - 2026-03-02 v0.1.0: Initial tests
// - 2026-09-23 v0.2.0: Coded error details, sorted keys

package log

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
)

var fixedTime = time.Date(2024, 1, 31, 15, 4, 5, 0, time.FixedZone("UTC+8", 8*3600))

func sampleEntry() *Entry {
	e := newEntry(fixedTime, LevelWarn, "input rejected")
	e.Logger = "check"
	e.CorrelationID = "abc"
	e.Fields["pattern"] = "yyyy-MM-dd"
	e.Fields["attempt"] = 2
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"", FormatText, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	e := sampleEntry()
	e.Error = mdwerror.New("bad date").WithCode(mdwerror.CodeFormatMismatch)
	e.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON line should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	checks := map[string]interface{}{
		"timestamp":      "2024-01-31T15:04:05+08:00",
		"level":          "warn",
		"message":        "input rejected",
		"logger":         "check",
		"correlation_id": "abc",
		"pattern":        "yyyy-MM-dd",
		"attempt":        float64(2),
		"error":          "bad date",
		"duration_ms":    1.5,
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("%s = %v, want %v", k, data[k], want)
		}
	}

	details, ok := data["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", data)
	}
	if details["code"] != "FORMAT_MISMATCH" {
		t.Errorf("error_details.code = %v", details["code"])
	}
}

func TestTextFormatter(t *testing.T) {
	got, err := NewTextFormatter().Format(sampleEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "2024-01-31 15:04:05 [WRN] {check} (abc) input rejected [attempt=2 pattern=yyyy-MM-dd]\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatterWithoutTimestamp(t *testing.T) {
	e := newEntry(fixedTime, LevelInfo, "done")
	e.Duration = 2 * time.Millisecond
	f := &TextFormatter{DisableTimestamp: true}

	got, _ := f.Format(e)
	if string(got) != "[INF] done duration=2ms\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	got, err := NewLogfmtFormatter().Format(sampleEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := `timestamp=2024-01-31T15:04:05+08:00 level=warn message="input rejected" ` +
		`logger=check correlation_id=abc attempt=2 pattern="yyyy-MM-dd"` + "\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("json should map to JSONFormatter")
	}
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("text should map to TextFormatter")
	}
	if _, ok := GetFormatter(FormatLogfmt).(*LogfmtFormatter); !ok {
		t.Error("logfmt should map to LogfmtFormatter")
	}
}

func TestFieldsMergeAndKeys(t *testing.T) {
	a := Fields{"b": 1, "a": 1}
	merged := a.Merge(Field("b", 2))

	if merged["b"] != 2 || a["b"] != 1 {
		t.Errorf("Merge should prefer other and leave the receiver alone: %v %v", merged, a)
	}
	keys := merged.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v", keys)
	}
}
