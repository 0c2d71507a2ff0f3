package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paisley/rocdate/foundation/core/config"
	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/utils/timex"
)

const baseConfig = `
[display]
date_pattern = "yyyy-MM-dd"
datetime_pattern = "yyyy-MM-dd HH:mm:ss"

[roc]
pattern = "yyy/MM/dd"

[zone]
offset = "+08:00"

[log]
level = "error"
format = "text"
`

// writeConfig stores content as rocdate.toml in a fresh directory and
// clears any ROCDATE_ overrides from the environment
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	for _, key := range []string{
		config.KeyDatePattern, config.KeyDateTimePattern, config.KeyRocPattern,
		config.KeyZoneOffset, config.KeyLogLevel, config.KeyLogFormat,
	} {
		t.Setenv(config.EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), "")
	}

	path := filepath.Join(t.TempDir(), "rocdate.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// run executes one invocation and returns its trimmed stdout and stderr
func run(t *testing.T, cfg string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), err
}

func TestCommands(t *testing.T) {
	cfg := writeConfig(t, baseConfig)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format millis", []string{"format", "1706684645000"}, "2024-01-31 15:04:05"},
		{"format scientific", []string{"format", "1.706684645e12"}, "2024-01-31 15:04:05"},
		{"format pattern", []string{"format", "-p", "yyyy/MM/dd", "1706684645000"}, "2024/01/31"},
		{"format before epoch", []string{"format", "-p", "yyyy-MM-dd HH:mm", "--", "-1000"}, "1970-01-01 07:59"},
		{"check valid", []string{"check", "2024-02-29"}, "ok"},
		{"check custom pattern", []string{"check", "-p", "yyyyMMdd", "20240131"}, "ok"},
		{"toroc default", []string{"toroc", "2024-01-31"}, "113/01/31"},
		{"toroc era", []string{"toroc", "--to", "Gy年M月d日", "2024-01-31"}, "民國113年1月31日"},
		{"toroc before 1912", []string{"toroc", "--to", "Gy年", "1900-06-01"}, "民國前12年"},
		{"toad lenient digits", []string{"toad", "113/1/5"}, "2024-01-05"},
		{"toad era", []string{"toad", "--from", "Gy年M月d日", "民國113年1月31日"}, "2024-01-31"},
		{"reformat", []string{"reformat", "--from", "yyyyMMdd", "--to", "yyyy-MM-dd", "20240131"}, "2024-01-31"},
		{"reformat midnight", []string{"reformat", "2024-01-31"}, "2024-01-31 00:00:00"},
		{"between days", []string{"between", "2024-01-01", "2024-12-31"}, "365"},
		{"between negative", []string{"between", "2024-03-01", "2024-02-01"}, "-29"},
		{"between seconds", []string{"between", "-u", "seconds", "-p", "yyyy-MM-dd HH:mm", "2024-01-31 08:00", "2024-01-31 17:30"}, "34200"},
		{"between seconds rounded down", []string{"between", "-u", "seconds", "-p", "yyyy-MM-dd HH:mm:ss.SSS", "2024-01-31 00:00:00.500", "2024-01-31 00:00:00.000"}, "-1"},
		{"number grouping", []string{"number", "1234567.8915"}, "1,234,567.892"},
		{"number pattern", []string{"number", "-p", "#,##0.00", "1234.5"}, "1,234.50"},
		{"number pad", []string{"number", "--pad", "3", "7"}, "007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stderr, err := run(t, cfg, tt.args...)
			if err != nil {
				t.Fatalf("%v failed: %v\nstderr: %s", tt.args, err, stderr)
			}
			if got != tt.want {
				t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	cfg := writeConfig(t, baseConfig)

	tests := []struct {
		name string
		args []string
		code mdwerror.Code
	}{
		{"format not a number", []string{"format", "soon"}, mdwerror.CodeInvalidInput},
		{"format fraction", []string{"format", "1.5"}, mdwerror.CodeInvalidInput},
		{"check impossible date", []string{"check", "2023-02-29"}, mdwerror.CodeValidationFailed},
		{"check wrong width", []string{"check", "2024-1-31"}, mdwerror.CodeValidationFailed},
		{"parse mismatch", []string{"parse", "31.01.2024"}, mdwerror.CodeFormatMismatch},
		{"parse blank", []string{"parse", " "}, mdwerror.CodeInvalidInput},
		{"toroc mismatch", []string{"toroc", "2024-13-01"}, mdwerror.CodeFormatMismatch},
		{"toad unparseable", []string{"toad", "not a date"}, mdwerror.CodeCalendarParse},
		{"bad pattern", []string{"format", "-p", "yyyy-MM-dd'", "0"}, mdwerror.CodeInvalidPattern},
		{"reserved pattern char", []string{"toroc", "--to", "yyy#MM", "2024-01-31"}, mdwerror.CodeInvalidPattern},
		{"between unit", []string{"between", "-u", "weeks", "2024-01-01", "2024-01-02"}, mdwerror.CodeInvalidInput},
		{"number not numeric", []string{"number", "lots"}, mdwerror.CodeInvalidFormat},
		{"month out of range", []string{"month", "113/13"}, mdwerror.CodeCalendarParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, cfg, tt.args...)
			if err == nil {
				t.Fatalf("%v succeeded, want %s", tt.args, tt.code)
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("%v code = %s, want %s (err: %v)", tt.args, got, tt.code, err)
			}
		})
	}
}

func TestErrorsAreLogged(t *testing.T) {
	cfg := writeConfig(t, baseConfig)

	_, stderr, err := run(t, cfg, "toroc", "2024-13-01")
	if err == nil {
		t.Fatal("expected error")
	}
	if !timex.IsFormatMismatch(err) {
		t.Errorf("err = %v, want format mismatch", err)
	}
	// log.level is error and a format mismatch is Low severity
	if stderr != "" {
		t.Errorf("stderr = %q, want nothing at level error", stderr)
	}

	_, stderr, _ = run(t, cfg, "--verbose", "toroc", "2024-13-01")
	if !strings.Contains(stderr, string(mdwerror.CodeFormatMismatch)) {
		t.Errorf("verbose stderr = %q, want the error code", stderr)
	}
}

func TestParse(t *testing.T) {
	cfg := writeConfig(t, baseConfig)

	out, _, err := run(t, cfg, "parse", "2024-01-31")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, want := range []string{"2024-01-31T00:00:00", "星期三", "民國113年1月31日", "1706630400000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, cfg, "parse", "-p", "yyyyMMddHHmmss", "--lang", "en", "20240131150405")
	if err != nil {
		t.Fatalf("parse with time: %v", err)
	}
	for _, want := range []string{"2024-01-31T15:04:05", "Wednesday", "1706684645000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMonth(t *testing.T) {
	cfg := writeConfig(t, baseConfig)

	out, _, err := run(t, cfg, "month", "113/2")
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	for _, want := range []string{"民國113年2月", "2024-02", "週日", "週六", "29"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "30") {
		t.Errorf("February 2024 has 29 days:\n%s", out)
	}
}

func TestRenderMonthLayout(t *testing.T) {
	weekdays, err := timex.NewFormatter("E")
	if err != nil {
		t.Fatal(err)
	}
	// 2024-09-01 is a Sunday, so the first week has no leading blanks
	first := timex.MustDate(2024, 9, 1)
	out := renderMonth(first, timex.MustDate(2000, 1, 1), "heading", weekdays)

	var weeks int
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, " 1 ") || strings.Contains(line, " 8 ") ||
			strings.Contains(line, "15") || strings.Contains(line, "22") || strings.Contains(line, "29") {
			weeks++
		}
	}
	if weeks != 5 {
		t.Errorf("found %d week rows, want 5:\n%s", weeks, out)
	}
}

func TestNow(t *testing.T) {
	cfg := writeConfig(t, baseConfig)

	out, _, err := run(t, cfg, "now")
	if err != nil {
		t.Fatalf("now: %v", err)
	}
	if !timex.MatchesPattern(out, "yyyy-MM-dd HH:mm:ss") {
		t.Errorf("now = %q, want yyyy-MM-dd HH:mm:ss", out)
	}

	out, _, err = run(t, cfg, "now", "--roc", "-p", "yyy")
	if err != nil {
		t.Fatalf("now --roc: %v", err)
	}
	if want := timex.NowAsMinguo("yyy"); out != want {
		t.Errorf("now --roc = %q, want %q", out, want)
	}
}

func TestConfigFile(t *testing.T) {
	cfg := writeConfig(t, `
[display]
date_pattern = "yyyyMMdd"

[roc]
pattern = "Gy年M月d日"
`)

	out, _, err := run(t, cfg, "toroc", "20240131")
	if err != nil {
		t.Fatalf("toroc: %v", err)
	}
	if out != "民國113年1月31日" {
		t.Errorf("toroc = %q", out)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	cfg := writeConfig(t, baseConfig)
	t.Setenv("ROCDATE_ROC_PATTERN", "yyy.MM.dd")

	out, _, err := run(t, cfg, "toroc", "2024-01-31")
	if err != nil {
		t.Fatalf("toroc: %v", err)
	}
	if out != "113.01.31" {
		t.Errorf("toroc = %q, want the environment pattern", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeConfig(t, `
[log]
level = "loud"

[zone]
offset = "+25:00"
`)

	_, _, err := run(t, cfg, "toroc", "2024-01-31")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Fatalf("err = %v, want %s", err, mdwerror.CodeInvalidConfig)
	}
	problems, _ := err.(*mdwerror.Error).Detail("problems")
	if got := len(problems.([]string)); got != 2 {
		t.Errorf("problems = %v, want 2", problems)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := run(t, filepath.Join(t.TempDir(), "absent.toml"), "toroc", "2024-01-31")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("err = %v, want %s", err, mdwerror.CodeNotFound)
	}
}

func TestInvalidLang(t *testing.T) {
	cfg := writeConfig(t, baseConfig)
	if _, _, err := run(t, cfg, "--lang", "!!", "toroc", "2024-01-31"); err == nil {
		t.Error("expected error for malformed --lang")
	}
}

func TestVersion(t *testing.T) {
	var stdout bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(stdout.String(), "rocdate v"+Version) {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, mdwerror.New("boom"))
	if !strings.Contains(buf.String(), "error: boom") {
		t.Errorf("printError wrote %q", buf.String())
	}
}
