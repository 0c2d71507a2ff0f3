// File: settings_test.go
// Title: Settings Tests
// Description: Tests for the validated settings view.
// Author: paisley
// Version: v0.1.0
// Created: 2026-09-27
// Modified: 2026-09-27
//
// Change History:
// - 2026-09-27 v0.1.0: Initial tests

package config

import (
	"strings"
	"testing"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/core/log"
	"github.com/paisley/rocdate/foundation/utils/timex"
)

func TestSettingsDefaults(t *testing.T) {
	cfg := FromDefaults(LoadOptions{Defaults: DefaultValues(), LookupEnv: noEnv})

	s, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if s.DatePattern != "yyyy-MM-dd" || s.DateTimePattern != "yyyy-MM-dd HH:mm:ss" || s.RocPattern != "yyy/MM/dd" {
		t.Errorf("patterns = %+v", s)
	}
	if s.Zone != timex.ServiceZone {
		t.Errorf("Zone = %v, want ServiceZone", s.Zone)
	}
	if s.LogLevel != log.LevelInfo || s.LogFormat != log.FormatText {
		t.Errorf("log settings = %v %v", s.LogLevel, s.LogFormat)
	}
}

func TestSettingsFromEnvironment(t *testing.T) {
	cfg := FromDefaults(LoadOptions{
		EnvPrefix: EnvPrefix,
		Defaults:  DefaultValues(),
		LookupEnv: envMap(map[string]string{
			"ROCDATE_ZONE_OFFSET": "+09:00",
			"ROCDATE_LOG_FORMAT":  "json",
		}),
	})

	s, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if _, offset := timex.NowTime().In(s.Zone).Zone(); offset != 9*3600 {
		t.Errorf("zone offset = %d", offset)
	}
	if s.LogFormat != log.FormatJSON {
		t.Errorf("LogFormat = %v", s.LogFormat)
	}
}

func TestSettingsCollectsProblems(t *testing.T) {
	cfg, err := LoadFromString(`
[display]
date_pattern = "yyyy-MM-dd'"
datetime_pattern = "HH:mm"

[zone]
offset = "nowhere"

[log]
level = "loud"
format = "xml"
`, FormatTOML, LoadOptions{Defaults: DefaultValues(), LookupEnv: noEnv})
	if err != nil {
		t.Fatal(err)
	}

	_, err = cfg.Settings()
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Fatalf("Settings() error = %v", err)
	}

	coded := err.(*mdwerror.Error)
	problems, _ := coded.Detail("problems")
	list := problems.([]string)
	if len(list) != 5 {
		t.Errorf("got %d problems: %v", len(list), list)
	}
	for _, key := range []string{KeyDatePattern, KeyDateTimePattern, KeyZoneOffset, KeyLogLevel, KeyLogFormat} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error does not mention %s: %v", key, err)
		}
	}
}
