// File: settings.go
// Title: rocdate Settings
// Description: The configuration keys rocdate understands, their defaults
//              and the validated, typed view the CLI consumes.
// Author: paisley
// Version: v0.1.0
// Created: 2026-09-27
// Modified: 2026-09-27
//
// Change History:
// - 2026-09-27 v0.1.0: Initial settings and validation

package config

import (
	"fmt"
	"strings"
	"time"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/core/log"
	"github.com/paisley/rocdate/foundation/utils/mapx"
	"github.com/paisley/rocdate/foundation/utils/timex"
)

// EnvPrefix prefixes every environment override, e.g. ROCDATE_LOG_LEVEL
const EnvPrefix = "ROCDATE"

// Configuration keys
const (
	KeyDatePattern     = "display.date_pattern"
	KeyDateTimePattern = "display.datetime_pattern"
	KeyRocPattern      = "roc.pattern"
	KeyZoneOffset      = "zone.offset"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
)

// DefaultValues returns a fresh copy of the built-in defaults as a nested map
func DefaultValues() map[string]interface{} {
	defaults := make(map[string]interface{})
	mapx.SetPath(defaults, KeyDatePattern, "yyyy-MM-dd")
	mapx.SetPath(defaults, KeyDateTimePattern, "yyyy-MM-dd HH:mm:ss")
	mapx.SetPath(defaults, KeyRocPattern, "yyy/MM/dd")
	mapx.SetPath(defaults, KeyZoneOffset, "+08:00")
	mapx.SetPath(defaults, KeyLogLevel, "info")
	mapx.SetPath(defaults, KeyLogFormat, "text")
	return defaults
}

// Settings is the validated configuration
type Settings struct {
	DatePattern     string
	DateTimePattern string
	RocPattern      string
	Zone            *time.Location
	LogLevel        log.Level
	LogFormat       log.Format
}

// Settings reads and validates every rocdate key. All problems are
// reported together in a single CodeInvalidConfig error whose "problems"
// detail lists them.
func (c *Config) Settings() (Settings, error) {
	var (
		s        Settings
		problems []string
	)

	patterns := []struct {
		key    string
		target *string
	}{
		{KeyDatePattern, &s.DatePattern},
		{KeyDateTimePattern, &s.DateTimePattern},
		{KeyRocPattern, &s.RocPattern},
	}
	for _, p := range patterns {
		raw := c.GetString(p.key)
		compiled, err := timex.CompilePattern(raw)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("%s: %v", p.key, err))
		case !compiled.HasDateFields():
			problems = append(problems, fmt.Sprintf("%s: pattern %q has no date fields", p.key, raw))
		default:
			*p.target = raw
		}
	}

	zone, err := timex.ParseOffset(c.GetString(KeyZoneOffset, "+08:00"))
	if err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", KeyZoneOffset, err))
	}
	s.Zone = zone

	if s.LogLevel, err = log.ParseLevel(c.GetString(KeyLogLevel)); err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", KeyLogLevel, err))
	}
	if s.LogFormat, err = log.ParseFormat(c.GetString(KeyLogFormat)); err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", KeyLogFormat, err))
	}

	if len(problems) > 0 {
		return s, mdwerror.New("invalid configuration: "+strings.Join(problems, "; ")).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Settings").
			WithDetail("problems", problems)
	}
	return s, nil
}
