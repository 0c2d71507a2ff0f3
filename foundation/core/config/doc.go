// Package config provides configuration loading for rocdate.
//
// Package: config
// Title: rocdate Configuration
// Description: TOML and YAML configuration with built-in defaults and
//              environment overrides, plus the validated Settings view the
//              CLI runs on.
// Author: paisley
// Version: v0.2.0
// Created: 2026-03-06
// Modified: 2026-09-27
//
// Change History:
// - 2026-03-06 v0.1.0: Initial TOML/YAML loading
// - 2026-09-27 v0.2.0: Settings, discovery fallback, env prefix ROCDATE
//
// Sources
//
// A value is looked up in this order:
//
//  1. the environment variable named by EnvKey, e.g. ROCDATE_ROC_PATTERN
//  2. the configuration file (rocdate.toml, rocdate.yaml or rocdate.yml)
//  3. DefaultValues
//
// Keys
//
//	[display]
//	date_pattern     = "yyyy-MM-dd"
//	datetime_pattern = "yyyy-MM-dd HH:mm:ss"
//
//	[roc]
//	pattern = "yyy/MM/dd"
//
//	[zone]
//	offset = "+08:00"
//
//	[log]
//	level  = "info"   # trace, debug, info, warn, error
//	format = "text"   # text, json, logfmt
//
// Usage
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	if err != nil {
//		return err
//	}
//	settings, err := cfg.Settings()
//
// Settings compiles every pattern and parses the zone offset, so a bad
// file is reported once at startup with all of its problems.
package config
