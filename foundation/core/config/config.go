// File: config.go
// Title: Core Configuration Management Implementation
// Description: Loads TOML and YAML configuration files, merges defaults and
//              resolves environment overrides for dotted keys.
// Author: paisley
// Version: v0.2.1
// Created: 2026-03-06
// Modified: 2026-10-15
//
// Change History:
// - 2026-03-06 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-09-27 v0.2.0: Nested defaults, injectable env lookup, dropped watching
// - 2026-10-15 v0.2.1: File reads through filex

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/utils/filex"
	"github.com/paisley/rocdate/foundation/utils/mapx"
	"github.com/paisley/rocdate/foundation/utils/mathx"
	"github.com/paisley/rocdate/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// LookupFunc resolves an environment variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Config represents a configuration instance with thread-safe access.
// Environment variables take precedence over file values, which take
// precedence over defaults.
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	lookupEnv LookupFunc
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix, e.g. "ROCDATE"
	Defaults  map[string]interface{} // Nested default values
	LookupEnv LookupFunc             // Environment source (default: os.LookupEnv)
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions")
	}

	content, err := filex.ReadFile(filePath)
	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	c := newConfig(data, options)
	c.filePath = filePath
	c.format = format
	return c, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format, options LoadOptions) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	c := newConfig(data, options)
	c.format = format
	return c, nil
}

// FromDefaults builds a Config that has no file behind it
func FromDefaults(options LoadOptions) *Config {
	c := newConfig(nil, options)
	c.format = FormatAuto
	return c
}

func newConfig(data map[string]interface{}, options LoadOptions) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	if options.Defaults != nil {
		data = mapx.DeepMerge(options.Defaults, data)
	}
	lookup := options.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Config{
		data:      data,
		format:    options.Format,
		envPrefix: options.EnvPrefix,
		lookupEnv: lookup,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	value, ok := c.lookup(key)
	if !ok {
		return firstOr(defaultValue, "")
	}
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	value, ok := c.lookup(key)
	if !ok {
		return firstOr(defaultValue, 0)
	}
	if i, ok := mathx.ToInt(value); ok {
		return i
	}
	return firstOr(defaultValue, 0)
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	def := firstOr(defaultValue, 0)
	value, ok := c.lookup(key)
	if !ok {
		return def
	}
	return mathx.ToNumber(value, def)
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	value, ok := c.lookup(key)
	if !ok {
		return firstOr(defaultValue, false)
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return firstOr(defaultValue, false)
}

// GetDuration returns a time.Duration configuration value with optional default
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	value, ok := c.lookup(key)
	if !ok {
		return firstOr(defaultValue, 0)
	}
	switch v := value.(type) {
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	case time.Duration:
		return v
	default:
		if n, ok := mathx.ToInt(v); ok {
			return time.Duration(n)
		}
	}
	return firstOr(defaultValue, 0)
}

// GetStringSlice returns a string slice configuration value with optional
// default. A comma-separated environment value is split.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	value, ok := c.lookup(key)
	if !ok {
		return firstOr(defaultValue, nil)
	}
	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprint(item)
		}
		return result
	case string:
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return firstOr(defaultValue, nil)
}

func firstOr[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

// lookup resolves key from the environment first, then from the data
func (c *Config) lookup(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.lookupEnv != nil {
		if v, ok := c.lookupEnv(c.EnvKey(key)); ok && v != "" {
			return v, true
		}
	}
	v, ok := mapx.Path(c.data, key)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// EnvKey converts a config key to its environment variable name:
// "display.date_pattern" becomes ROCDATE_DISPLAY_DATE_PATTERN with the
// prefix "ROCDATE".
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(strings.TrimSuffix(c.envPrefix, "_")) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists in the file, the defaults or
// the environment
func (c *Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mapx.SetPath(c.data, key, value)
}

// GetAll returns a copy of the file and default values. Environment
// overrides are not included.
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mapx.Clone(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format)}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))
	return strings.Join(parts, ", ")
}
