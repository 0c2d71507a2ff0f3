// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds rocdate.toml / rocdate.yaml in the usual places and
//              falls back to built-in defaults when none exists.
// Author: paisley
// Version: v0.2.1
// Created: 2026-03-06
// Modified: 2026-10-15
//
// Change History:
// - 2026-03-06 v0.1.0: Initial implementation of file discovery
// - 2026-09-27 v0.2.0: Optional discovery with defaults-only fallback
// - 2026-10-15 v0.2.1: Candidate search through filex.FirstFile

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/paisley/rocdate/foundation/core/error"
	"github.com/paisley/rocdate/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Required   bool                   // Whether finding a config file is required
	Defaults   map[string]interface{} // Values used when a key is not configured
	LookupEnv  LookupFunc             // Environment source (default: os.LookupEnv)
}

// DefaultDiscoveryOptions searches the working directory, ./configs and
// the user config directory for rocdate.{toml,yaml,yml}.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./configs"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "rocdate"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"rocdate"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
		Defaults:   DefaultValues(),
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, a Config holding only the defaults is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
		LookupEnv: options.LookupEnv,
	}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return FromDefaults(loadOptions), nil
	}

	cfg, err := LoadWithOptions(path, loadOptions)
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file but failed to load it").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	if path, ok := filex.FirstFile(candidates); ok {
		return path, nil
	}
	return "", mdwerror.New("no configuration file found").
		WithCode(mdwerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searched", candidates)
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	names := options.Filenames
	if len(names) == 0 {
		names = []string{"rocdate"}
	}
	exts := options.Extensions
	if len(exts) == 0 {
		exts = []string{".toml", ".yaml", ".yml"}
	}

	var files []string
	for _, dir := range paths {
		for _, name := range names {
			for _, ext := range exts {
				files = append(files, filepath.Join(dir, name+ext))
			}
		}
	}
	return files
}
