// Copyright (c) 2025 SysMonitor authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultInterval is the sampling interval in seconds used when none is
// configured or the configured value is unusable.
const DefaultInterval = 5

// DefaultLogFile is the log file used when none is configured, relative to
// the working directory.
const DefaultLogFile = "system_monitor.log"

// Config holds the monitor configuration. Resolved once at startup and
// immutable afterwards.
type Config struct {
	LogFile  string `yaml:"logfile"`
	Interval int    `yaml:"interval"` // seconds
	Verbose  bool   `yaml:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogFile:  DefaultLogFile,
		Interval: DefaultInterval,
		Verbose:  false,
	}
}

// Resolve builds the effective configuration from defaults, an optional YAML
// config file and the command-line arguments, in that order of precedence.
//
// Nothing here ever fails: malformed values fall back to whatever was
// resolved before them, unknown arguments are ignored. The returned log file
// path is always absolute.
func Resolve(args []string) *Config {
	cfg := DefaultConfig()

	if path := configFilePath(args); path != "" {
		loadFile(path, cfg)
	}
	applyArgs(args, cfg)

	cfg.LogFile = absolutize(cfg.LogFile)
	return cfg
}

// configFilePath returns the config file to load: an explicit --config
// argument wins, otherwise the first of the standard locations that exists.
func configFilePath(args []string) string {
	if p, ok := argValue(args, "--config", "-c"); ok {
		return expandHome(p)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(home, ".sysmonitor", "config.yaml")
		if _, err := os.Stat(userPath); err == nil {
			return userPath
		}
	}

	sysPath := "/etc/sysmonitor/config.yaml"
	if _, err := os.Stat(sysPath); err == nil {
		return sysPath
	}
	return ""
}

// loadFile overlays values from a YAML file onto cfg. A missing or malformed
// file leaves cfg untouched.
func loadFile(path string, cfg *Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc Config
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}
	if fc.Interval > 0 {
		cfg.Interval = fc.Interval
	}
	if fc.LogFile != "" {
		cfg.LogFile = expandHome(fc.LogFile)
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}

// applyArgs overlays command-line arguments onto cfg. Recognized options:
//
//	--interval|-i <seconds>   positive integer; anything else keeps the prior value
//	--logfile|-f <path>
//	--verbose|-v
//	--config|-c <path>        consumed by configFilePath, skipped here
//
// Both "--flag value" and "--flag=value" forms are accepted. Anything
// unrecognized is ignored.
func applyArgs(args []string, cfg *Config) {
	for i := 0; i < len(args); i++ {
		name, val, hasVal := splitArg(args[i])

		takeValue := func() (string, bool) {
			if hasVal {
				return val, true
			}
			if i+1 < len(args) {
				i++
				return args[i], true
			}
			return "", false
		}

		switch name {
		case "--interval", "-i":
			if v, ok := takeValue(); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
					cfg.Interval = n
				}
			}
		case "--logfile", "-f":
			if v, ok := takeValue(); ok && v != "" {
				cfg.LogFile = expandHome(v)
			}
		case "--verbose", "-v":
			cfg.Verbose = true
		case "--config", "-c":
			takeValue()
		}
	}
}

// argValue scans args for the given option names and returns its value.
func argValue(args []string, names ...string) (string, bool) {
	for i := 0; i < len(args); i++ {
		name, val, hasVal := splitArg(args[i])
		for _, n := range names {
			if name != n {
				continue
			}
			if hasVal {
				return val, true
			}
			if i+1 < len(args) {
				return args[i+1], true
			}
		}
	}
	return "", false
}

// splitArg splits "--flag=value" into name and value.
func splitArg(arg string) (name, val string, hasVal bool) {
	if idx := strings.IndexByte(arg, '='); idx >= 0 && strings.HasPrefix(arg, "-") {
		return arg[:idx], arg[idx+1:], true
	}
	return arg, "", false
}

// absolutize resolves path against the working directory.
func absolutize(path string) string {
	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return path
	}
	return abs
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
