// Copyright (c) 2025 SysMonitor authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate tests from any real config in the user's home directory
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestIntervalResolution(t *testing.T) {
	isolateHome(t)

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"default", nil, DefaultInterval},
		{"long form", []string{"--interval", "30"}, 30},
		{"short form", []string{"-i", "12"}, 12},
		{"equals form", []string{"--interval=7"}, 7},
		{"non-numeric", []string{"--interval", "soon"}, DefaultInterval},
		{"zero", []string{"--interval", "0"}, DefaultInterval},
		{"negative", []string{"-i", "-3"}, DefaultInterval},
		{"missing value", []string{"--interval"}, DefaultInterval},
		{"last one wins", []string{"-i", "3", "--interval", "9"}, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Resolve(tc.args)
			assert.Equal(t, tc.want, cfg.Interval)
		})
	}
}

func TestLogFileIsAbsolute(t *testing.T) {
	isolateHome(t)

	cfg := Resolve([]string{"--logfile", "mon.log"})
	require.True(t, filepath.IsAbs(cfg.LogFile))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "mon.log"), cfg.LogFile)

	cfg = Resolve(nil)
	assert.True(t, filepath.IsAbs(cfg.LogFile))
	assert.Equal(t, DefaultLogFile, filepath.Base(cfg.LogFile))

	abs := filepath.Join(t.TempDir(), "x.log")
	cfg = Resolve([]string{"-f", abs})
	assert.Equal(t, abs, cfg.LogFile)
}

func TestVerboseFlag(t *testing.T) {
	isolateHome(t)

	assert.False(t, Resolve(nil).Verbose)
	assert.True(t, Resolve([]string{"--verbose"}).Verbose)
	assert.True(t, Resolve([]string{"-v"}).Verbose)
}

func TestUnknownArgumentsIgnored(t *testing.T) {
	isolateHome(t)

	cfg := Resolve([]string{"--bogus", "x", "-q", "stray", "--interval", "8"})
	assert.Equal(t, 8, cfg.Interval)
	assert.False(t, cfg.Verbose)
}

func TestConfigFile(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: 30\nlogfile: /var/log/mon.log\nverbose: true\n"), 0644))

	cfg := Resolve([]string{"--config", path})
	assert.Equal(t, 30, cfg.Interval)
	assert.Equal(t, "/var/log/mon.log", cfg.LogFile)
	assert.True(t, cfg.Verbose)
}

func TestArgsOverrideConfigFile(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: 30\n"), 0644))

	cfg := Resolve([]string{"-c", path, "--interval", "10"})
	assert.Equal(t, 10, cfg.Interval)
}

func TestMalformedConfigFileIgnored(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0644))

	cfg := Resolve([]string{"--config", path})
	assert.Equal(t, DefaultInterval, cfg.Interval)
}

func TestHomeLocationConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".sysmonitor")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("interval: 42\n"), 0644))

	cfg := Resolve(nil)
	assert.Equal(t, 42, cfg.Interval)
}
