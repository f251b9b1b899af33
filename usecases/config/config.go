//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

// Package config resolves toolkit configuration from an optional
// YAML/JSON file plus TEXTKIT_* environment overrides.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/textkit/textkit/entities/errorcompounder"
)

// DefaultConfigFile is used when no config file is provided.
const DefaultConfigFile = "./textkit.conf.yaml"

const (
	DefaultLang      = "en"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultWikimediaRoot is where Wikimedia publishes its weekly
// CirrusSearch content dumps.
const DefaultWikimediaRoot = "https://dumps.wikimedia.org/other/cirrussearch/"

type Config struct {
	// DataDir is where downloaded datasets and models live.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	DefaultLang string `json:"default_lang" yaml:"default_lang"`

	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`

	Download Download `json:"download" yaml:"download"`
}

type Download struct {
	WikimediaRoot string `json:"wikimedia_root" yaml:"wikimedia_root"`
	// ReleasesRoot hosts the versioned capitol-words and
	// lang-identifier artifacts.
	ReleasesRoot string `json:"releases_root" yaml:"releases_root"`
}

// Defaults returns a config with every field at its default value.
func Defaults() Config {
	return Config{
		DataDir:     defaultDataDir(),
		DefaultLang: DefaultLang,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		Download: Download{
			WikimediaRoot: DefaultWikimediaRoot,
			ReleasesRoot:  "https://github.com/textkit/textkit-data/releases/download/",
		},
	}
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "textkit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "textkit-data")
	}
	return filepath.Join(home, ".local", "share", "textkit")
}

// Load builds the effective config: defaults, then the file (if any),
// then environment overrides, then validation.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := cfg.parseFile(path); err != nil {
			return Config{}, err
		}
	} else if _, err := os.Stat(DefaultConfigFile); err == nil {
		if err := cfg.parseFile(DefaultConfigFile); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) parseFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config file %q", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, c)
	default:
		return errors.Errorf("config file %q must end in .json, .yaml or .yml", path)
	}
	if err != nil {
		return errors.Wrapf(err, "parse config file %q", path)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TEXTKIT_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TEXTKIT_DEFAULT_LANG"); v != "" {
		c.DefaultLang = v
	}
	if v := os.Getenv("TEXTKIT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("TEXTKIT_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("TEXTKIT_WIKIMEDIA_ROOT"); v != "" {
		c.Download.WikimediaRoot = v
	}
	if v := os.Getenv("TEXTKIT_RELEASES_ROOT"); v != "" {
		c.Download.ReleasesRoot = v
	}
}

func (c *Config) Validate() error {
	ec := errorcompounder.New()

	if c.DataDir == "" {
		ec.Addf("data_dir must not be empty")
	}
	if len(c.DefaultLang) != 2 {
		ec.Addf("default_lang must be a two-letter code, got: %q", c.DefaultLang)
	}
	switch c.LogLevel {
	case "panic", "fatal", "error", "warn", "warning", "info", "debug", "trace":
	default:
		ec.Addf("log_level %q not recognized", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		ec.Addf("log_format must be \"text\" or \"json\", got: %q", c.LogFormat)
	}
	if c.Download.WikimediaRoot == "" {
		ec.Addf("download.wikimedia_root must not be empty")
	}
	if c.Download.ReleasesRoot == "" {
		ec.Addf("download.releases_root must not be empty")
	}

	return ec.ToError()
}
