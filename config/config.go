// Package config holds the pipeline configuration for apkextract.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/dendrascience/apkextract/util"
)

const (
	defaultArchivePath = "Durood sharif with audio.apk"
	defaultOutputDir   = "extracted_apk"
	defaultLogLevel    = "info"
)

// Config is the explicit input of an extract-and-organize run.
type Config struct {
	ArchivePath string `toml:"archive_path"`
	OutputDir   string `toml:"output_dir"`
	LogLevel    string `toml:"log_level"`
}

// Default returns the reference invocation.
func Default() Config {
	return Config{
		ArchivePath: defaultArchivePath,
		OutputDir:   defaultOutputDir,
		LogLevel:    defaultLogLevel,
	}
}

// Load reads the TOML file at path on top of Default. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.ArchivePath = strings.TrimSpace(c.ArchivePath)
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// Validate checks that both paths are set and the log level is known.
func (c Config) Validate() error {
	if c.ArchivePath == "" {
		return util.ErrMissingArchivePath
	}
	if c.OutputDir == "" {
		return util.ErrMissingOutputDir
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
