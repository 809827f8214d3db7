package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when no other
// config file is named.
const DefaultConfigFile = "aoc.yaml"

// Config configures a run.
type Config struct {
	InputDir string `yaml:"input_dir"` // directory holding dayNN files
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		InputDir: "inputs",
		LogLevel: "info",
	}
}

// LoadConfig reads the YAML config at path. A missing file is not an
// error and yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("reading config: %w", err)
	}
	cfg := def
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return def, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.InputDir = Or(cfg.InputDir, def.InputDir)
	cfg.LogLevel = Or(cfg.LogLevel, def.LogLevel)
	return cfg, nil
}

// Level returns the zap level named by c.LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
