package config

import (
	"github.com/janleigh/ms-dos-clone/display"
	"github.com/janleigh/ms-dos-clone/logging"
	"github.com/janleigh/ms-dos-clone/namespace"
)

// Config is the decoded configuration.
type Config struct {
	Prompt Prompt      `json:"prompt"`
	Banner []string    `json:"banner"`
	Colors Colors      `json:"colors"`
	Log    Log         `json:"log"`
	Seed   *SeedConfig `json:"seed,omitempty"`
}

// Prompt controls the command prompt, rendered as drive + cwd + suffix.
type Prompt struct {
	Drive  string `json:"drive"`
	Suffix string `json:"suffix"`
}

// Colors holds the default text colors by palette name.
type Colors struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// Log configures the session logger.
type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// SeedConfig replaces the built-in boot contents.
type SeedConfig struct {
	Directories []string         `json:"directories,omitempty"`
	Files       []SeedFileConfig `json:"files,omitempty"`
	HostDir     string           `json:"hostDir,omitempty"`
}

// SeedFileConfig is one seeded file.
type SeedFileConfig struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ColorPair parses the configured colors.
func (c *Config) ColorPair() (fg, bg display.Color, err error) {
	if fg, err = display.ParseColor(c.Colors.Foreground); err != nil {
		return 0, 0, err
	}
	if bg, err = display.ParseColor(c.Colors.Background); err != nil {
		return 0, 0, err
	}
	return fg, bg, nil
}

// LogConfig converts the log section for logging.NewLogger.
func (c *Config) LogConfig() (logging.LogConfig, error) {
	level, err := logging.ParseLogLevel(c.Log.Level)
	if err != nil {
		return logging.LogConfig{}, err
	}
	cfg := logging.DefaultLogConfig()
	cfg.Level = level
	return cfg, nil
}

// NamespaceSeed returns the boot contents: the configured seed when one is
// given, the built-in set otherwise. HostDir is not part of the result;
// callers import it separately.
func (c *Config) NamespaceSeed() namespace.Seed {
	if c.Seed == nil {
		return namespace.DefaultSeed()
	}
	s := namespace.Seed{Directories: append([]string(nil), c.Seed.Directories...)}
	for _, f := range c.Seed.Files {
		s.Files = append(s.Files, namespace.SeedFile{Path: f.Path, Content: []byte(f.Content)})
	}
	return s
}

// HostDir returns the host directory to import at boot, if any.
func (c *Config) HostDir() string {
	if c.Seed == nil {
		return ""
	}
	return c.Seed.HostDir
}
