package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config mirrors tinyjava.toml. Every key is optional.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	IR          IRConfig          `toml:"ir"`
	Format      FormatConfig      `toml:"format"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type DiagnosticsConfig struct {
	Max   int    `toml:"max"`
	Color string `toml:"color"`
}

type IRConfig struct {
	Jobs     int    `toml:"jobs"`
	Cache    bool   `toml:"cache"`
	CacheDir string `toml:"cache_dir"`
}

type FormatConfig struct {
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
}

// Default is the configuration used when no file is found.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{Max: 100, Color: "auto"},
		Format:      FormatConfig{IndentWidth: 4},
	}
}

// Load decodes path on top of Default. A relative cache_dir is resolved
// against the config file's directory.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.IR.CacheDir != "" && !filepath.IsAbs(cfg.IR.CacheDir) {
		cfg.IR.CacheDir = filepath.Join(filepath.Dir(path), cfg.IR.CacheDir)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover loads the nearest tinyjava.toml above startDir, or returns
// Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) validate() error {
	switch c.Diagnostics.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[diagnostics].color must be auto, on or off, got %q", c.Diagnostics.Color)
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must not be negative")
	}
	if c.IR.Jobs < 0 {
		return fmt.Errorf("[ir].jobs must not be negative")
	}
	if c.Format.IndentWidth < 1 || c.Format.IndentWidth > 16 {
		return fmt.Errorf("[format].indent_width must be between 1 and 16, got %d", c.Format.IndentWidth)
	}
	return nil
}
