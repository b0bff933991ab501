package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/easel"
)

//go:embed configs/easel.yaml
var defaultConfigYAML []byte

// localConfigPath is searched when no --config is given.
const localConfigPath = "configs/easel.yaml"

// Size is a width and height in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the CLI configuration file.
type Config struct {
	Title         string `yaml:"title"`
	Window        Size   `yaml:"window"`
	Virtual       Size   `yaml:"virtual"`
	FrameSkip     int    `yaml:"frame_skip"`
	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshot_dir"`

	// Source is where the configuration was loaded from.
	Source string `yaml:"-"`
}

// builtinSource names the embedded configuration.
const builtinSource = "built-in"

// defaultConfig is used when even the embedded file cannot be parsed.
func defaultConfig() Config {
	return Config{
		Source:        builtinSource,
		Title:         "easel demo",
		Window:        Size{easel.DefaultVirtualWidth, easel.DefaultVirtualHeight},
		Virtual:       Size{easel.DefaultVirtualWidth, easel.DefaultVirtualHeight},
		ScreenshotDir: easel.DefaultScreenshotDir,
	}
}

// loadConfig loads the configuration.
// Search order: customPath -> ./configs/easel.yaml -> embedded default
func loadConfig(customPath string) (Config, error) {
	cfg := defaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg.normalized(), nil
	}

	if data, err := os.ReadFile(localConfigPath); err == nil {
		local := cfg
		if err := yaml.Unmarshal(data, &local); err == nil {
			local.Source = localConfigPath
			return local.normalized(), nil
		}
		logger.Warn("ignoring unparsable config", "path", localConfigPath)
	}

	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return defaultConfig(), nil
	}
	return cfg.normalized(), nil
}

// normalized fills zero sizes with defaults.
func (c Config) normalized() Config {
	if c.Virtual.Width <= 0 || c.Virtual.Height <= 0 {
		c.Virtual = Size{easel.DefaultVirtualWidth, easel.DefaultVirtualHeight}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window = c.Virtual
	}
	if c.FrameSkip < 0 {
		c.FrameSkip = 0
	}
	return c
}
