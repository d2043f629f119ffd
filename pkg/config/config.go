package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	General  GeneralConfig  `toml:"general"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Browse   BrowseConfig   `toml:"browse"`
	Hardware HardwareConfig `toml:"hardware"`
	Logging  LoggingConfig  `toml:"logging"`
}

type GeneralConfig struct {
	DataDir string `toml:"data_dir"`
}

type CatalogConfig struct {
	// Path optionally points at an extra catalog JSON file or directory
	// loaded after the embedded default catalog.
	Path string `toml:"path"`
	// UseEmbedded controls whether the built-in catalog is loaded.
	UseEmbedded bool `toml:"use_embedded"`
}

type BrowseConfig struct {
	PageSize int `toml:"page_size"`
}

type HardwareConfig struct {
	// Detect enables hardware profiling; when off, ranking is neutral.
	Detect        bool          `toml:"detect"`
	ProbeTimeout  string        `toml:"probe_timeout"`
	ProbeTimeoutD time.Duration `toml:"-"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".wollama")

	return &Config{
		General: GeneralConfig{
			DataDir: dataDir,
		},
		Catalog: CatalogConfig{
			Path:        "",
			UseEmbedded: true,
		},
		Browse: BrowseConfig{
			PageSize: 10,
		},
		Hardware: HardwareConfig{
			Detect:       true,
			ProbeTimeout: "2s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "",
		},
	}
}

func LoadFromFile(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expand path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}

	return cfg, nil
}

func (c *Config) postProcess() error {
	var err error

	if c.Hardware.ProbeTimeoutD, err = time.ParseDuration(c.Hardware.ProbeTimeout); err != nil {
		return fmt.Errorf("parse hardware.probe_timeout: %w", err)
	}

	if c.General.DataDir, err = expandPath(c.General.DataDir); err != nil {
		return fmt.Errorf("expand general.data_dir: %w", err)
	}

	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("expand catalog.path: %w", err)
	}

	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("expand logging.file: %w", err)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Browse.PageSize < 1 {
		return fmt.Errorf("browse.page_size must be at least 1, got %d", c.Browse.PageSize)
	}

	if c.Hardware.ProbeTimeoutD <= 0 {
		return fmt.Errorf("hardware.probe_timeout must be positive, got %s", c.Hardware.ProbeTimeout)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid logging level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("invalid logging format: %s (valid: json, text)", c.Logging.Format)
	}

	return nil
}

func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WOLLAMA_DATA_DIR"); v != "" {
		cfg.General.DataDir = v
	}
	if v := os.Getenv("WOLLAMA_CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("WOLLAMA_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Browse.PageSize = n
		}
	}
	if v := os.Getenv("WOLLAMA_HW_DETECT"); v != "" {
		cfg.Hardware.Detect = strings.ToLower(v) == "true" || v == "1"
	}
	if v := os.Getenv("WOLLAMA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WOLLAMA_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get user home directory: %w", err)
		}
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}

func Load(configPath string) (*Config, error) {
	var cfg *Config
	var err error

	if configPath != "" {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config from %s: %w", configPath, err)
		}
	} else {
		cfg = Default()
	}

	ApplyEnvOverrides(cfg)

	if err := cfg.postProcess(); err != nil {
		return nil, fmt.Errorf("post process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
