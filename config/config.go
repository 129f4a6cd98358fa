package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the data directory.
const FileName = "startpage.yml"

// Config is the application configuration: where state lives, where the
// server listens, and which endpoints the weather lookups use.
type Config struct {
	DataDir     string `yaml:"data_dir" koanf:"data_dir"`
	ListenAddr  string `yaml:"listen_addr" koanf:"listen_addr"`
	OpenBrowser bool   `yaml:"open_browser" koanf:"open_browser"`
	GeocoderURL string `yaml:"geocoder_url" koanf:"geocoder_url"`
	ForecastURL string `yaml:"forecast_url" koanf:"forecast_url"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataDir:    ".",
		ListenAddr: ":8080",
	}
}

// Load reads the YAML config from the data directory, then overlays
// STARTPAGE_* environment variables. A missing file yields defaults.
func Load(dataDir string) (Config, error) {
	k := koanf.New(".")
	cfg := Default()

	path := filepath.Join(dataDir, FileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("STARTPAGE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "STARTPAGE_"))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = Default().ListenAddr
	}

	return cfg, nil
}

// Save writes the configuration as YAML into its data directory.
func Save(cfg Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(cfg.DataDir, FileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
