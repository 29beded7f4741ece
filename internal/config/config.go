package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultCarouselInterval = 4 * time.Second
	DefaultSigningKey       = "wave-local-session"
)

// Config represents the global ~/.wave/config.toml.
type Config struct {
	DefaultProfile string     `toml:"default_profile"`
	Appearance     Appearance `toml:"appearance"`
	Carousel       Carousel   `toml:"carousel"`
	Session        Session    `toml:"session"`
}

// Appearance overrides terminal theme detection when SystemTheme is set.
type Appearance struct {
	SystemTheme string `toml:"system_theme"`
}

// Carousel configures the services screen ad carousel.
type Carousel struct {
	Interval Duration `toml:"interval"`
}

// Session configures how local session tokens are signed.
type Session struct {
	SigningKey string `toml:"signing_key"`
}

// Duration is a time.Duration that round-trips through TOML as "4s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Defaults returns a config with every optional value filled in.
func Defaults() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Carousel.Interval.Duration <= 0 {
		c.Carousel.Interval.Duration = DefaultCarouselInterval
	}
	if c.Session.SigningKey == "" {
		c.Session.SigningKey = DefaultSigningKey
	}
}

// Load reads config from the given path. Returns nil config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault is Load with a fallback to Defaults on any error.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return Defaults()
	}
	return cfg
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
