// Package config loads plantlayout settings.
//
// Settings come from three places, later ones winning:
//
//  1. Built-in defaults ([Default])
//  2. A TOML file, by default $XDG_CONFIG_HOME/plantlayout/config.toml
//  3. Environment variables, including those in a .env file in the working
//     directory
//
// The API key for the text-generation service is read from PLANTLAYOUT_API_KEY,
// GEMINI_API_KEY or API_KEY, in that order.
package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lacima/plantlayout/pkg/errors"
)

// AppName is used for config and cache directories.
const AppName = "plantlayout"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config holds all settings.
type Config struct {
	// Study is the study file used when --study is not given. Empty means
	// the built-in Lacima study.
	Study string `toml:"study"`

	Cache   CacheConfig   `toml:"cache"`
	Advisor AdvisorConfig `toml:"advisor"`
	Server  ServerConfig  `toml:"server"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"` // file, redis or none
	Dir     string      `toml:"dir"`     // file backend; default $XDG_CACHE_HOME/plantlayout
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"` // key prefix for shared instances
}

// AdvisorConfig configures the text-generation service.
type AdvisorConfig struct {
	Model    string        `toml:"model"`
	Language string        `toml:"language"`
	Timeout  time.Duration `toml:"timeout"`
	APIKey   string        `toml:"api_key"`
}

// ServerConfig configures the HTTP dashboard.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend: CacheFile,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: AppName + ":",
			},
		},
		Advisor: AdvisorConfig{
			Model:    "gemini-3-flash-preview",
			Language: "Arabic",
			Timeout:  60 * time.Second,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 90 * time.Second,
		},
	}
}

// Load reads settings from path. An empty path means [DefaultPath], which
// may be missing; an explicit path must exist.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		err := cfg.decodeFile(path)
		if err != nil && (explicit || !errors.Is(err, errors.ErrCodeFileNotFound)) {
			return nil, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "%s: unknown settings: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// applyEnv overrides settings from the environment.
func (c *Config) applyEnv() {
	for _, name := range []string{"API_KEY", "GEMINI_API_KEY", "PLANTLAYOUT_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			c.Advisor.APIKey = v
		}
	}
	setString(&c.Study, "PLANTLAYOUT_STUDY")
	setString(&c.Cache.Backend, "PLANTLAYOUT_CACHE")
	setString(&c.Cache.Dir, "PLANTLAYOUT_CACHE_DIR")
	setString(&c.Cache.Redis.Addr, "PLANTLAYOUT_REDIS_ADDR")
	setString(&c.Cache.Redis.Password, "PLANTLAYOUT_REDIS_PASSWORD")
	if v, err := strconv.Atoi(os.Getenv("PLANTLAYOUT_REDIS_DB")); err == nil {
		c.Cache.Redis.DB = v
	}
	setString(&c.Advisor.Model, "PLANTLAYOUT_MODEL")
	setString(&c.Advisor.Language, "PLANTLAYOUT_LANGUAGE")
	setString(&c.Server.Addr, "PLANTLAYOUT_ADDR")
}

func setString(dst *string, name string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	backends := []string{CacheFile, CacheRedis, CacheNone}
	if !slices.Contains(backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidInput, "cache.backend: %q (must be one of: %s)", c.Cache.Backend, strings.Join(backends, ", "))
	}
	if c.Cache.Backend == CacheRedis && c.Cache.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache.redis.addr is required for the redis backend")
	}
	if c.Advisor.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "advisor.timeout must not be negative")
	}
	return nil
}

// Encode writes c as TOML. The API key is never written.
func Encode(w io.Writer, c *Config) error {
	out := *c
	out.Advisor.APIKey = ""
	return toml.NewEncoder(w).Encode(out)
}

// =============================================================================
// Paths
// =============================================================================

// DefaultPath returns the config file path using XDG standard
// (~/.config/plantlayout/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the file cache directory: the configured one, or the
// XDG standard location (~/.cache/plantlayout/).
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
