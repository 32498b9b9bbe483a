// Package config loads wordtrie settings from a TOML file.
//
// The default location follows XDG: $XDG_CONFIG_HOME/wordtrie/config.toml,
// falling back to ~/.config/wordtrie/config.toml. A missing default file is
// not an error; every field has a default. Command-line flags override
// values read here.
//
// The Gemini API key is never stored in the file. [GeneratorConfig.APIKeyEnv]
// names the environment variable to read it from (GOOGLE_API_KEY by default).
//
// Example:
//
//	theme = "space"
//	count = 40
//
//	[generator]
//	model = "gemini-2.5-flash"
//	timeout = "20s"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordtrie/pkg/errors"
	"github.com/matzehuels/wordtrie/pkg/render"
	"github.com/matzehuels/wordtrie/pkg/words"
)

const (
	appName  = "wordtrie"
	fileName = "config.toml"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the full set of user settings.
type Config struct {
	Theme     string          `toml:"theme"`
	Count     int             `toml:"count"`
	Generator GeneratorConfig `toml:"generator"`
	Cache     CacheConfig     `toml:"cache"`
	Render    RenderConfig    `toml:"render"`
	Server    ServerConfig    `toml:"server"`
}

// GeneratorConfig configures the Gemini word source.
type GeneratorConfig struct {
	Model     string        `toml:"model"`
	Endpoint  string        `toml:"endpoint"`
	APIKeyEnv string        `toml:"api_key_env"`
	Timeout   time.Duration `toml:"timeout"`
}

// CacheConfig selects and tunes the word list cache.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	TTL       time.Duration `toml:"ttl"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr"`
	RedisDB   int           `toml:"redis_db"`
}

// RenderConfig holds graph output defaults.
type RenderConfig struct {
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme: words.DefaultTheme,
		Count: 30,
		Generator: GeneratorConfig{
			Model:     words.DefaultModel,
			Endpoint:  words.DefaultEndpoint,
			APIKeyEnv: words.APIKeyEnv,
			Timeout:   30 * time.Second,
		},
		Cache: CacheConfig{
			Backend:   CacheFile,
			TTL:       words.DefaultTTL,
			RedisAddr: "localhost:6379",
		},
		Render: RenderConfig{
			Format: string(render.FormatSVG),
			Output: "wordtrie",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads path over the defaults and validates the result. Unknown keys
// are rejected so typos do not go unnoticed.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the file at [DefaultPath], returning defaults when it
// does not exist.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := errors.ValidateTheme(c.Theme); err != nil {
		return err
	}
	if err := errors.ValidateCount(c.Count); err != nil {
		return err
	}
	if c.Generator.Model == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "generator.model must not be empty")
	}
	if c.Generator.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "generator.timeout must not be negative")
	}
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend %q: want file, redis or none", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if _, err := render.ParseFormats(c.Render.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.format")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	return nil
}

// APIKey reads the Gemini key from the configured environment variable.
func (c *Config) APIKey() string {
	return os.Getenv(c.Generator.APIKeyEnv)
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
