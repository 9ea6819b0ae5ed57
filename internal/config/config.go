// Package config loads greenspot settings from defaults, an optional YAML
// file and GREENSPOT_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables read by Load.
	EnvPrefix = "GREENSPOT_"

	maxConfigFileSize = 1024 * 1024
)

type Config struct {
	DB   DBConfig   `koanf:"db"`
	Log  LogConfig  `koanf:"log"`
	HTTP HTTPConfig `koanf:"http"`
	LLM  LLMConfig  `koanf:"llm"`
}

type DBConfig struct {
	Path string `koanf:"path"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// UseCases enables the service_use_case log line per service call.
	UseCases bool `koanf:"use_cases"`
}

type HTTPConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// LLMConfig selects an Ollama model for chat. When disabled, chat uses the
// built-in keyword replies.
type LLMConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Endpoint   string `koanf:"endpoint"`
	Model      string `koanf:"model"`
	TimeoutMs  int    `koanf:"timeout_ms"`
	MaxRetries int    `koanf:"max_retries"`
}

// Addr returns host:port for the HTTP listener.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// HomeDir returns ~/.greenspot.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".greenspot"), nil
}

// Default returns the built-in settings. The database lives next to the
// config file under ~/.greenspot.
func Default() Config {
	dbPath := "greenspot.db"
	if dir, err := HomeDir(); err == nil {
		dbPath = filepath.Join(dir, "greenspot.db")
	}
	return Config{
		DB:   DBConfig{Path: dbPath},
		Log:  LogConfig{Level: "warn", Format: "text", UseCases: false},
		HTTP: HTTPConfig{Host: "127.0.0.1", Port: 8080},
		LLM: LLMConfig{
			Endpoint:   "http://localhost:11434",
			Model:      "llama3.2",
			TimeoutMs:  10000,
			MaxRetries: 1,
		},
	}
}

// Load builds the configuration. An empty path means ~/.greenspot/config.yaml,
// which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		dir, err := HomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	content, err := readConfigFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	case err != nil:
		return nil, err
	default:
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps GREENSPOT_LOG_USE_CASES to log.use_cases. Only the first
// underscore after the prefix separates section from field.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("checking config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return content, nil
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DB.Path) == "" {
		errs = append(errs, errors.New("db.path is required"))
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level))
	}
	c.Log.Format = strings.ToLower(c.Log.Format)
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Errorf("log.format %q must be text or json", c.Log.Format))
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port %d out of range", c.HTTP.Port))
	}
	if c.LLM.Enabled {
		if strings.TrimSpace(c.LLM.Endpoint) == "" || strings.TrimSpace(c.LLM.Model) == "" {
			errs = append(errs, errors.New("llm.endpoint and llm.model are required when llm.enabled is set"))
		}
		if c.LLM.TimeoutMs <= 0 {
			errs = append(errs, fmt.Errorf("llm.timeout_ms %d must be positive", c.LLM.TimeoutMs))
		}
	}
	if c.LLM.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("llm.max_retries %d must not be negative", c.LLM.MaxRetries))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
