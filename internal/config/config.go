// Package config loads settings for the divelog client and share gateway.
//
// Sources are applied in order, later ones winning:
//
//	defaults -> YAML file (--config or DIVELOG_CONFIG) -> DIVELOG_* env -> flags
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the variable holding the YAML config path.
const EnvConfig = "DIVELOG_CONFIG"

// DefaultCloudURL is the public dive-log cloud.
const DefaultCloudURL = "https://cloud.subsurface-divelog.org"

// Client holds settings for cmd/client.
type Client struct {
	CloudURL     string        `yaml:"cloud_url"`
	DBPath       string        `yaml:"db_path"`
	Language     string        `yaml:"language"`       // пусто - из LANG
	ShareBaseURL string        `yaml:"share_base_url"` // страница просмотра, куда добавляется #/single-dive/
	LogLevel     string        `yaml:"log_level"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
}

// Server holds settings for cmd/server.
type Server struct {
	Addr         string        `yaml:"addr"`
	CloudURL     string        `yaml:"cloud_url"`
	DBPath       string        `yaml:"db_path"`
	JWTSecret    string        `yaml:"jwt_secret"`
	ShareBaseURL string        `yaml:"share_base_url"`
	LogLevel     string        `yaml:"log_level"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	RateWindow   time.Duration `yaml:"rate_window"`
	RateLimit    int           `yaml:"rate_limit"`
	// CleanupInterval задает период удаления истекших сессий
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	// ShowVersion задается только флагом --version
	ShowVersion bool `yaml:"-"`
}

// DefaultClient returns the client defaults.
func DefaultClient() *Client {
	return &Client{
		CloudURL:     DefaultCloudURL,
		DBPath:       "divelog.db",
		ShareBaseURL: "http://localhost:8080/",
		LogLevel:     "warn",
		HTTPTimeout:  30 * time.Second,
	}
}

// DefaultServer returns the server defaults.
// JWTSecret is a development value and must be overridden in production.
func DefaultServer() *Server {
	return &Server{
		Addr:         ":8080",
		CloudURL:     DefaultCloudURL,
		DBPath:       "divelog-server.db",
		JWTSecret:    "dev-secret-change-me",
		ShareBaseURL: "http://localhost:8080/",
		LogLevel:     "info",
		SessionTTL:   24 * time.Hour,
		HTTPTimeout:  30 * time.Second,
		RateLimit:    100,
		RateWindow:   time.Minute,

		CleanupInterval: 10 * time.Minute,
	}
}

func (c *Client) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.CloudURL, "cloud", c.CloudURL, "dive-log cloud URL")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "path to local database")
	fs.StringVar(&c.Language, "lang", c.Language, "display language (en-US, fr-FR)")
	fs.StringVar(&c.ShareBaseURL, "share-base", c.ShareBaseURL, "base URL of shared dive links")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&c.HTTPTimeout, "timeout", c.HTTPTimeout, "HTTP timeout")
}

func (c *Client) applyEnv(getenv func(string) string) error {
	setString(&c.CloudURL, getenv("DIVELOG_CLOUD_URL"))
	setString(&c.DBPath, getenv("DIVELOG_DB"))
	setString(&c.Language, getenv("DIVELOG_LANG"))
	setString(&c.ShareBaseURL, getenv("DIVELOG_SHARE_BASE_URL"))
	setString(&c.LogLevel, getenv("DIVELOG_LOG_LEVEL"))
	return setDuration(&c.HTTPTimeout, "DIVELOG_HTTP_TIMEOUT", getenv)
}

func (s *Server) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&s.Addr, "addr", "a", s.Addr, "listen address")
	fs.StringVar(&s.CloudURL, "cloud", s.CloudURL, "dive-log cloud URL")
	fs.StringVar(&s.DBPath, "db", s.DBPath, "path to SQLite database")
	fs.StringVar(&s.JWTSecret, "jwt-secret", s.JWTSecret, "HMAC secret for session tokens")
	fs.StringVar(&s.ShareBaseURL, "share-base", s.ShareBaseURL, "base URL of shared dive links")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&s.SessionTTL, "session-ttl", s.SessionTTL, "session lifetime")
	fs.DurationVar(&s.HTTPTimeout, "timeout", s.HTTPTimeout, "timeout of requests to the cloud")
	fs.IntVar(&s.RateLimit, "rate-limit", s.RateLimit, "requests per client per window")
	fs.DurationVar(&s.RateWindow, "rate-window", s.RateWindow, "rate limit window")
	fs.DurationVar(&s.CleanupInterval, "cleanup-interval", s.CleanupInterval, "how often expired sessions are deleted")
	fs.BoolVar(&s.ShowVersion, "version", false, "print version and exit")
}

func (s *Server) applyEnv(getenv func(string) string) error {
	setString(&s.Addr, getenv("DIVELOG_ADDR"))
	setString(&s.CloudURL, getenv("DIVELOG_CLOUD_URL"))
	setString(&s.DBPath, getenv("DIVELOG_DB"))
	setString(&s.JWTSecret, getenv("DIVELOG_JWT_SECRET"))
	setString(&s.ShareBaseURL, getenv("DIVELOG_SHARE_BASE_URL"))
	setString(&s.LogLevel, getenv("DIVELOG_LOG_LEVEL"))

	if err := setDuration(&s.SessionTTL, "DIVELOG_SESSION_TTL", getenv); err != nil {
		return err
	}
	if err := setDuration(&s.HTTPTimeout, "DIVELOG_HTTP_TIMEOUT", getenv); err != nil {
		return err
	}
	if err := setDuration(&s.RateWindow, "DIVELOG_RATE_WINDOW", getenv); err != nil {
		return err
	}
	if err := setDuration(&s.CleanupInterval, "DIVELOG_CLEANUP_INTERVAL", getenv); err != nil {
		return err
	}
	if v := getenv("DIVELOG_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DIVELOG_RATE_LIMIT %q: %w", v, err)
		}
		s.RateLimit = n
	}
	return nil
}

// Validate checks values no component can work with.
func (s *Server) Validate() error {
	if s.JWTSecret == "" {
		return fmt.Errorf("jwt secret must not be empty")
	}
	if s.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", s.SessionTTL)
	}
	if s.RateLimit <= 0 || s.RateWindow <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d per %s", s.RateLimit, s.RateWindow)
	}
	if s.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %s", s.CleanupInterval)
	}
	return nil
}

// LoadClient builds the client config from args (without the program name)
// and the environment. It returns the remaining positional arguments.
func LoadClient(args []string, getenv func(string) string) (*Client, []string, error) {
	cfg := DefaultClient()
	rest, err := load(args, getenv, "divelog", cfg, cfg.bindFlags, cfg.applyEnv)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}

// LoadServer builds the server config from args and the environment.
func LoadServer(args []string, getenv func(string) string) (*Server, error) {
	cfg := DefaultServer()
	if _, err := load(args, getenv, "divelog-server", cfg, cfg.bindFlags, cfg.applyEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// load parses flags twice: first to find --config, then, after the file and
// the environment have been applied, to let explicit flags win.
func load(
	args []string,
	getenv func(string) string,
	name string,
	cfg any,
	bind func(*pflag.FlagSet),
	applyEnv func(func(string) string) error,
) ([]string, error) {
	configPath, err := configPathFromArgs(args, name, bind)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		configPath = getenv(EnvConfig)
	}
	if configPath != "" {
		if err := loadYAML(configPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(getenv); err != nil {
		return nil, err
	}

	fs := newFlagSet(name)
	fs.String("config", "", "path to YAML config file")
	bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

func configPathFromArgs(args []string, name string, bind func(*pflag.FlagSet)) (string, error) {
	fs := newFlagSet(name)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "path to YAML config file")
	// значения флагов из этого прохода перезапишутся во втором
	bind(fs)
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *configPath, nil
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	// всё после первой команды относится к ней
	fs.SetInterspersed(false)
	return fs
}

func loadYAML(path string, cfg any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string, getenv func(string) string) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

// NewLogger returns a text logger writing to w at the named level.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
