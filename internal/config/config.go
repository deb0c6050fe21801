package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
)

// Transport modes.
const (
	TransportHTTP           = "http"
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
)

// Config holds all server configuration loaded from a YAML file,
// environment variables and CLI flags.
type Config struct {
	Server struct {
		Transport string `yaml:"transport"`
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
	} `yaml:"server"`
	LogLevel    string   `yaml:"log_level"`
	CORSOrigins []string `yaml:"cors_origins"`
	ConfigFile  string   `yaml:"-"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Transport = TransportHTTP
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 5000
	cfg.LogLevel = "info"
	cfg.CORSOrigins = []string{"*"}
	return cfg
}

// Load reads configuration from the process arguments and environment.
// Precedence, lowest first: defaults, YAML file, environment variables, CLI flags.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("rgb-split", flag.ContinueOnError)
	configFile := fs.String("config", os.Getenv("RGBSPLIT_CONFIG"), "Path to a YAML config file")
	transport := fs.String("transport", "", "Transport mode: http, stdio or streamable-http")
	host := fs.String("host", "", "Interface to listen on")
	port := fs.Int("port", 0, "Port to listen on")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")
	corsOrigins := fs.String("cors-origins", "", "Allowed CORS origins (comma-separated, * for any)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()

	if *configFile != "" {
		if err := cfg.loadFile(*configFile); err != nil {
			return nil, err
		}
		cfg.ConfigFile = *configFile
	}

	// Environment variables
	if v := os.Getenv("RGBSPLIT_TRANSPORT"); v != "" {
		cfg.Server.Transport = v
	}
	if v := os.Getenv("RGBSPLIT_HOST"); v != "" {
		cfg.Server.Host = v
	}
	portStr := os.Getenv("RGBSPLIT_PORT")
	if portStr == "" {
		portStr = os.Getenv("PORT")
	}
	if portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", portStr, err)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RGBSPLIT_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	// CLI flags override everything, but only when explicitly given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "transport":
			cfg.Server.Transport = *transport
		case "host":
			cfg.Server.Host = *host
		case "port":
			cfg.Server.Port = *port
		case "log-level":
			cfg.LogLevel = *logLevel
		case "cors-origins":
			cfg.CORSOrigins = splitList(*corsOrigins)
		}
	})

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Transport {
	case TransportHTTP, TransportStdio, TransportStreamableHTTP:
	default:
		return fmt.Errorf("unknown transport %q — expected http, stdio or streamable-http", c.Server.Transport)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Server.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if len(c.CORSOrigins) == 0 {
		return errors.New("at least one CORS origin is required (use * to allow any)")
	}
	return nil
}

// Addr returns the host:port the HTTP listener binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
