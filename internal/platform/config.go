package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// FlagsConfig holds boolean switches for the app.
type FlagsConfig struct {
	// RuntimeMetrics registers the Go and process collectors next to the
	// app metrics.
	RuntimeMetrics bool
}

// DelayConfig bounds the simulated work on the home page.
type DelayConfig struct {
	Min time.Duration
	Max time.Duration
}

// AppConfig contains the configuration for the app.
type AppConfig struct {
	Flags      *FlagsConfig
	HTTPSrvCfg *HTTPServerConfig
	DelayCfg   *DelayConfig
	LogLevel   slog.Level
}

// LoadAppConfig loads an optional dotenv file, then builds an AppConfig from
// the environment on top of the defaults.
func LoadAppConfig() (*AppConfig, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv applies the variables visible through lookup to the
// defaults. It does not validate the result.
func ConfigFromEnv(lookup func(string) (string, bool)) (*AppConfig, error) {
	cfg := &AppConfig{
		Flags:      defaultFlagsCfg(),
		HTTPSrvCfg: defaultHTTPServerCfg(),
		DelayCfg:   defaultDelayCfg(),
		LogLevel:   slog.LevelInfo,
	}

	if v, ok := lookup("HOST"); ok {
		cfg.HTTPSrvCfg.Host = v
	}
	if v, ok := lookup("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT: %w", err)
		}
		cfg.HTTPSrvCfg.Port = port
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"READ_TIMEOUT", &cfg.HTTPSrvCfg.ReadTimeout},
		{"WRITE_TIMEOUT", &cfg.HTTPSrvCfg.WriteTimeout},
		{"IDLE_TIMEOUT", &cfg.HTTPSrvCfg.IdleTimeout},
		{"DELAY_MIN", &cfg.DelayCfg.Min},
		{"DELAY_MAX", &cfg.DelayCfg.Max},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v, ok := lookup("TLS_CERT_FILE"); ok {
		cfg.HTTPSrvCfg.CertFile = v
	}
	if v, ok := lookup("TLS_KEY_FILE"); ok {
		cfg.HTTPSrvCfg.KeyFile = v
	}
	cfg.HTTPSrvCfg.EnableTLS = cfg.HTTPSrvCfg.CertFile != "" || cfg.HTTPSrvCfg.KeyFile != ""

	if v, ok := lookup("RUNTIME_METRICS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("RUNTIME_METRICS: %w", err)
		}
		cfg.Flags.RuntimeMetrics = b
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

// Validate reports the first inconsistency in the config.
func (c *AppConfig) Validate() error {
	srv := c.HTTPSrvCfg
	if srv.Port < 1 || srv.Port > 65535 {
		return fmt.Errorf("port %d out of range", srv.Port)
	}
	if srv.EnableTLS && (srv.CertFile == "" || srv.KeyFile == "") {
		return errors.New("TLS needs both a certificate and a key file")
	}
	if c.DelayCfg.Min < 0 || c.DelayCfg.Max < 0 {
		return errors.New("delay bounds must not be negative")
	}
	if c.DelayCfg.Min > c.DelayCfg.Max {
		return fmt.Errorf("delay min %s is greater than max %s", c.DelayCfg.Min, c.DelayCfg.Max)
	}
	return nil
}

func defaultFlagsCfg() *FlagsConfig {
	return &FlagsConfig{
		RuntimeMetrics: false,
	}
}

// defaultHTTPServerCfg listens on every interface, port 5000, without
// timeouts.
func defaultHTTPServerCfg() *HTTPServerConfig {
	return &HTTPServerConfig{
		Host: "0.0.0.0",
		Port: 5000,
	}
}

func defaultDelayCfg() *DelayConfig {
	return &DelayConfig{
		Min: 100 * time.Millisecond,
		Max: 300 * time.Millisecond,
	}
}
