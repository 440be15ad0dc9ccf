package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RPC       RPCConfig       `mapstructure:"rpc"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RPCConfig describes the Bitcoin node endpoint. It is read once at startup
// and immutable afterwards.
type RPCConfig struct {
	URL          string        `mapstructure:"url"`
	User         string        `mapstructure:"user"`
	Password     string        `mapstructure:"password"`
	Network      string        `mapstructure:"network"`       // mainnet, testnet3, regtest, signet
	SourceWallet string        `mapstructure:"source_wallet"` // wallet that funds /api/send
	Timeout      time.Duration `mapstructure:"timeout"`       // per-request RPC timeout
}

// Host strips the scheme from the configured URL, returning the host[:port]
// form the RPC client expects. The rpc.url setting accepts both plain
// "host:port" and "http://host:port".
func (r RPCConfig) Host() (string, error) {
	raw := r.URL
	if !strings.Contains(raw, "://") {
		return raw, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing rpc url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("rpc url %q has no host", raw)
	}
	return u.Host, nil
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BGW_ (Bitcoind Gateway).
// Nested keys use underscore: BGW_SERVER_PORT, BGW_RPC_NETWORK, etc.
// The node credentials additionally bind to the conventional unprefixed
// variables RPC_URL, RPC_USER and RPC_PASSWORD.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("rpc.url", "")
	v.SetDefault("rpc.user", "")
	v.SetDefault("rpc.password", "")
	v.SetDefault("rpc.network", "mainnet")
	v.SetDefault("rpc.source_wallet", "default")
	v.SetDefault("rpc.timeout", "30s")
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.requests_per_second", 10)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BGW_RPC_NETWORK -> rpc.network
	v.SetEnvPrefix("BGW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Node credentials keep their conventional names.
	_ = v.BindEnv("rpc.url", "RPC_URL", "BGW_RPC_URL")
	_ = v.BindEnv("rpc.user", "RPC_USER", "BGW_RPC_USER")
	_ = v.BindEnv("rpc.password", "RPC_PASSWORD", "BGW_RPC_PASSWORD")

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks startup preconditions. A missing node endpoint is the one
// process-fatal condition.
func (c *Config) Validate() error {
	if c.RPC.URL == "" {
		return fmt.Errorf("rpc.url (RPC_URL) must be set")
	}
	if _, err := c.RPC.Host(); err != nil {
		return err
	}
	if c.RPC.User == "" || c.RPC.Password == "" {
		return fmt.Errorf("rpc.user (RPC_USER) and rpc.password (RPC_PASSWORD) must be set")
	}
	if c.RPC.SourceWallet == "" {
		return fmt.Errorf("rpc.source_wallet must be set")
	}
	return nil
}
