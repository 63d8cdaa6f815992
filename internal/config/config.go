// Package config resolves the server configuration from flags, environment variables and .env
// files. Environment variables use the COLSTORE_ prefix with dashes replaced by underscores
// (e.g. COLSTORE_GRPC_PORT=9090).
package config

import (
	"crypto/tls"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"strings"
	"time"
)

const EnvPrefix = "colstore"

// Keys shared by flags, environment variables and .env files.
const (
	KeyAddress        = "address"
	KeyPort           = "port"
	KeyMaxConnections = "max-connections"
	KeyMaxBufferSize  = "max-buffer-size"
	KeyIOTimeout      = "io-timeout"
	KeyTLS            = "tls"
	KeyCertFile       = "cert-file"
	KeyKeyFile        = "key-file"
	KeyGRPCPort       = "grpc-port"
	KeyCDCPort        = "cdc-port"
	KeyCDCBufferSize  = "cdc-buffer-size"
	KeyMetricsPort    = "metrics-port"
	KeyShards         = "shards"
	KeyMaxVersions    = "max-versions"
	KeyLogLevel       = "log-level"
	KeyStopTimeout    = "stop-timeout"
)

type Config struct {
	Address        string
	Port           int
	MaxConnections int
	MaxBufferSize  int
	IOTimeout      time.Duration

	EnableTLS bool
	CertFile  string
	KeyFile   string

	// GRPCPort, CDCPort and MetricsPort disable their listener when 0.
	GRPCPort      int
	CDCPort       int
	CDCBufferSize int
	MetricsPort   int

	ShardCount  int
	MaxVersions int

	LogLevel    string
	StopTimeout time.Duration
}

// RegisterFlags adds every configuration key to the flag set with its default value.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyAddress, "0.0.0.0", "Address every listener binds to")
	flags.Int(KeyPort, 9443, "Port of the text protocol listener")
	flags.Int(KeyMaxConnections, 1000, "Maximum number of concurrent text protocol connections")
	flags.Int(KeyMaxBufferSize, 4096, "Largest text protocol request in bytes")
	flags.Duration(KeyIOTimeout, 5*time.Second, "Time a text protocol client has to send its request")
	flags.Bool(KeyTLS, false, "Serve the text protocol over TLS")
	flags.String(KeyCertFile, "", "PEM certificate used when TLS is enabled")
	flags.String(KeyKeyFile, "", "PEM private key used when TLS is enabled")
	flags.Int(KeyGRPCPort, 9090, "Port of the gRPC LitetableService (0 disables it)")
	flags.Int(KeyCDCPort, 9091, "Port of the CDC stream service (0 disables it)")
	flags.Int(KeyCDCBufferSize, 100000, "Number of changes queued for CDC subscribers")
	flags.Int(KeyMetricsPort, 9100, "Port of the Prometheus /metrics endpoint (0 disables it)")
	flags.Int(KeyShards, 16, "Number of lock shards of the store")
	flags.Int(KeyMaxVersions, 5, "Number of versions retained per row key")
	flags.String(KeyLogLevel, "info", "Log level (debug, info, warn, error)")
	flags.Duration(KeyStopTimeout, 10*time.Second, "Time allowed for a graceful shutdown")
}

// LoadEnv reads .env and .env.local when present and makes viper consult COLSTORE_ variables.
// Existing environment variables are never overwritten.
func LoadEnv(v *viper.Viper) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load binds the flag set to v and reads the resolved configuration. Environment variables take
// precedence over flag defaults; flags set on the command line take precedence over both.
func Load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := &Config{
		Address:        v.GetString(KeyAddress),
		Port:           v.GetInt(KeyPort),
		MaxConnections: v.GetInt(KeyMaxConnections),
		MaxBufferSize:  v.GetInt(KeyMaxBufferSize),
		IOTimeout:      v.GetDuration(KeyIOTimeout),
		EnableTLS:      v.GetBool(KeyTLS),
		CertFile:       v.GetString(KeyCertFile),
		KeyFile:        v.GetString(KeyKeyFile),
		GRPCPort:       v.GetInt(KeyGRPCPort),
		CDCPort:        v.GetInt(KeyCDCPort),
		CDCBufferSize:  v.GetInt(KeyCDCBufferSize),
		MetricsPort:    v.GetInt(KeyMetricsPort),
		ShardCount:     v.GetInt(KeyShards),
		MaxVersions:    v.GetInt(KeyMaxVersions),
		LogLevel:       strings.ToLower(v.GetString(KeyLogLevel)),
		StopTimeout:    v.GetDuration(KeyStopTimeout),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errGrp []error

	if c.Address == "" {
		errGrp = append(errGrp, errors.New("address is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errGrp = append(errGrp, fmt.Errorf("invalid port: %d", c.Port))
	}
	for key, port := range map[string]int{
		KeyGRPCPort:    c.GRPCPort,
		KeyCDCPort:     c.CDCPort,
		KeyMetricsPort: c.MetricsPort,
	} {
		if port < 0 || port > 65535 {
			errGrp = append(errGrp, fmt.Errorf("invalid %s: %d", key, port))
		}
	}
	if c.MaxConnections <= 0 {
		errGrp = append(errGrp, errors.New("max connections must be positive"))
	}
	if c.MaxBufferSize <= 0 {
		errGrp = append(errGrp, errors.New("max buffer size must be positive"))
	}
	if c.IOTimeout <= 0 {
		errGrp = append(errGrp, errors.New("io timeout must be positive"))
	}
	if c.EnableTLS && (c.CertFile == "" || c.KeyFile == "") {
		errGrp = append(errGrp, errors.New("cert file and key file are required when TLS is enabled"))
	}
	if c.ShardCount <= 0 {
		errGrp = append(errGrp, errors.New("shards must be positive"))
	}
	if c.MaxVersions <= 0 {
		errGrp = append(errGrp, errors.New("max versions must be positive"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errGrp = append(errGrp, fmt.Errorf("invalid log level: %s", c.LogLevel))
	}
	if c.StopTimeout <= 0 {
		errGrp = append(errGrp, errors.New("stop timeout must be positive"))
	}

	return errors.Join(errGrp...)
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Certificate loads the TLS key pair. It returns nil when TLS is disabled.
func (c *Config) Certificate() (*tls.Certificate, error) {
	if !c.EnableTLS {
		return nil, nil
	}
	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	return &cert, nil
}
