package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

// EnvPrefix is prepended to every environment override, e.g. TRAININGS_DB_HOST.
const EnvPrefix = "TRAININGS_"

type Config struct {
	Environment string `toml:"environment" env:"ENVIRONMENT, overwrite"`
	Host        string `toml:"host" env:"HOST, overwrite"`
	Port        int    `toml:"port" env:"PORT, overwrite"`
	// logging
	LogLevel      string `toml:"log_level" env:"LOG_LEVEL, overwrite"`
	LogsPath      string `toml:"logs_path" env:"LOGS_PATH, overwrite"`
	LogToStdout   bool   `toml:"log_to_stdout" env:"LOG_TO_STDOUT, overwrite"`
	LogFormatJSON bool   `toml:"log_format_json" env:"LOG_FORMAT_JSON, overwrite"`
	// telemetry
	PrometheusMetricsHost string `toml:"prometheus_metrics_host" env:"PROMETHEUS_HOST, overwrite"`
	PrometheusMetricsPort int    `toml:"prometheus_metrics_port" env:"PROMETHEUS_PORT, overwrite"`
	TracingEnabled        bool   `toml:"tracing_enabled" env:"TRACING_ENABLED, overwrite"`

	AllowedOrigins []string `toml:"allowed_origins" env:"ALLOWED_ORIGINS, overwrite"`

	DB     DBConfig     `toml:"db" env:", prefix=DB_"`
	Auth   AuthConfig   `toml:"auth" env:", prefix=AUTH_"`
	Media  MediaConfig  `toml:"media" env:", prefix=MEDIA_"`
	Redis  RedisConfig  `toml:"redis" env:", prefix=REDIS_"`
	Sentry SentryConfig `toml:"sentry" env:", prefix=SENTRY_"`
}

type DBConfig struct {
	Host             string `toml:"host" env:"HOST, overwrite"`
	Port             int    `toml:"port" env:"PORT, overwrite"`
	User             string `toml:"user" env:"USER, overwrite"`
	Password         string `toml:"password" env:"PASSWORD, overwrite"`
	Name             string `toml:"database" env:"DATABASE, overwrite"`
	SSL              bool   `toml:"ssl" env:"SSL, overwrite"`
	MaxConns         int32  `toml:"max_conns" env:"MAX_CONNS, overwrite"`
	CreateStructures bool   `toml:"create_structures" env:"CREATE_STRUCTURES, overwrite"`
}

type AuthConfig struct {
	Host                string        `toml:"host" env:"HOST, overwrite"`
	ValidateCredentials bool          `toml:"validate_credentials" env:"VALIDATE_CREDENTIALS, overwrite"`
	Timeout             time.Duration `toml:"timeout" env:"TIMEOUT, overwrite"`
	// roles allowed to create trainings
	CreatorRoles []string `toml:"creator_roles" env:"CREATOR_ROLES, overwrite"`
}

const (
	MediaBackendDisk = "disk"
	MediaBackendS3   = "s3"
)

type MediaConfig struct {
	Backend       string        `toml:"backend" env:"BACKEND, overwrite"`
	DiskRootPath  string        `toml:"disk_root_path" env:"DISK_ROOT_PATH, overwrite"`
	Timeout       time.Duration `toml:"timeout" env:"TIMEOUT, overwrite"`
	RetryAttempts uint          `toml:"retry_attempts" env:"RETRY_ATTEMPTS, overwrite"`

	S3Endpoint        string `toml:"s3_endpoint" env:"S3_ENDPOINT, overwrite"`
	S3Region          string `toml:"s3_region" env:"S3_REGION, overwrite"`
	S3Bucket          string `toml:"s3_bucket" env:"S3_BUCKET, overwrite"`
	S3AccessKeyID     string `toml:"s3_access_key_id" env:"S3_ACCESS_KEY_ID, overwrite"`
	S3SecretAccessKey string `toml:"s3_secret_access_key" env:"S3_SECRET_ACCESS_KEY, overwrite"`
}

type RedisConfig struct {
	Host string `toml:"host" env:"HOST, overwrite"`
	Port string `toml:"port" env:"PORT, overwrite"`
	// password only from env
	Password        string `toml:"-" env:"PASSWORD, overwrite"`
	RateLimitPerMin int    `toml:"rate_limit_per_min" env:"RATE_LIMIT_PER_MIN, overwrite"`
}

type SentryConfig struct {
	Enabled bool   `toml:"enabled" env:"ENABLED, overwrite"`
	DSN     string `toml:"dsn" env:"DSN, overwrite"`
}

func Default() *Config {
	return &Config{
		Environment:           "development",
		Host:                  "0.0.0.0",
		Port:                  8000,
		LogLevel:              "warn",
		LogToStdout:           true,
		PrometheusMetricsHost: "0.0.0.0",
		PrometheusMetricsPort: 9001,
		AllowedOrigins:        []string{"*"},
		DB: DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "backend",
			Password: "backend",
			Name:     "postgres",
			SSL:      true,
			MaxConns: 10,
		},
		Auth: AuthConfig{
			Host:                "auth-service.fiufit.svc.cluster.local:8002",
			ValidateCredentials: true,
			Timeout:             5 * time.Second,
			CreatorRoles:        []string{"user"},
		},
		Media: MediaConfig{
			Backend:       MediaBackendDisk,
			DiskRootPath:  "./media",
			Timeout:       10 * time.Second,
			RetryAttempts: 3,
			S3Region:      "us-east-1",
		},
		Redis: RedisConfig{
			Port:            "6379",
			RateLimitPerMin: 60,
		},
	}
}

// Load reads the env section of the TOML file at path (if it exists) over the defaults,
// then applies TRAININGS_* environment overrides.
func Load(env, path string) (*Config, error) {
	return LoadWithLookuper(context.Background(), env, path, envconfig.OsLookuper())
}

func LoadWithLookuper(ctx context.Context, env, path string, lookuper envconfig.Lookuper) (*Config, error) {
	section, err := sectionName(env)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Environment = section

	if path != "" {
		if err := decodeSection(path, section, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, lookuper),
	}); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Media.Backend {
	case MediaBackendDisk:
		if c.Media.DiskRootPath == "" {
			return errors.New("media disk root path not set")
		}
	case MediaBackendS3:
		if c.Media.S3Bucket == "" {
			return errors.New("media s3 bucket not set")
		}
	default:
		return fmt.Errorf("unknown media backend: %s", c.Media.Backend)
	}
	if c.Auth.ValidateCredentials && c.Auth.Host == "" {
		return errors.New("auth host not set")
	}
	return nil
}

// DSN builds the postgres connection string.
func (c DBConfig) DSN() string {
	sslMode := "disable"
	if c.SSL {
		sslMode = "require"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, sslMode,
	)
}

func sectionName(env string) (string, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return "development", nil
	case "prod", "production":
		return "production", nil
	default:
		return "", fmt.Errorf("unknown env: %s", env)
	}
}

func decodeSection(path, section string, cfg *Config) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	var file map[string]toml.Primitive
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}

	prim, ok := file[section]
	if !ok {
		return nil
	}
	if err := md.PrimitiveDecode(prim, cfg); err != nil {
		return fmt.Errorf("decode [%s] config section: %w", section, err)
	}
	return nil
}
