package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends accepted by StorageBackend.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config holds application level configuration loaded from file, environment and flags.
type Config struct {
	RunAddress        string        `yaml:"run_address"`
	StorageBackend    string        `yaml:"storage_backend"`
	DatabaseURI       string        `yaml:"database_uri"`
	RedisAddr         string        `yaml:"redis_addr"`
	KafkaBrokers      []string      `yaml:"kafka_brokers"`
	KafkaTopic        string        `yaml:"kafka_topic"`
	ProgressBaseDelay time.Duration `yaml:"progress_base_delay"`
	ProgressStepDelay time.Duration `yaml:"progress_step_delay"`
	NotificationLimit int           `yaml:"notification_limit"`
	LogLevel          string        `yaml:"log_level"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	ConfigFile        string        `yaml:"-"`
}

const (
	defaultRunAddress        = ":8080"
	defaultStorageBackend    = BackendPostgres
	defaultKafkaTopic        = "cleanup.notifications"
	defaultProgressBaseDelay = 1500 * time.Millisecond
	defaultProgressStepDelay = 2 * time.Second
	defaultNotificationLimit = 20
	defaultLogLevel          = "info"
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from the optional YAML file, environment variables and flags.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func defaults() *Config {
	return &Config{
		RunAddress:        defaultRunAddress,
		StorageBackend:    defaultStorageBackend,
		KafkaTopic:        defaultKafkaTopic,
		ProgressBaseDelay: defaultProgressBaseDelay,
		ProgressStepDelay: defaultProgressStepDelay,
		NotificationLimit: defaultNotificationLimit,
		LogLevel:          defaultLogLevel,
		ShutdownTimeout:   defaultShutdownTimeout,
	}
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := defaults()

	cfg.ConfigFile = configFileFromArgs(args, getString(lookup, "CONFIG_FILE", ""))
	if cfg.ConfigFile != "" {
		if err := readFile(cfg, cfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	cfg.RunAddress = getString(lookup, "RUN_ADDRESS", cfg.RunAddress)
	cfg.StorageBackend = getString(lookup, "STORAGE_BACKEND", cfg.StorageBackend)
	cfg.DatabaseURI = getString(lookup, "DATABASE_URI", cfg.DatabaseURI)
	cfg.RedisAddr = getString(lookup, "REDIS_ADDR", cfg.RedisAddr)
	if v := getString(lookup, "KAFKA_BROKERS", ""); v != "" {
		cfg.KafkaBrokers = splitList(v)
	}
	cfg.KafkaTopic = getString(lookup, "KAFKA_TOPIC", cfg.KafkaTopic)
	cfg.ProgressBaseDelay = getDuration(lookup, "PROGRESS_BASE_DELAY", cfg.ProgressBaseDelay)
	cfg.ProgressStepDelay = getDuration(lookup, "PROGRESS_STEP_DELAY", cfg.ProgressStepDelay)
	cfg.NotificationLimit = getInt(lookup, "NOTIFICATION_LIMIT", cfg.NotificationLimit)
	cfg.LogLevel = getString(lookup, "LOG_LEVEL", cfg.LogLevel)
	cfg.ShutdownTimeout = getDuration(lookup, "SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	fs := flag.NewFlagSet("cleanup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	brokers := strings.Join(cfg.KafkaBrokers, ",")

	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML configuration file")
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "Storage backend: postgres, redis or memory")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address")
	fs.StringVar(&brokers, "kafka-brokers", brokers, "Comma separated Kafka brokers")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", cfg.KafkaTopic, "Kafka notification topic")
	fs.DurationVar(&cfg.ProgressBaseDelay, "progress-base", cfg.ProgressBaseDelay, "Delay before the first automatic transition")
	fs.DurationVar(&cfg.ProgressStepDelay, "progress-step", cfg.ProgressStepDelay, "Delay between automatic transitions")
	fs.IntVar(&cfg.NotificationLimit, "notification-limit", cfg.NotificationLimit, "Maximum retained notifications, at most 20")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	cfg.KafkaBrokers = splitList(brokers)

	normalize(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func normalize(cfg *Config) {
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if cfg.ProgressBaseDelay <= 0 {
		cfg.ProgressBaseDelay = defaultProgressBaseDelay
	}
	if cfg.ProgressStepDelay <= 0 {
		cfg.ProgressStepDelay = defaultProgressStepDelay
	}
	if cfg.NotificationLimit <= 0 || cfg.NotificationLimit > defaultNotificationLimit {
		cfg.NotificationLimit = defaultNotificationLimit
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = defaultKafkaTopic
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
}

func validate(cfg *Config) error {
	switch cfg.StorageBackend {
	case BackendPostgres:
		if cfg.DatabaseURI == "" {
			return fmt.Errorf("database URI must be provided for %s storage", BackendPostgres)
		}
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return fmt.Errorf("redis address must be provided for %s storage", BackendRedis)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return nil
}

// configFileFromArgs finds -config ahead of the full flag parse so the file can sit below env and flags.
func configFileFromArgs(args []string, def string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
