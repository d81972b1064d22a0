package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
)

const defaultTxIsolation = "read committed"

type (
	Tasks struct {
		EntityStatsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // скорость пополнения token bucket
		RateLimiterBurst int           // емкость token bucket
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host        string
		Port        string
		User        string
		Password    string
		DBName      string
		SSLMode     string
		TxIsolation string
		AutoMigrate bool
	}

	GRPC struct {
		HealthPort string // пустой порт отключает gRPC health сервер
	}

	Kafka struct {
		Enabled      bool
		Brokers      string
		ChangesTopic string
		Sarama       Sarama
	}

	Sarama struct {
		Version string
	}

	Log struct {
		Level string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		GRPC     GRPC
		Kafka    Kafka
		Log      Log
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	statsInterval, err := osGetEnvDuration("BACKGROUND_ENTITY_STATS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoMigrate, err := osGetBool("DB_AUTO_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaEnabled, err := osGetBool("KAFKA_CHANGES_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	txIsolation := os.Getenv("POSTGRES_TX_ISOLATION")
	if txIsolation == "" {
		txIsolation = defaultTxIsolation
	}

	return &Config{
		Tasks: Tasks{
			EntityStatsInterval: statsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:        os.Getenv("POSTGRES_HOST"),
			Port:        os.Getenv("POSTGRES_PORT"),
			User:        os.Getenv("POSTGRES_USER"),
			Password:    os.Getenv("POSTGRES_PASSWORD"),
			DBName:      os.Getenv("POSTGRES_DB"),
			SSLMode:     os.Getenv("POSTGRES_SSLMODE"),
			TxIsolation: txIsolation,
			AutoMigrate: autoMigrate,
		},
		GRPC: GRPC{
			HealthPort: os.Getenv("GRPC_HEALTH_PORT"),
		},
		Kafka: Kafka{
			Enabled:      kafkaEnabled,
			Brokers:      os.Getenv("KAFKA_BROKERS"),
			ChangesTopic: os.Getenv("KAFKA_CHANGES_TOPIC"),
			Sarama: Sarama{
				Version: os.Getenv("KAFKA_SARAMA_VERSION"),
			},
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.EntityStatsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ENTITY_STATS_INTERVAL is required")
	}
	if cfg.Tasks.EntityStatsInterval < 0 {
		return fmt.Errorf("BACKGROUND_ENTITY_STATS_INTERVAL must be positive, got %s", cfg.Tasks.EntityStatsInterval)
	}

	if cfg.Log.Level != "" {
		_, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	if !cfg.Kafka.Enabled {
		return nil
	}
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required when KAFKA_CHANGES_ENABLED is set")
	}
	if cfg.Kafka.ChangesTopic == "" {
		return errors.New("KAFKA_CHANGES_TOPIC is required when KAFKA_CHANGES_ENABLED is set")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required when KAFKA_CHANGES_ENABLED is set")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
