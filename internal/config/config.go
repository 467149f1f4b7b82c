package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database        DatabaseConfig   `yaml:"database"`
	RabbitMQ        RabbitMQConfig   `yaml:"rabbitmq"`
	Source          SourceConfig     `yaml:"source"`
	Translator      TranslatorConfig `yaml:"translator"`
	Scan            ScanConfig       `yaml:"scan"`
	BodyLock        LockConfig       `yaml:"body_lock"`
	TranslationLock LockConfig       `yaml:"translation_lock"`
	LogLevel        string           `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type SourceConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type TranslatorConfig struct {
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float64       `yaml:"temperature"`
}

type ScanConfig struct {
	Interval     time.Duration `yaml:"interval"`
	MaxPages     int           `yaml:"max_pages"`
	RecheckLimit int           `yaml:"recheck_limit"`
}

// LockConfig tunes one lock kind. StaleThreshold bounds how long a holder
// timestamp is honored, MaxWait bounds how long a waiter polls for the
// holder's result, PollInterval is the sleep between re-reads.
type LockConfig struct {
	StaleThreshold time.Duration `yaml:"stale_threshold"`
	MaxWait        time.Duration `yaml:"max_wait"`
	PollInterval   time.Duration `yaml:"poll_interval"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "dqx_news"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "items"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "dqx_news_items"
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = "https://hiroba.dqx.jp"
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = 30 * time.Second
	}
	if c.Source.Retry.MaxAttempts == 0 {
		c.Source.Retry.MaxAttempts = 3
	}
	if c.Source.Retry.InitialBackoff == 0 {
		c.Source.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Source.Retry.MaxBackoff == 0 {
		c.Source.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Translator.Model == "" {
		c.Translator.Model = "gpt-4o"
	}
	if c.Translator.BaseURL == "" {
		c.Translator.BaseURL = "https://api.openai.com/v1"
	}
	if c.Translator.Timeout == 0 {
		c.Translator.Timeout = 60 * time.Second
	}
	if c.Translator.Temperature == 0 {
		c.Translator.Temperature = 0.3
	}
	if c.Scan.Interval == 0 {
		c.Scan.Interval = 15 * time.Minute
	}
	if c.Scan.MaxPages == 0 {
		c.Scan.MaxPages = 20
	}
	if c.Scan.RecheckLimit == 0 {
		c.Scan.RecheckLimit = 25
	}
	if c.BodyLock.StaleThreshold == 0 {
		c.BodyLock.StaleThreshold = 30 * time.Second
	}
	if c.BodyLock.MaxWait == 0 {
		c.BodyLock.MaxWait = 20 * time.Second
	}
	if c.BodyLock.PollInterval == 0 {
		c.BodyLock.PollInterval = 500 * time.Millisecond
	}
	if c.TranslationLock.StaleThreshold == 0 {
		c.TranslationLock.StaleThreshold = 60 * time.Second
	}
	if c.TranslationLock.MaxWait == 0 {
		c.TranslationLock.MaxWait = 45 * time.Second
	}
	if c.TranslationLock.PollInterval == 0 {
		c.TranslationLock.PollInterval = time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
