package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Jira     JiraConfig     `yaml:"jira"`
	Tempo    TempoConfig    `yaml:"tempo"`
	Retry    RetryConfig    `yaml:"retry"`
	Sync     SyncConfig     `yaml:"sync"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	LogLevel string         `yaml:"log_level"`
}

type JiraConfig struct {
	OrgName   string        `yaml:"org_name"`
	UserEmail string        `yaml:"user_email"`
	APIToken  string        `yaml:"api_token"`
	Timeout   time.Duration `yaml:"timeout"`
}

// BaseURL builds the Jira Cloud base URL from the organization name.
func (j JiraConfig) BaseURL() string {
	return fmt.Sprintf("https://%s.atlassian.net", j.OrgName)
}

type TempoConfig struct {
	BaseURL  string        `yaml:"base_url"`
	APIToken string        `yaml:"api_token"`
	Timeout  time.Duration `yaml:"timeout"`
}

type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Delay       time.Duration `yaml:"delay"`
	// MaxConsecutiveFailures bounds long pagination loops that would
	// otherwise spin forever on a cursor that never advances.
	MaxConsecutiveFailures int `yaml:"max_consecutive_failures"`
}

type SyncConfig struct {
	Since        string        `yaml:"since"`
	Datasets     []string      `yaml:"datasets"`
	Incremental  bool          `yaml:"incremental"`
	Interval     time.Duration `yaml:"interval"`
	RunTimeout   time.Duration `yaml:"run_timeout"`
	FallbackStep time.Duration `yaml:"fallback_step"`
	PageLimit    int           `yaml:"page_limit"`
	MapChunkSize int           `yaml:"map_chunk_size"`
}

// SinceDate parses the configured since boundary (yyyy-mm-dd).
func (s SyncConfig) SinceDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", s.Since)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid 'since' date %q: %w", s.Since, err)
	}
	return t, nil
}

// Enabled reports whether a dataset extraction path should run.
func (s SyncConfig) Enabled(dataset string) bool {
	for _, d := range s.Datasets {
		if d == dataset {
			return true
		}
	}
	return false
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Tempo.BaseURL == "" {
		c.Tempo.BaseURL = "https://api.eu.tempo.io/4"
	}
	if c.Jira.Timeout == 0 {
		c.Jira.Timeout = 30 * time.Second
	}
	if c.Tempo.Timeout == 0 {
		c.Tempo.Timeout = 30 * time.Second
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 5
	}
	if c.Retry.Delay == 0 {
		c.Retry.Delay = 2 * time.Second
	}
	if c.Retry.MaxConsecutiveFailures == 0 {
		c.Retry.MaxConsecutiveFailures = 5
	}
	if c.Sync.Interval == 0 {
		c.Sync.Interval = 6 * time.Hour
	}
	if c.Sync.RunTimeout == 0 {
		c.Sync.RunTimeout = 30 * time.Minute
	}
	if c.Sync.FallbackStep == 0 {
		c.Sync.FallbackStep = 7 * 24 * time.Hour
	}
	if c.Sync.PageLimit == 0 {
		c.Sync.PageLimit = 5000
	}
	if c.Sync.MapChunkSize == 0 {
		c.Sync.MapChunkSize = 500
	}
	if len(c.Sync.Datasets) == 0 {
		c.Sync.Datasets = []string{"worklogs", "approvals_tempo", "teams"}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	var missing []string
	if c.Jira.OrgName == "" {
		missing = append(missing, "jira.org_name")
	}
	if c.Tempo.APIToken == "" {
		missing = append(missing, "tempo.api_token")
	}
	if c.Sync.Since == "" {
		missing = append(missing, "sync.since")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	if _, err := c.Sync.SinceDate(); err != nil {
		return err
	}
	return nil
}
