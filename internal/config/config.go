package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	SendGrid   SendGridConfig   `yaml:"sendgrid"`
	JWT        JWTConfig        `yaml:"jwt"`
	Log        LogConfig        `yaml:"log"`
	Recruiting RecruitingConfig `yaml:"recruiting"`
	Screening  ScreeningConfig  `yaml:"screening"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SendGridConfig contains email delivery settings
type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// JWTConfig contains session token settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// RecruitingConfig contains the open/close dates of each recruiting round,
// formatted as 2006-01-02.
type RecruitingConfig struct {
	FirstRoundOpen   string `yaml:"first_round_open"`
	FirstRoundClose  string `yaml:"first_round_close"`
	SecondRoundOpen  string `yaml:"second_round_open"`
	SecondRoundClose string `yaml:"second_round_close"`
}

// ScreeningConfig contains admin screening settings
type ScreeningConfig struct {
	ReminderAfterDays int      `yaml:"reminder_after_days"`
	AdminEmails       []string `yaml:"admin_emails"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	CloseExpiredRounds     string `yaml:"close_expired_rounds"`
	SendScreeningReminders string `yaml:"send_screening_reminders"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.SendGrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM_EMAIL"); val != "" {
		c.SendGrid.FromEmail = val
	}

	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry == 0 {
		c.JWT.AccessTokenExpiry = 60
	}

	for _, window := range []struct {
		name  string
		value string
	}{
		{"first_round_open", c.Recruiting.FirstRoundOpen},
		{"first_round_close", c.Recruiting.FirstRoundClose},
		{"second_round_open", c.Recruiting.SecondRoundOpen},
		{"second_round_close", c.Recruiting.SecondRoundClose},
	} {
		if window.value == "" {
			return fmt.Errorf("recruiting %s is required", window.name)
		}
		if _, err := time.Parse("2006-01-02", window.value); err != nil {
			return fmt.Errorf("recruiting %s must be formatted as 2006-01-02: %w", window.name, err)
		}
	}

	if c.Screening.ReminderAfterDays == 0 {
		c.Screening.ReminderAfterDays = 3
	}

	// Scheduler defaults
	if c.Scheduler.CloseExpiredRounds == "" {
		c.Scheduler.CloseExpiredRounds = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.SendScreeningReminders == "" {
		c.Scheduler.SendScreeningReminders = "0 0 9 * * *" // 9 AM UTC
	}

	return nil
}

// RoundOpen returns the parsed open date of the given round.
func (c *RecruitingConfig) RoundOpen(schedule string) (time.Time, error) {
	switch schedule {
	case "FIRST":
		return time.Parse("2006-01-02", c.FirstRoundOpen)
	case "SECOND":
		return time.Parse("2006-01-02", c.SecondRoundOpen)
	}
	return time.Time{}, fmt.Errorf("unknown schedule type: %s", schedule)
}

// RoundClose returns the parsed close date of the given round.
func (c *RecruitingConfig) RoundClose(schedule string) (time.Time, error) {
	switch schedule {
	case "FIRST":
		return time.Parse("2006-01-02", c.FirstRoundClose)
	case "SECOND":
		return time.Parse("2006-01-02", c.SecondRoundClose)
	}
	return time.Time{}, fmt.Errorf("unknown schedule type: %s", schedule)
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
