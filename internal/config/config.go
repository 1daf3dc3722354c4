// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Logging       LoggingConfig       `yaml:"logging"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Escalation    EscalationConfig    `yaml:"escalation"`
	Retention     RetentionConfig     `yaml:"retention"`
	Ingest        IngestConfig        `yaml:"ingest"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Events        EventsConfig        `yaml:"events"`
	Directory     DirectoryConfig     `yaml:"directory"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level    string `yaml:"level"`  // debug, info, warn, error
	Format   string `yaml:"format"` // text, json
	Hostname bool   `yaml:"hostname"`
}

// AlertsConfig defines alert instance behavior.
type AlertsConfig struct {
	// SuppressionWindow skips a firing when the same rule already fired for
	// the same device within the window. Zero disables suppression.
	SuppressionWindow time.Duration `yaml:"suppression_window"`
	// AutoResolve resolves open alerts once a later sample no longer
	// satisfies the rule. Default: false (manual resolution).
	AutoResolve bool `yaml:"auto_resolve"`
}

// EscalationConfig defines the escalation scanner.
type EscalationConfig struct {
	Enabled      *bool         `yaml:"enabled"`
	ScanInterval time.Duration `yaml:"scan_interval"`
	Workers      int           `yaml:"workers"`
	LockTTL      time.Duration `yaml:"lock_ttl"`
}

// IsEnabled reports whether the scanner should be scheduled. Default: true.
func (e *EscalationConfig) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// RetentionConfig defines metric sample retention.
type RetentionConfig struct {
	Samples  time.Duration `yaml:"samples"`
	Interval time.Duration `yaml:"interval"`
}

// IngestConfig defines non-HTTP ingestion transports.
type IngestConfig struct {
	MQTT MQTTConfig `yaml:"mqtt"`
}

// MQTTConfig defines the MQTT sample subscriber.
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         byte   `yaml:"qos"`
}

// NotificationsConfig defines notification transports per channel.
type NotificationsConfig struct {
	Email    EmailConfig    `yaml:"email"`
	SMS      SMSConfig      `yaml:"sms"`
	Realtime RealtimeConfig `yaml:"realtime"`
	Discord  DiscordConfig  `yaml:"discord"`
}

// EmailConfig defines SMTP settings.
type EmailConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// SMSConfig defines the HTTP SMS gateway settings.
type SMSConfig struct {
	Enabled    bool            `yaml:"enabled"`
	GatewayURL string          `yaml:"gateway_url"`
	APIKey     string          `yaml:"api_key"`
	Sender     string          `yaml:"sender"`
	Timeout    time.Duration   `yaml:"timeout"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines a token bucket and an optional rolling 24h cap.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
	Daily     int64   `yaml:"daily"` // 0 = unlimited
}

// RealtimeConfig defines the websocket hub.
type RealtimeConfig struct {
	Enabled      bool          `yaml:"enabled"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	BufferSize   int           `yaml:"buffer_size"`
}

// DiscordConfig defines Discord webhook settings. When enabled, realtime
// notifications are mirrored to the webhook.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// EventsConfig defines where lifecycle events are published. The log
// publisher is always on.
type EventsConfig struct {
	NATS  NATSConfig  `yaml:"nats"`
	Redis RedisConfig `yaml:"redis"`
}

// NATSConfig defines the NATS event publisher.
type NATSConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

// RedisConfig defines the Redis stream event publisher.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Stream   string `yaml:"stream"`
	MaxLen   int64  `yaml:"max_len"`
}

// DirectoryConfig defines role resolution sources beyond the database.
type DirectoryConfig struct {
	// Static maps tenant id ("*" for all tenants) to role to recipients.
	Static map[string]map[string][]StaticRecipient `yaml:"static"`
}

// StaticRecipient is a recipient declared in configuration.
type StaticRecipient struct {
	Name            string `yaml:"name"`
	Email           string `yaml:"email"`
	Phone           string `yaml:"phone"`
	RealtimeChannel string `yaml:"realtime_channel"`
}

// TelemetryConfig defines OpenTelemetry export.
type TelemetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Endpoint    string        `yaml:"endpoint"`
	Insecure    bool          `yaml:"insecure"`
	ServiceName string        `yaml:"service_name"`
	Interval    time.Duration `yaml:"interval"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyLoggingDefaults(&cfg.Logging)
	applyEscalationDefaults(&cfg.Escalation)
	applyRetentionDefaults(&cfg.Retention)
	applyMQTTDefaults(&cfg.Ingest.MQTT)
	applyNotificationsDefaults(&cfg.Notifications)
	applyEventsDefaults(&cfg.Events)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyEscalationDefaults(e *EscalationConfig) {
	if e.ScanInterval == 0 {
		e.ScanInterval = time.Minute
	}
	if e.Workers == 0 {
		e.Workers = 8
	}
	if e.LockTTL == 0 {
		e.LockTTL = 5 * time.Minute
	}
}

func applyRetentionDefaults(r *RetentionConfig) {
	if r.Samples == 0 {
		r.Samples = 30 * 24 * time.Hour
	}
	if r.Interval == 0 {
		r.Interval = 6 * time.Hour
	}
}

func applyMQTTDefaults(m *MQTTConfig) {
	if m.ClientID == "" {
		m.ClientID = "msp-alert-engine"
	}
	if m.TopicPrefix == "" {
		m.TopicPrefix = "msp/agents"
	}
	if m.QoS == 0 {
		m.QoS = 1
	}
}

func applyNotificationsDefaults(n *NotificationsConfig) {
	if n.Email.Port == 0 {
		n.Email.Port = 587
	}
	if n.SMS.Timeout == 0 {
		n.SMS.Timeout = 10 * time.Second
	}
	if n.SMS.RateLimit.PerSecond == 0 {
		n.SMS.RateLimit.PerSecond = 1
	}
	if n.SMS.RateLimit.Burst == 0 {
		n.SMS.RateLimit.Burst = 5
	}
	if n.Realtime.WriteTimeout == 0 {
		n.Realtime.WriteTimeout = 10 * time.Second
	}
	if n.Realtime.BufferSize == 0 {
		n.Realtime.BufferSize = 64
	}
}

func applyEventsDefaults(e *EventsConfig) {
	if e.NATS.SubjectPrefix == "" {
		e.NATS.SubjectPrefix = "mae"
	}
	if e.Redis.Stream == "" {
		e.Redis.Stream = "mae:events"
	}
	if e.Redis.MaxLen == 0 {
		e.Redis.MaxLen = 100000
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "msp-alert-engine"
	}
	if t.Interval == 0 {
		t.Interval = 30 * time.Second
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Alerts.SuppressionWindow < 0 {
		errs = append(errs, fmt.Errorf("alerts.suppression_window must be >= 0"))
	}
	if cfg.Escalation.ScanInterval < time.Second {
		errs = append(errs, fmt.Errorf("escalation.scan_interval must be at least 1s"))
	}
	if cfg.Escalation.Workers < 1 {
		errs = append(errs, fmt.Errorf("escalation.workers must be >= 1"))
	}

	if cfg.Ingest.MQTT.Enabled && cfg.Ingest.MQTT.Broker == "" {
		errs = append(errs, fmt.Errorf("ingest.mqtt.broker is required when mqtt is enabled"))
	}
	if cfg.Ingest.MQTT.QoS > 2 {
		errs = append(errs, fmt.Errorf("ingest.mqtt.qos must be 0, 1 or 2"))
	}

	n := &cfg.Notifications
	if n.Email.Enabled {
		if n.Email.Host == "" {
			errs = append(errs, fmt.Errorf("notifications.email.host is required when email is enabled"))
		}
		if n.Email.From == "" {
			errs = append(errs, fmt.Errorf("notifications.email.from is required when email is enabled"))
		}
	}
	if n.SMS.Enabled && n.SMS.GatewayURL == "" {
		errs = append(errs, fmt.Errorf("notifications.sms.gateway_url is required when sms is enabled"))
	}
	if n.Discord.Enabled && n.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}

	if cfg.Events.NATS.Enabled && cfg.Events.NATS.URL == "" {
		errs = append(errs, fmt.Errorf("events.nats.url is required when nats is enabled"))
	}
	if cfg.Events.Redis.Enabled && cfg.Events.Redis.Addr == "" {
		errs = append(errs, fmt.Errorf("events.redis.addr is required when redis is enabled"))
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, fmt.Errorf("telemetry.endpoint is required when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
