package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDB = `
database:
  host: localhost
  name: testdb
  user: testuser
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, time.Duration(0), cfg.Alerts.SuppressionWindow)
				assert.False(t, cfg.Alerts.AutoResolve)
				assert.True(t, cfg.Escalation.IsEnabled())
				assert.Equal(t, time.Minute, cfg.Escalation.ScanInterval)
				assert.Equal(t, 8, cfg.Escalation.Workers)
				assert.Equal(t, 5*time.Minute, cfg.Escalation.LockTTL)
				assert.Equal(t, 30*24*time.Hour, cfg.Retention.Samples)
				assert.Equal(t, 6*time.Hour, cfg.Retention.Interval)
				assert.Equal(t, "msp/agents", cfg.Ingest.MQTT.TopicPrefix)
				assert.Equal(t, byte(1), cfg.Ingest.MQTT.QoS)
				assert.Equal(t, 587, cfg.Notifications.Email.Port)
				assert.InDelta(t, 1.0, cfg.Notifications.SMS.RateLimit.PerSecond, 0)
				assert.Equal(t, 5, cfg.Notifications.SMS.RateLimit.Burst)
				assert.Equal(t, 64, cfg.Notifications.Realtime.BufferSize)
				assert.Equal(t, "mae", cfg.Events.NATS.SubjectPrefix)
				assert.Equal(t, "mae:events", cfg.Events.Redis.Stream)
				assert.Equal(t, "msp-alert-engine", cfg.Telemetry.ServiceName)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalDB + `  password: "${TEST_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "negative suppression window",
			yaml: minimalDB + `
alerts:
  suppression_window: -5m
`,
			wantErr: "alerts.suppression_window must be >= 0",
		},
		{
			name: "scan interval too short",
			yaml: minimalDB + `
escalation:
  scan_interval: 10ms
`,
			wantErr: "escalation.scan_interval must be at least 1s",
		},
		{
			name: "mqtt enabled without broker",
			yaml: minimalDB + `
ingest:
  mqtt:
    enabled: true
`,
			wantErr: "ingest.mqtt.broker is required",
		},
		{
			name: "email enabled without host",
			yaml: minimalDB + `
notifications:
  email:
    enabled: true
    from: alerts@example.com
`,
			wantErr: "notifications.email.host is required",
		},
		{
			name: "sms enabled without gateway",
			yaml: minimalDB + `
notifications:
  sms:
    enabled: true
`,
			wantErr: "notifications.sms.gateway_url is required",
		},
		{
			name: "nats enabled without url",
			yaml: minimalDB + `
events:
  nats:
    enabled: true
`,
			wantErr: "events.nats.url is required",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: mae_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
logging:
  level: debug
  format: json
  hostname: true
alerts:
  suppression_window: 15m
  auto_resolve: true
escalation:
  enabled: false
  scan_interval: 30s
  workers: 16
retention:
  samples: 168h
ingest:
  mqtt:
    enabled: true
    broker: tcp://mqtt:1883
    topic_prefix: acme/agents
    qos: 2
notifications:
  email:
    enabled: true
    host: smtp.example.com
    port: 2525
    from: alerts@example.com
  sms:
    enabled: true
    gateway_url: https://sms.example.com/send
    rate_limit:
      per_second: 2.5
      burst: 10
  realtime:
    enabled: true
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
events:
  nats:
    enabled: true
    url: nats://nats:4222
  redis:
    enabled: true
    addr: redis:6379
    stream: acme:alerts
directory:
  static:
    "*":
      manager:
        - name: Pat
          email: pat@example.com
          phone: "+15550100"
telemetry:
  enabled: true
  endpoint: otel:4317
  insecure: true
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.True(t, cfg.Logging.Hostname)
				assert.Equal(t, 15*time.Minute, cfg.Alerts.SuppressionWindow)
				assert.True(t, cfg.Alerts.AutoResolve)
				assert.False(t, cfg.Escalation.IsEnabled())
				assert.Equal(t, 30*time.Second, cfg.Escalation.ScanInterval)
				assert.Equal(t, 16, cfg.Escalation.Workers)
				assert.Equal(t, 168*time.Hour, cfg.Retention.Samples)
				assert.Equal(t, "tcp://mqtt:1883", cfg.Ingest.MQTT.Broker)
				assert.Equal(t, "acme/agents", cfg.Ingest.MQTT.TopicPrefix)
				assert.Equal(t, byte(2), cfg.Ingest.MQTT.QoS)
				assert.Equal(t, 2525, cfg.Notifications.Email.Port)
				assert.InDelta(t, 2.5, cfg.Notifications.SMS.RateLimit.PerSecond, 0)
				assert.True(t, cfg.Notifications.Realtime.Enabled)
				assert.Equal(t, "https://discord.com/api/webhooks/123", cfg.Notifications.Discord.WebhookURL)
				assert.Equal(t, "acme:alerts", cfg.Events.Redis.Stream)
				require.Len(t, cfg.Directory.Static["*"]["manager"], 1)
				assert.Equal(t, "pat@example.com", cfg.Directory.Static["*"]["manager"][0].Email)
				assert.Equal(t, "otel:4317", cfg.Telemetry.Endpoint)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "mae",
		User:     "admin",
		Password: "s3cret",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 dbname=mae user=admin password=s3cret sslmode=require",
		cfg.DSN(),
	)
}
