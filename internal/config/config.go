// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the gRPC server listens on (e.g. :8080).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// DatabaseURL is the Postgres DSN. When empty the server runs with in-memory stores.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`

	// JWTPrivateKey is the PEM-encoded private key (RSA or ECDSA) or path to file used to sign session tokens.
	// When empty, an ephemeral ECDSA key is generated at startup and tokens do not survive a restart.
	JWTPrivateKey string `mapstructure:"JWT_PRIVATE_KEY"`
	// JWTPublicKey is the PEM-encoded public key or path to file; used with JWT_PRIVATE_KEY.
	JWTPublicKey string `mapstructure:"JWT_PUBLIC_KEY"`
	JWTIssuer    string `mapstructure:"JWT_ISSUER"`
	JWTAudience  string `mapstructure:"JWT_AUDIENCE"`
	// SessionTokenTTL is the session token lifetime (e.g. "24h").
	SessionTokenTTL string `mapstructure:"SESSION_TTL"`
	// SessionIdleTTL is how long an untouched session state is kept in memory (e.g. "30m").
	SessionIdleTTL string `mapstructure:"SESSION_IDLE_TTL"`
	// BcryptCost is the bcrypt cost factor (4–31); default 12.
	BcryptCost int `mapstructure:"BCRYPT_COST"`

	// OTPTTL is the recovery code lifetime (default "180s").
	OTPTTL string `mapstructure:"OTP_TTL"`
	// OTPReturnToClient when true enables dev OTP mode: no email is sent and the code is readable
	// through DevService.GetOTP. Must not be true when Env is production.
	OTPReturnToClient bool `mapstructure:"OTP_RETURN_TO_CLIENT"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	// ClassifierURL is the hosted inference base URL (e.g. https://serverless.roboflow.com).
	ClassifierURL string `mapstructure:"CLASSIFIER_URL"`
	// ClassifierModel is the model id appended to ClassifierURL (e.g. palayprotector-project/1).
	ClassifierModel   string `mapstructure:"CLASSIFIER_MODEL"`
	ClassifierAPIKey  string `mapstructure:"CLASSIFIER_API_KEY"`
	ClassifierTimeout string `mapstructure:"CLASSIFIER_TIMEOUT"`
	// MaxImageBytes caps the size of a submitted image.
	MaxImageBytes int `mapstructure:"MAX_IMAGE_BYTES"`
	// RecordHealthyScans when true writes a "healthy" history record for scans with no predictions.
	// Off by default: a scan without predictions stores nothing.
	RecordHealthyScans bool `mapstructure:"RECORD_HEALTHY_SCANS"`

	// Image archive (optional). When S3Bucket is set, submitted images are uploaded before inference.
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3Region    string `mapstructure:"S3_REGION"`
	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`

	// PolicyFile is an optional Rego file replacing the built-in navigation policy.
	PolicyFile string `mapstructure:"POLICY_FILE"`

	// OTLPEndpoint is the OTLP gRPC collector endpoint; empty disables export.
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	ServiceName  string `mapstructure:"OTEL_SERVICE_NAME"`

	// Telemetry (optional). When Kafka brokers are set, the server emits telemetry events to Kafka.
	// TelemetryKafkaBrokers is a comma-separated list of Kafka broker addresses (e.g. "localhost:9092").
	TelemetryKafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	TelemetryKafkaTopic   string `mapstructure:"TELEMETRY_KAFKA_TOPIC"`

	// Worker-only: Loki URL for the telemetry worker to push logs (e.g. http://localhost:3100).
	LokiURL string `mapstructure:"LOKI_URL"`
	// KafkaGroupID is the consumer group ID for the telemetry worker.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("GRPC_ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("APP_ENV", "")
	v.SetDefault("JWT_PRIVATE_KEY", "")
	v.SetDefault("JWT_PUBLIC_KEY", "")
	v.SetDefault("JWT_ISSUER", "palay-auth")
	v.SetDefault("JWT_AUDIENCE", "palay-api")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_IDLE_TTL", "30m")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("OTP_TTL", "180s")
	v.SetDefault("OTP_RETURN_TO_CLIENT", false)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "")
	v.SetDefault("CLASSIFIER_URL", "https://serverless.roboflow.com")
	v.SetDefault("CLASSIFIER_MODEL", "palayprotector-project/1")
	v.SetDefault("CLASSIFIER_API_KEY", "")
	v.SetDefault("CLASSIFIER_TIMEOUT", "30s")
	v.SetDefault("MAX_IMAGE_BYTES", 10<<20)
	v.SetDefault("RECORD_HEALTHY_SCANS", false)
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("POLICY_FILE", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("OTEL_SERVICE_NAME", "palay-protector")
	v.SetDefault("TELEMETRY_KAFKA_TOPIC", "palay-telemetry")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("LOKI_URL", "")
	v.SetDefault("KAFKA_GROUP_ID", "palay-telemetry-worker")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GRPCAddr == "" {
		return nil, errors.New("config: GRPC_ADDR must be set")
	}

	if cfg.OTPReturnToClient && cfg.Env == "production" {
		return nil, errors.New("config: OTP_RETURN_TO_CLIENT must not be true when APP_ENV=production")
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	if (cfg.JWTPrivateKey == "") != (cfg.JWTPublicKey == "") {
		return nil, errors.New("config: JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set together")
	}

	if cfg.MaxImageBytes <= 0 {
		return nil, errors.New("config: MAX_IMAGE_BYTES must be positive")
	}

	if cfg.SMTPHost != "" && cfg.SMTPFrom == "" {
		return nil, errors.New("config: SMTP_FROM must be set when SMTP_HOST is set")
	}

	return &cfg, nil
}

// SessionTTL parses SessionTokenTTL as a time.Duration. Returns 24h if unset or invalid.
func (c *Config) SessionTTL() time.Duration {
	return parseDuration(c.SessionTokenTTL, 24*time.Hour)
}

// IdleTTL parses SessionIdleTTL as a time.Duration. Returns 30m if unset or invalid.
func (c *Config) IdleTTL() time.Duration {
	return parseDuration(c.SessionIdleTTL, 30*time.Minute)
}

// OTPLifetime parses OTPTTL as a time.Duration. Returns 180s if unset or invalid.
func (c *Config) OTPLifetime() time.Duration {
	return parseDuration(c.OTPTTL, 180*time.Second)
}

// ClassifierTimeoutDuration parses ClassifierTimeout. Returns 30s if unset or invalid.
func (c *Config) ClassifierTimeoutDuration() time.Duration {
	return parseDuration(c.ClassifierTimeout, 30*time.Second)
}

// ArchiveEnabled reports whether submitted images should be uploaded to S3.
func (c *Config) ArchiveEnabled() bool {
	return c != nil && strings.TrimSpace(c.S3Bucket) != ""
}

// EmailEnabled reports whether SMTP delivery is configured.
func (c *Config) EmailEnabled() bool {
	return c != nil && strings.TrimSpace(c.SMTPHost) != ""
}

// TelemetryKafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// Used to decide if telemetry is enabled (non-empty list) and to create the producer.
func (c *Config) TelemetryKafkaBrokersList() []string {
	if c == nil || c.TelemetryKafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.TelemetryKafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
