package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, backoff tuning)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Stripe   StripeConfig
	Checkout CheckoutConfig
	Poll     PollConfig
	Worker   WorkerConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Australia/Sydney"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Australia/Sydney"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"36000"` // 10*60*60
	// Empty disables the rotating file sink.
	FilePath       string `envconfig:"LOG_FILE_PATH" default:""`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"10"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"7"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"28"`
}

type StripeConfig struct {
	SecretKey        string        `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret    string        `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	WebhookTolerance time.Duration `envconfig:"STRIPE_WEBHOOK_TOLERANCE" default:"5m"`
	MaxBodyBytes     int64         `envconfig:"STRIPE_WEBHOOK_MAX_BODY_BYTES" default:"65536"`
}

type CheckoutConfig struct {
	BaseURL     string `envconfig:"PUBLIC_BASE_URL" required:"true"`
	Currency    string `envconfig:"CHECKOUT_CURRENCY" default:"aud"`
	ProductName string `envconfig:"CHECKOUT_PRODUCT_NAME" default:"Private transfer booking"`
}

type PollConfig struct {
	MaxDuration         time.Duration `envconfig:"POLL_MAX_DURATION" default:"60s"`
	BaseDelay           time.Duration `envconfig:"POLL_BASE_DELAY" default:"1s"`
	Factor              float64       `envconfig:"POLL_FACTOR" default:"1.8"`
	MaxDelay            time.Duration `envconfig:"POLL_MAX_DELAY" default:"5s"`
	InitialFetchRetries uint          `envconfig:"POLL_INITIAL_FETCH_RETRIES" default:"3"`
	InitialFetchBackoff time.Duration `envconfig:"POLL_INITIAL_FETCH_BACKOFF" default:"500ms"`
	RequestTimeout      time.Duration `envconfig:"POLL_REQUEST_TIMEOUT" default:"10s"`
}

type WorkerConfig struct {
	Enabled       bool          `envconfig:"WORKER_ENABLED" default:"true"`
	PollInterval  time.Duration `envconfig:"WORKER_POLL_INTERVAL" default:"2s"`
	BatchSize     int           `envconfig:"WORKER_BATCH_SIZE" default:"10"`
	MaxAttempts   int           `envconfig:"WORKER_MAX_ATTEMPTS" default:"8"`
	SendAttempts  uint          `envconfig:"WORKER_SEND_ATTEMPTS" default:"3"`
	SendDelay     time.Duration `envconfig:"WORKER_SEND_DELAY" default:"500ms"`
	SendMaxDelay  time.Duration `envconfig:"WORKER_SEND_MAX_DELAY" default:"5s"`
	RequeueDelay  time.Duration `envconfig:"WORKER_REQUEUE_DELAY" default:"1m"`
	ProcessingTTL time.Duration `envconfig:"WORKER_PROCESSING_TTL" default:"10m"`
}

type MailConfig struct {
	Driver        string        `envconfig:"MAIL_DRIVER" default:"log"` // log | smtp
	SMTPHost      string        `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort      int           `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername  string        `envconfig:"SMTP_USERNAME" default:""`
	SMTPPassword  string        `envconfig:"SMTP_PASSWORD" default:""`
	SMTPTLSPolicy string        `envconfig:"SMTP_TLS_POLICY" default:"opportunistic"` // opportunistic | mandatory | none
	SMTPTimeout   time.Duration `envconfig:"SMTP_TIMEOUT" default:"30s"`
	From          string        `envconfig:"MAIL_FROM" default:"bookings@localhost"`
	AdminAddress  string        `envconfig:"MAIL_ADMIN_ADDRESS" default:"ops@localhost"`
	BusinessName  string        `envconfig:"MAIL_BUSINESS_NAME" default:"Harbour City Transfers"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *MailConfig) SMTPAddr() string {
	return fmt.Sprintf("%s:%d", c.SMTPHost, c.SMTPPort)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid env config: %w", err)
	}
	return cfg, nil
}

// Validate rejects values envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Stripe.SecretKey) == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY must not be empty")
	}
	if strings.TrimSpace(c.Stripe.WebhookSecret) == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET must not be empty")
	}
	if c.Stripe.MaxBodyBytes <= 0 {
		return fmt.Errorf("STRIPE_WEBHOOK_MAX_BODY_BYTES must be positive, got %d", c.Stripe.MaxBodyBytes)
	}
	if c.Worker.SendAttempts < 1 {
		return fmt.Errorf("WORKER_SEND_ATTEMPTS must be at least 1, got %d", c.Worker.SendAttempts)
	}
	if c.Worker.MaxAttempts < 1 {
		return fmt.Errorf("WORKER_MAX_ATTEMPTS must be at least 1, got %d", c.Worker.MaxAttempts)
	}
	if c.Worker.BatchSize < 1 {
		return fmt.Errorf("WORKER_BATCH_SIZE must be at least 1, got %d", c.Worker.BatchSize)
	}
	return nil
}

// LoadPollConfig reads only the poller options, for binaries that never talk to the database.
func LoadPollConfig() (PollConfig, error) {
	var cfg PollConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return PollConfig{}, fmt.Errorf("failed to process poll env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Australia/Sydney",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Australia/Sydney",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 36000,
		},
		Stripe: StripeConfig{
			SecretKey:        "sk_test_dummy",
			WebhookSecret:    "whsec_test_secret",
			WebhookTolerance: 5 * time.Minute,
			MaxBodyBytes:     65536,
		},
		Checkout: CheckoutConfig{
			BaseURL:     "http://localhost:3000",
			Currency:    "aud",
			ProductName: "Private transfer booking",
		},
		Poll: PollConfig{
			MaxDuration:         60 * time.Second,
			BaseDelay:           time.Second,
			Factor:              1.8,
			MaxDelay:            5 * time.Second,
			InitialFetchRetries: 3,
			InitialFetchBackoff: 500 * time.Millisecond,
			RequestTimeout:      10 * time.Second,
		},
		Worker: WorkerConfig{
			Enabled:       false,
			PollInterval:  100 * time.Millisecond,
			BatchSize:     10,
			MaxAttempts:   3,
			SendAttempts:  1,
			SendDelay:     time.Millisecond,
			SendMaxDelay:  time.Millisecond,
			RequeueDelay:  time.Second,
			ProcessingTTL: time.Minute,
		},
		Mail: MailConfig{
			Driver:        "log",
			SMTPHost:      "localhost",
			SMTPPort:      2525,
			SMTPTLSPolicy: "none",
			SMTPTimeout:   5 * time.Second,
			From:          "bookings@test.local",
			AdminAddress:  "ops@test.local",
			BusinessName:  "Harbour City Transfers",
		},
	}
}
