package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, policy), standard settings
// -----------------------------------------------------------------------------

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	Storage      StorageConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Hold         HoldConfig
	Sweeper      SweeperConfig
	Availability AvailabilityConfig
	MQ           MQConfig
	Outbox       OutboxConfig
	Idempotency  IdempotencyConfig
	Tracing      TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// JWT tokens are issued by the external auth layer; only verification happens here.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type HoldConfig struct {
	MinTTL     time.Duration `envconfig:"HOLD_MIN_TTL" default:"1s"`
	MaxTTL     time.Duration `envconfig:"HOLD_MAX_TTL" default:"1h"`
	DefaultTTL time.Duration `envconfig:"HOLD_DEFAULT_TTL" default:"10m"`
}

type SweeperConfig struct {
	Enabled   bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"SWEEPER_INTERVAL" default:"5s"`
	BatchSize int           `envconfig:"SWEEPER_BATCH_SIZE" default:"500"`
}

type AvailabilityConfig struct {
	Granularity    time.Duration `envconfig:"AVAILABILITY_GRANULARITY" default:"15m"`
	DayStart       string        `envconfig:"AVAILABILITY_DAY_START" default:"09:00"`
	DayEnd         string        `envconfig:"AVAILABILITY_DAY_END" default:"18:00"`
	WorkDays       []string      `envconfig:"AVAILABILITY_WORK_DAYS" default:"Mon,Tue,Wed,Thu,Fri"`
	MaxHorizonDays int           `envconfig:"AVAILABILITY_MAX_HORIZON_DAYS" default:"31"`
}

// URL empty means events are only logged.
type MQConfig struct {
	URL      string `envconfig:"MQ_URL"`
	Exchange string `envconfig:"MQ_EXCHANGE" default:"booking.events"`
}

type OutboxConfig struct {
	Enabled   bool          `envconfig:"OUTBOX_ENABLED" default:"true"`
	Interval  time.Duration `envconfig:"OUTBOX_INTERVAL" default:"2s"`
	BatchSize int           `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
}

type IdempotencyConfig struct {
	PurgeInterval time.Duration `envconfig:"IDEMPOTENCY_PURGE_INTERVAL" default:"10m"`
}

// Endpoint empty disables exporting.
type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"booking-core"`
	Environment string `envconfig:"ENV" default:"dev"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) UsesPostgres() bool {
	return c.Storage.Driver == StorageDriverPostgres
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.DB.User == "" || c.DB.Password == "" || c.DB.DBName == "" {
			return errors.New("DB_USER, DB_PASSWORD and DB_NAME are required for the postgres storage driver")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Hold.MinTTL <= 0 || c.Hold.MinTTL > c.Hold.MaxTTL {
		return errors.New("HOLD_MIN_TTL must be positive and not above HOLD_MAX_TTL")
	}
	if c.Hold.DefaultTTL < c.Hold.MinTTL || c.Hold.DefaultTTL > c.Hold.MaxTTL {
		return errors.New("HOLD_DEFAULT_TTL must lie within the hold TTL bounds")
	}
	if c.Sweeper.Interval <= 0 || c.Sweeper.BatchSize <= 0 {
		return errors.New("sweeper interval and batch size must be positive")
	}
	if c.Idempotency.PurgeInterval <= 0 {
		return errors.New("IDEMPOTENCY_PURGE_INTERVAL must be positive")
	}
	if c.Availability.Granularity <= 0 {
		return errors.New("AVAILABILITY_GRANULARITY must be positive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	// a missing .env is normal outside local development
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings, for tooling that never serves HTTP.
func LoadDBConfig() (DBConfig, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return DBConfig{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process env config: %w", err)
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
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Storage: StorageConfig{
			Driver: StorageDriverPostgres,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Hold: HoldConfig{
			MinTTL:     time.Second,
			MaxTTL:     time.Hour,
			DefaultTTL: 10 * time.Minute,
		},
		Sweeper: SweeperConfig{
			Enabled:   false, // tests drive sweeps explicitly
			Interval:  5 * time.Second,
			BatchSize: 500,
		},
		Availability: AvailabilityConfig{
			Granularity:    15 * time.Minute,
			DayStart:       "09:00",
			DayEnd:         "18:00",
			WorkDays:       []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			MaxHorizonDays: 31,
		},
		MQ: MQConfig{
			Exchange: "booking.events",
		},
		Outbox: OutboxConfig{
			Enabled:   false,
			Interval:  2 * time.Second,
			BatchSize: 100,
		},
		Idempotency: IdempotencyConfig{
			PurgeInterval: 10 * time.Minute,
		},
		Tracing: TracingConfig{
			ServiceName: "booking-core-test",
			Environment: "test",
		},
	}
}
