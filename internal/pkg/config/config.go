package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Notify   NotifyConfig
	Calendar CalendarConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition,Idempotent-Replayed,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:""`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	OccupancyTTL time.Duration `envconfig:"REDIS_OCCUPANCY_TTL" default:"60s"`
}

// Enabled is false when no address is configured; the occupancy cache is skipped then.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type NotifyConfig struct {
	QueueSize      int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	RatePerSecond  float64       `envconfig:"NOTIFY_RATE_PER_SECOND" default:"20"`
	Burst          int           `envconfig:"NOTIFY_BURST" default:"30"`
	DeliverTimeout time.Duration `envconfig:"NOTIFY_DELIVER_TIMEOUT" default:"5s"`
}

type CalendarConfig struct {
	DefaultTimeZone   string `envconfig:"CALENDAR_DEFAULT_TIMEZONE" default:"Asia/Seoul"`
	DefaultCutoffHour int    `envconfig:"CALENDAR_DEFAULT_CUTOFF_HOUR" default:"4"`
	Currency          string `envconfig:"CALENDAR_CURRENCY" default:"KRW"`
	MaxRangeDays      int    `envconfig:"CALENDAR_MAX_RANGE_DAYS" default:"62"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Calendar.DefaultCutoffHour < 0 || cfg.Calendar.DefaultCutoffHour > 23 {
		return Config{}, fmt.Errorf("CALENDAR_DEFAULT_CUTOFF_HOUR must be within 0-23, got %d", cfg.Calendar.DefaultCutoffHour)
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
			MaxConns: 10,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "Asia/Seoul",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Redis: RedisConfig{
			OccupancyTTL: time.Minute,
		},
		Notify: NotifyConfig{
			QueueSize:      16,
			RatePerSecond:  100,
			Burst:          10,
			DeliverTimeout: time.Second,
		},
		Calendar: CalendarConfig{
			DefaultTimeZone:   "Asia/Seoul",
			DefaultCutoffHour: 4,
			Currency:          "KRW",
			MaxRangeDays:      62,
		},
	}
}
