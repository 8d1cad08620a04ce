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
	App     AppConfig
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	OTP     OTPConfig
	Coupon  CouponConfig
	SMS     SMSConfig
	Storage StorageConfig
}

type AppConfig struct {
	// QR payloads point at {BaseURL}/issue/{slug}
	BaseURL string `envconfig:"APP_BASE_URL" default:"http://localhost:3000"`
	// Calendar days (issuance idempotency, partnership start/end) are computed in this zone
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Asia/Seoul"`
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Device-Hash"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"30m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"720h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type OTPConfig struct {
	TTL        time.Duration `envconfig:"OTP_TTL" default:"5m"`
	CodeLength int           `envconfig:"OTP_CODE_LENGTH" default:"6"`
	// token bucket per phone number
	SendInterval time.Duration `envconfig:"OTP_SEND_INTERVAL" default:"30s"`
	SendBurst    int           `envconfig:"OTP_SEND_BURST" default:"3"`
}

type CouponConfig struct {
	Validity      time.Duration `envconfig:"COUPON_VALIDITY" default:"24h"`
	AllowExtended bool          `envconfig:"COUPON_ALLOW_EXTENDED" default:"true"`
	SweepEnabled  bool          `envconfig:"COUPON_SWEEP_ENABLED" default:"false"`
	// robfig/cron spec with seconds field
	SweepSpec string `envconfig:"COUPON_SWEEP_SPEC" default:"0 */10 * * * *"`
}

type SMSConfig struct {
	Provider string        `envconfig:"SMS_PROVIDER" default:"log"` // "log" | "http"
	BaseURL  string        `envconfig:"SMS_BASE_URL" default:""`
	APIKey   string        `envconfig:"SMS_API_KEY" default:""`
	Sender   string        `envconfig:"SMS_SENDER" default:""`
	Timeout  time.Duration `envconfig:"SMS_TIMEOUT" default:"5s"`
}

type StorageConfig struct {
	Provider      string        `envconfig:"STORAGE_PROVIDER" default:"local"` // "s3" | "local"
	Bucket        string        `envconfig:"STORAGE_BUCKET" default:""`
	Region        string        `envconfig:"STORAGE_REGION" default:"ap-northeast-2"`
	AccessKey     string        `envconfig:"STORAGE_ACCESS_KEY" default:""`
	SecretKey     string        `envconfig:"STORAGE_SECRET_KEY" default:""`
	Endpoint      string        `envconfig:"STORAGE_ENDPOINT" default:""`
	LocalPath     string        `envconfig:"STORAGE_LOCAL_PATH" default:"storage.db"`
	PublicBaseURL string        `envconfig:"STORAGE_PUBLIC_BASE_URL" default:"http://localhost:8080"`
	SigningKey    string        `envconfig:"STORAGE_SIGNING_KEY" default:""`
	PresignTTL    time.Duration `envconfig:"STORAGE_PRESIGN_TTL" default:"1h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the configured zone is unknown.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			BaseURL:  "http://localhost:3000",
			TimeZone: "Asia/Seoul",
		},
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
			TimeZone: "Asia/Seoul",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-jwt-signing-only",
			AccessTokenDuration:  "30m",
			RefreshTokenDuration: "720h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		OTP: OTPConfig{
			TTL:          5 * time.Minute,
			CodeLength:   6,
			SendInterval: time.Millisecond,
			SendBurst:    100,
		},
		Coupon: CouponConfig{
			Validity:      24 * time.Hour,
			AllowExtended: true,
		},
		SMS: SMSConfig{
			Provider: "log",
			Timeout:  time.Second,
		},
		Storage: StorageConfig{
			Provider:      "local",
			PublicBaseURL: "http://localhost:8889",
			SigningKey:    "test-storage-signing-key",
			PresignTTL:    time.Hour,
		},
	}
}
