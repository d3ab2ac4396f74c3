// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes application settings
// such as server timeouts, logging, database selection, the SMTP transport,
// and the admin credentials, so no component reads ambient global state.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// MailConfig defines the SMTP transport and addressing for contact
// notifications. Recipient falls back to Username when unset, mirroring the
// common setup where the operator notifies their own mailbox.
type MailConfig struct {
	Server        string // MAIL_SERVER
	Port          int    // MAIL_PORT
	UseTLS        bool   // MAIL_USE_TLS (STARTTLS, typical for port 587)
	UseSSL        bool   // MAIL_USE_SSL (implicit TLS, typical for port 465)
	Username      string // MAIL_USERNAME
	Password      string // MAIL_PASSWORD
	DefaultSender string // MAIL_DEFAULT_SENDER (falls back to MAIL_USERNAME)
	Recipient     string // CONTACT_RECIPIENT (falls back to MAIL_USERNAME)
}

// AdminConfig holds the operator identity gating the admin listing. When the
// password is empty the admin routes reject every request rather than
// becoming open.
type AdminConfig struct {
	Username string // ADMIN_USER
	Password string // ADMIN_PASSWORD
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "go-portfolio-backend")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	Debug             bool          // DEBUG: gin debug mode + verbose logs

	// Logging
	LogLevel  string // debug|info|warn|error|fatal|panic
	LogPretty bool   // pretty console logs in dev

	// App
	SecretKey   string // SECRET_KEY (session/signing secret)
	DatabaseURL string // DATABASE_URL; empty selects SQLite
	DBPath      string // SQLite path used when DATABASE_URL is unset
	AutoMigrate bool   // DB_AUTO_MIGRATE: run schema migration at startup

	// Mail / Admin
	Mail  MailConfig
	Admin AdminConfig

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		Debug:             getbool("DEBUG", false),

		// Logging
		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty: getbool("LOG_PRETTY", false),

		// App
		SecretKey:   getenv("SECRET_KEY", "default_secret_key"),
		DatabaseURL: getenv("DATABASE_URL", ""),
		DBPath:      getenv("DB_PATH", "portfolio.db"),
		AutoMigrate: getbool("DB_AUTO_MIGRATE", false),

		// Mail
		Mail: MailConfig{
			Server:        getenv("MAIL_SERVER", "smtp.gmail.com"),
			Port:          getint("MAIL_PORT", 587),
			UseTLS:        getbool("MAIL_USE_TLS", true),
			UseSSL:        getbool("MAIL_USE_SSL", false),
			Username:      getenv("MAIL_USERNAME", ""),
			Password:      getenv("MAIL_PASSWORD", ""),
			DefaultSender: getenv("MAIL_DEFAULT_SENDER", ""),
			Recipient:     getenv("CONTACT_RECIPIENT", ""),
		},

		// Admin
		Admin: AdminConfig{
			Username: getenv("ADMIN_USER", ""),
			Password: getenv("ADMIN_PASSWORD", ""),
		},

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "go-portfolio-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	if cfg.Mail.DefaultSender == "" {
		cfg.Mail.DefaultSender = cfg.Mail.Username
	}
	if cfg.Mail.Recipient == "" {
		cfg.Mail.Recipient = cfg.Mail.Username
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if cfg.DatabaseURL == "" && strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty when DATABASE_URL is unset")
	}
	if cfg.Mail.Port < 1 || cfg.Mail.Port > 65535 {
		return cfg, errors.New("MAIL_PORT must be a valid TCP port")
	}
	if cfg.Mail.UseTLS && cfg.Mail.UseSSL {
		return cfg, errors.New("MAIL_USE_TLS and MAIL_USE_SSL are mutually exclusive")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// GinMode maps the debug flag onto gin's run mode.
func (c Config) GinMode() string {
	if c.Debug {
		return "debug"
	}
	return "release"
}

// ---- helpers (no external deps) ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
