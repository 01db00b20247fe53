package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Store selects the repository backend: "memory" (process-local,
	// seeded, resets on restart) or "mongo".
	Store string `env:"STORE, default=memory"`

	CompanyName string   `env:"COMPANY_NAME, default=Christian Constantin SA"`
	EmailDomain string   `env:"EMAIL_DOMAIN, default=@christian-constantin.ch"`
	AdminEmails []string `env:"ADMIN_EMAILS, default=admin@christian-constantin.ch,it@christian-constantin.ch"`

	SessionDurationHours int `env:"SESSION_DURATION_HOURS, default=24"`
	MaxLoginAttempts     int `env:"MAX_LOGIN_ATTEMPTS,     default=5"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=commandit"`
}

type RedisConfig struct {
	// Enabled turns on the redis-backed login limiter.
	Enabled bool   `env:"REDIS_ENABLED, default=false"`
	Addr    string `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int    `env:"REDIS_DB,      default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST,     default=smtp.votreserveur.com"`
	Port     int    `env:"SMTP_PORT,     default=587"`
	Secure   bool   `env:"SMTP_SECURE,   default=false"`
	User     string `env:"SMTP_USER,     default=noreply@christian-constantin.ch"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM,     default=noreply@christian-constantin.ch"`

	// OperationsEmails are the mailboxes every submitted order is sent to.
	OperationsEmails []string `env:"OPERATIONS_EMAILS, default=it@christian-constantin.ch"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// DefaultSettings derives the initial system settings document from the
// environment configuration. Admin edits through the settings endpoint take
// precedence afterwards.
func (c *Config) DefaultSettings() domain.Settings {
	return domain.Settings{
		Company: domain.CompanySettings{
			Name:        c.CompanyName,
			EmailDomain: c.EmailDomain,
		},
		Mail: domain.MailSettings{
			Host:               c.SMTP.Host,
			Port:               c.SMTP.Port,
			Secure:             c.SMTP.Secure,
			User:               c.SMTP.User,
			Pass:               c.SMTP.Password,
			NotificationEmails: c.SMTP.OperationsEmails,
		},
		Security: domain.SecuritySettings{
			SessionDurationHours: c.SessionDurationHours,
			MaxLoginAttempts:     c.MaxLoginAttempts,
		},
		Departments: domain.Departments,
	}
}
