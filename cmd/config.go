package cmd

import "fmt"

// Config carries the process configuration, populated from environment
// variables.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"catering"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	NotificationWebhookURL string `env:"NOTIFICATION_WEBHOOK_URL"`
}

// DatabaseDSN renders the postgres connection string.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
