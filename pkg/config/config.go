package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP          HTTP
	Logger        Logger
	Postgres      Postgres
	Backend       Backend
	Kafka         Kafka
	Mailer        Mailer
	Notifications Notifications
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Backend struct {
	BaseURL       string        `env:"BACKEND_BASE_URL"`
	AuthURL       string        `env:"AUTH_SERVICE_URL"`
	Timeout       time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"BACKEND_RETRY_ATTEMPTS" envDefault:"2"`
	RetryWaitMin  time.Duration `env:"BACKEND_RETRY_WAIT_MIN" envDefault:"2s"`
	RetryWaitMax  time.Duration `env:"BACKEND_RETRY_WAIT_MAX" envDefault:"4s"`
}

type Kafka struct {
	Brokers                 []string `env:"KAFKA_BROKERS"`
	ConsumerID              string   `env:"KAFKA_CONSUMER_ID" envDefault:"business-guru-admin"`
	StatusUpdatedTopic      string   `env:"KAFKA_STATUS_UPDATED_TOPIC" envDefault:"client_status_updated"`
	SystemNotificationTopic string   `env:"KAFKA_SYSTEM_NOTIFICATION_TOPIC" envDefault:"system_notifications"`
}

type Mailer struct {
	Enabled  bool   `env:"MAILER_ENABLED" envDefault:"false"`
	Host     string `env:"MAILER_HOST" envDefault:""`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
	From     string `env:"MAILER_FROM" envDefault:""`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Business Guru"`
}

// Notifications holds the tunables of the notification center. The
// recent-creation window and the feed caps are heuristics, kept as
// configuration rather than constants.
type Notifications struct {
	RefreshInterval      time.Duration `env:"NOTIFICATIONS_REFRESH_INTERVAL" envDefault:"30s"`
	RecentCreationWindow time.Duration `env:"NOTIFICATIONS_RECENT_CREATION_WINDOW" envDefault:"60s"`
	NewLimit             int           `env:"NOTIFICATIONS_NEW_LIMIT" envDefault:"10"`
	UpdatedLimit         int           `env:"NOTIFICATIONS_UPDATED_LIMIT" envDefault:"10"`
	AdminLimit           int           `env:"NOTIFICATIONS_ADMIN_LIMIT" envDefault:"5"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
